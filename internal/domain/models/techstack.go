package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TechStack is a technology logo entry shown on a division's tech stack
// strip (e.g. "React" with its logo and website).
type TechStack struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	DivisionID primitive.ObjectID `bson:"division_id" json:"division_id"`

	Name       string `bson:"name" json:"name"`
	ImageURL   string `bson:"image_url" json:"image_url"`
	WebsiteURL string `bson:"website_url,omitempty" json:"website_url,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
