package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a person listed on a division's roster.
type Member struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	DivisionID primitive.ObjectID `bson:"division_id" json:"division_id"`

	Name     string `bson:"name" json:"name"`
	Role     string `bson:"role" json:"role"`
	ImageURL string `bson:"image_url" json:"image_url"`

	GitHub   string `bson:"github,omitempty" json:"github,omitempty"`
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
