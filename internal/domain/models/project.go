package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a showcase project owned by a single division.
type Project struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	DivisionID primitive.ObjectID `bson:"division_id" json:"division_id"`

	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	ImageURL    string `bson:"image_url" json:"image_url"`

	// Tags is derived from a comma-separated form input: split on commas,
	// each segment whitespace-trimmed. Empty segments are preserved.
	Tags []string `bson:"tags" json:"tags"`

	DemoURL   string `bson:"demo_url,omitempty" json:"demo_url,omitempty"`
	GitHubURL string `bson:"github_url,omitempty" json:"github_url,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
