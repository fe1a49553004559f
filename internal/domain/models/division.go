package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultSiteName is used when no configured site name is available.
const DefaultSiteName = "CERC"

// Division is the root aggregate of the club site. Every project, member,
// achievement, and tech stack entry belongs to exactly one division.
//
// Slug is the external lookup key: it is unique, URL-safe, and appears in
// every division-scoped page URL (/divisions/{slug}).
type Division struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`

	// IconName is one of the closed icon identifiers (see icons.go).
	// Unrecognized values fall back to IconFallback at write time.
	IconName string `bson:"icon_name" json:"icon_name"`

	// ColorClass is an opaque visual accent reference (e.g. "text-blue-600").
	ColorClass string `bson:"color_class,omitempty" json:"color_class,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
