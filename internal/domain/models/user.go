package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Auth methods for admin accounts.
const (
	AuthMethodInternal = "internal" // email + password
	AuthMethodGoogle   = "google"   // Google sign-in
)

// User is an admin account. The public site has no user-facing accounts;
// users exist only to gate the /admin area.
type User struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	EmailCI string             `bson:"email_ci" json:"email_ci"` // lowercase, diacritics-stripped

	// PasswordHash is a bcrypt hash; empty for Google-only accounts.
	PasswordHash string `bson:"password_hash,omitempty" json:"-"`
	AuthMethod   string `bson:"auth_method" json:"auth_method"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
