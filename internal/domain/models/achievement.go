package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Achievement is an award or competition result owned by a division.
//
// Date is free text for display ("Nov 2024"); it is NOT a structured date
// and is never sorted on. All ordering of achievements uses CreatedAt.
type Achievement struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	DivisionID primitive.ObjectID `bson:"division_id" json:"division_id"`

	Title       string `bson:"title" json:"title"`
	Date        string `bson:"date" json:"date"`
	Description string `bson:"description" json:"description"`
	Issuer      string `bson:"issuer" json:"issuer"`
	Winner      string `bson:"winner" json:"winner"`
	ImageURL    string `bson:"image_url" json:"image_url"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
