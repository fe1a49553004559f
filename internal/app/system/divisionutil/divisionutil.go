// Package divisionutil provides small helpers shared by admin forms that
// attach content to a division.
package divisionutil

import (
	"context"

	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Option is one entry in a division select dropdown.
type Option struct {
	ID    string
	Title string
}

// ListOptions returns all divisions as dropdown options, title ascending.
func ListOptions(ctx context.Context, db *mongo.Database) ([]Option, error) {
	divisions, err := divisionstore.New(db).ListByTitle(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]Option, 0, len(divisions))
	for _, d := range divisions {
		opts = append(opts, Option{ID: d.ID.Hex(), Title: d.Title})
	}
	return opts, nil
}

// Exists reports whether a division with the given ID exists. Admin forms
// use it to reject submissions that target a removed division.
func Exists(ctx context.Context, db *mongo.Database, id primitive.ObjectID) (bool, error) {
	n, err := divisionstore.New(db).Count(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
