// internal/app/store/achievements/store.go
package achievementstore

import (
	"context"
	"errors"
	"time"

	"github.com/cerc-club/clubsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("achievement not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("achievements")}
}

// Create inserts a new achievement.
func (s *Store) Create(ctx context.Context, a models.Achievement) (models.Achievement, error) {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, a)
	if err != nil {
		return models.Achievement{}, err
	}
	return a, nil
}

// GetByID retrieves an achievement by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Achievement, error) {
	var a models.Achievement
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Achievement{}, ErrNotFound
		}
		return models.Achievement{}, err
	}
	return a, nil
}

// Update modifies an achievement's mutable fields.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, a models.Achievement) error {
	set := bson.M{
		"title":       a.Title,
		"date":        a.Date,
		"description": a.Description,
		"issuer":      a.Issuer,
		"winner":      a.Winner,
		"image_url":   a.ImageURL,
		"division_id": a.DivisionID,
		"updated_at":  time.Now().UTC(),
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes an achievement by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByDivision removes all achievements in a division. Used when the
// division itself is deleted.
func (s *Store) DeleteByDivision(ctx context.Context, divisionID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"division_id": divisionID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Find returns achievements matching the given filter.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Achievement, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var achievements []models.Achievement
	if err := cur.All(ctx, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

// Count returns the number of achievements matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// EnsureIndexes creates indexes for the achievements collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "division_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_achievement_division_created"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_achievement_created"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}
