// internal/app/store/members/store.go
package memberstore

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

var ErrNotFound = errors.New("member not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("members")}
}

// Create inserts a new member.
func (s *Store) Create(ctx context.Context, m models.Member) (models.Member, error) {
	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	m.CreatedAt = now
	m.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, m)
	if err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// GetByID retrieves a member by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Member, error) {
	var m models.Member
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Member{}, ErrNotFound
		}
		return models.Member{}, err
	}
	return m, nil
}

// Update modifies a member's mutable fields. Optional profile links are
// written unconditionally so an empty form field clears the stored value.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, m models.Member) error {
	set := bson.M{
		"name":        m.Name,
		"role":        m.Role,
		"image_url":   m.ImageURL,
		"division_id": m.DivisionID,
		"github":      m.GitHub,
		"linkedin":    m.LinkedIn,
		"updated_at":  time.Now().UTC(),
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a member by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByDivision removes all members in a division. Used when the
// division itself is deleted.
func (s *Store) DeleteByDivision(ctx context.Context, divisionID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"division_id": divisionID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Find returns members matching the given filter.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Member, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.Member
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Count returns the number of members matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// EnsureIndexes creates indexes for the members collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Division roster, oldest first on the public page
		{
			Keys:    bson.D{{Key: "division_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("idx_member_division_created"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}
