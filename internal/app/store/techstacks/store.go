// internal/app/store/techstacks/store.go
package techstackstore

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

var ErrNotFound = errors.New("tech stack entry not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("tech_stacks")}
}

// Create inserts a new tech stack entry.
func (s *Store) Create(ctx context.Context, ts models.TechStack) (models.TechStack, error) {
	now := time.Now().UTC()
	ts.ID = primitive.NewObjectID()
	ts.CreatedAt = now
	ts.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, ts)
	if err != nil {
		return models.TechStack{}, err
	}
	return ts, nil
}

// GetByID retrieves a tech stack entry by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.TechStack, error) {
	var ts models.TechStack
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ts)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.TechStack{}, ErrNotFound
		}
		return models.TechStack{}, err
	}
	return ts, nil
}

// Delete removes a tech stack entry by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByDivision removes all tech stack entries in a division. Used
// when the division itself is deleted.
func (s *Store) DeleteByDivision(ctx context.Context, divisionID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"division_id": divisionID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Find returns tech stack entries matching the given filter.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.TechStack, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var stacks []models.TechStack
	if err := cur.All(ctx, &stacks); err != nil {
		return nil, err
	}
	return stacks, nil
}

// Count returns the number of tech stack entries matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// EnsureIndexes creates indexes for the tech_stacks collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "division_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_techstack_division_created"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}
