// internal/app/store/projects/store.go
package projectstore

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

var ErrNotFound = errors.New("project not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects")}
}

// Create inserts a new project.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, p)
	if err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// GetByID retrieves a project by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Project, error) {
	var p models.Project
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, err
	}
	return p, nil
}

// Update modifies a project's mutable fields. Optional URLs are written
// unconditionally so an empty form field clears the stored value.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p models.Project) error {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	set := bson.M{
		"title":       p.Title,
		"description": p.Description,
		"image_url":   p.ImageURL,
		"tags":        tags,
		"division_id": p.DivisionID,
		"demo_url":    p.DemoURL,
		"github_url":  p.GitHubURL,
		"updated_at":  time.Now().UTC(),
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a project by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByDivision removes all projects in a division. Used when the
// division itself is deleted.
func (s *Store) DeleteByDivision(ctx context.Context, divisionID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"division_id": divisionID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Find returns projects matching the given filter.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Project, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var projects []models.Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Count returns the number of projects matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// EnsureIndexes creates indexes for the projects collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Division-scoped listings sorted by creation time
		{
			Keys:    bson.D{{Key: "division_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_project_division_created"),
		},
		// Flat listings sorted by creation time
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_project_created"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}
