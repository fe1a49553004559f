// internal/app/store/divisions/store.go
package divisionstore

import (
	"context"
	"errors"
	"time"

	"github.com/cerc-club/clubsite/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrDuplicateSlug = errors.New("a division with this slug already exists")
	ErrNotFound      = errors.New("division not found")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("divisions")}
}

// Create inserts a new division.
func (s *Store) Create(ctx context.Context, d models.Division) (models.Division, error) {
	now := time.Now().UTC()
	d.ID = primitive.NewObjectID()
	d.IconName = models.NormalizeIcon(d.IconName)
	d.CreatedAt = now
	d.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, d)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Division{}, ErrDuplicateSlug
		}
		return models.Division{}, err
	}
	return d, nil
}

// GetByID retrieves a division by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Division, error) {
	var d models.Division
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Division{}, ErrNotFound
		}
		return models.Division{}, err
	}
	return d, nil
}

// GetBySlug retrieves a division by its slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Division, error) {
	var d models.Division
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&d)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Division{}, ErrNotFound
		}
		return models.Division{}, err
	}
	return d, nil
}

// Update modifies a division's mutable fields.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, d models.Division) error {
	set := bson.M{
		"title":       d.Title,
		"slug":        d.Slug,
		"description": d.Description,
		"icon_name":   models.NormalizeIcon(d.IconName),
		"updated_at":  time.Now().UTC(),
	}
	if d.ColorClass != "" {
		set["color_class"] = d.ColorClass
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

// Delete removes a division by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Find returns divisions matching the given filter.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Division, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var divisions []models.Division
	if err := cur.All(ctx, &divisions); err != nil {
		return nil, err
	}
	return divisions, nil
}

// ListByTitle returns all divisions ordered by title ascending. This is
// the ordering the public site uses everywhere divisions are listed.
func (s *Store) ListByTitle(ctx context.Context) ([]models.Division, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	return s.Find(ctx, bson.M{}, opts)
}

// Count returns the number of divisions matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// EnsureIndexes creates indexes for the divisions collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Unique slug for URL routing
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_division_slug"),
		},
		// Title for sorted listings
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetName("idx_division_title"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// seedDivisions are inserted on first run so a fresh deployment has the
// club's standing divisions without manual setup.
var seedDivisions = []models.Division{
	{
		Title:       "Software Engineering",
		Slug:        "software",
		Description: "Web, Mobile, and AI development.",
		IconName:    models.IconAppWindow,
		ColorClass:  "text-blue-600",
	},
	{
		Title:       "Computer Networks",
		Slug:        "network",
		Description: "Cloud, Security, and Infrastructure.",
		IconName:    models.IconNetwork,
		ColorClass:  "text-emerald-600",
	},
	{
		Title:       "Embedded Systems",
		Slug:        "embedded",
		Description: "IoT, Robotics, and Hardware.",
		IconName:    models.IconCpu,
		ColorClass:  "text-orange-600",
	},
	{
		Title:       "Multimedia",
		Slug:        "multimedia",
		Description: "UI/UX, Game Dev, and Creative Tech.",
		IconName:    models.IconClapperboard,
		ColorClass:  "text-purple-600",
	},
}

// EnsureSeed inserts the standing divisions that do not exist yet,
// keyed by slug. Existing divisions are left untouched, so edits made
// through the admin survive restarts.
func (s *Store) EnsureSeed(ctx context.Context) error {
	for _, d := range seedDivisions {
		now := time.Now().UTC()
		doc := bson.M{
			"$setOnInsert": bson.M{
				"_id":         primitive.NewObjectID(),
				"title":       d.Title,
				"slug":        d.Slug,
				"description": d.Description,
				"icon_name":   d.IconName,
				"color_class": d.ColorClass,
				"created_at":  now,
				"updated_at":  now,
			},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := s.c.UpdateOne(ctx, bson.M{"slug": d.Slug}, doc, opts); err != nil {
			return err
		}
	}
	return nil
}
