// internal/app/store/users/store.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/cerc-club/clubsite/internal/app/system/normalize"
	"github.com/cerc-club/clubsite/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	// ErrDuplicateEmail is returned when attempting to create a user with
	// an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	ErrNotFound       = errors.New("user not found")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create inserts a new admin user after normalizing its email and name.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Name = normalize.Name(u.Name)
	u.Email = normalize.Email(u.Email)
	u.EmailCI = text.Fold(u.Email)
	if u.AuthMethod == "" {
		u.AuthMethod = models.AuthMethodInternal
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email_ci": text.Fold(normalize.Email(email))}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// SetPasswordHash replaces a user's password hash.
func (s *Store) SetPasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error {
	set := bson.M{
		"password_hash": hash,
		"updated_at":    time.Now().UTC(),
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Count returns the number of users matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// EnsureIndexes creates indexes for the users collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_user_email_ci"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// EnsureAdmin creates the bootstrap admin account if no user with the
// given email exists. The password is only set on first creation.
func (s *Store) EnsureAdmin(ctx context.Context, name, email, passwordHash string) (models.User, error) {
	existing, err := s.GetByEmail(ctx, email)
	if err == nil {
		return *existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.User{}, err
	}

	u := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		AuthMethod:   models.AuthMethodInternal,
	}
	created, err := s.Create(ctx, u)
	if err == ErrDuplicateEmail {
		// Lost a race with a concurrent bootstrap; fetch the winner.
		existing, gerr := s.GetByEmail(ctx, email)
		if gerr != nil {
			return models.User{}, gerr
		}
		return *existing, nil
	}
	return created, err
}
