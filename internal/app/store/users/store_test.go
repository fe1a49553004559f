package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/cerc-club/clubsite/internal/app/store/users"
	"github.com/cerc-club/clubsite/internal/domain/models"
	"github.com/cerc-club/clubsite/internal/testutil"
)

func TestStore_CreateNormalizesEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		Name:  "  Pat Admin  ",
		Email: " Pat@Example.COM ",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Email != "pat@example.com" {
		t.Errorf("Email = %q", created.Email)
	}
	if created.Name != "Pat Admin" {
		t.Errorf("Name = %q", created.Name)
	}
	if created.AuthMethod != models.AuthMethodInternal {
		t.Errorf("AuthMethod = %q", created.AuthMethod)
	}
}

func TestStore_GetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	testutil.CreateAdminUser(t, db, "admin@example.com", "secret123")

	u, err := store.GetByEmail(ctx, "ADMIN@example.COM")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if u.Email != "admin@example.com" {
		t.Errorf("Email = %q", u.Email)
	}

	if _, err := store.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, userstore.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	if _, err := store.Create(ctx, models.User{Name: "One", Email: "same@example.com"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := store.Create(ctx, models.User{Name: "Two", Email: "SAME@example.com"})
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Errorf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestStore_EnsureAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.EnsureAdmin(ctx, "Boot Admin", "boot@example.com", "hash-one")
	if err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	if first.PasswordHash != "hash-one" {
		t.Errorf("PasswordHash = %q", first.PasswordHash)
	}

	// Second call returns the existing account without touching the hash.
	second, err := store.EnsureAdmin(ctx, "Boot Admin", "boot@example.com", "hash-two")
	if err != nil {
		t.Fatalf("second EnsureAdmin failed: %v", err)
	}
	if second.ID != first.ID {
		t.Error("expected the same account")
	}
	if second.PasswordHash != "hash-one" {
		t.Errorf("PasswordHash = %q, want original", second.PasswordHash)
	}
}
