package techstackstore_test

import (
	"errors"
	"testing"

	techstackstore "github.com/cerc-club/clubsite/internal/app/store/techstacks"
	"github.com/cerc-club/clubsite/internal/domain/models"
	"github.com/cerc-club/clubsite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := techstackstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	division := testutil.CreateDivision(t, db)
	created := testutil.CreateTechStack(t, db, division.ID)

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Go" || got.WebsiteURL != "https://go.dev" {
		t.Errorf("unexpected entry: %+v", got)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := techstackstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	division := testutil.CreateDivision(t, db)
	created := testutil.CreateTechStack(t, db, division.ID)

	n, err := store.Delete(ctx, created.ID)
	if err != nil || n != 1 {
		t.Fatalf("Delete: n=%d err=%v", n, err)
	}
	if _, err := store.GetByID(ctx, created.ID); !errors.Is(err, techstackstore.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStore_DeleteByDivision(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := techstackstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	div1 := testutil.CreateDivision(t, db)
	div2 := testutil.CreateDivision(t, db, func(d *models.Division) { d.Slug = "other"; d.Title = "Other" })
	testutil.CreateTechStack(t, db, div1.ID)
	testutil.CreateTechStack(t, db, div1.ID, func(ts *models.TechStack) { ts.Name = "React" })
	testutil.CreateTechStack(t, db, div2.ID, func(ts *models.TechStack) { ts.Name = "Rust" })

	n, err := store.DeleteByDivision(ctx, div1.ID)
	if err != nil {
		t.Fatalf("DeleteByDivision failed: %v", err)
	}
	if n != 2 {
		t.Errorf("DeletedCount = %d, want 2", n)
	}
	count, _ := store.Count(ctx, bson.M{"division_id": div2.ID})
	if count != 1 {
		t.Errorf("other division count = %d, want 1", count)
	}
}
