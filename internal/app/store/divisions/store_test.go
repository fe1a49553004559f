package divisionstore_test

import (
	"errors"
	"testing"

	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	"github.com/cerc-club/clubsite/internal/domain/models"
	"github.com/cerc-club/clubsite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := divisionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Division{
		Title:       "Robotics",
		Slug:        "robotics",
		Description: "Autonomous systems and competitions.",
		IconName:    models.IconCpu,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected an assigned ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Robotics" {
		t.Errorf("Title = %q", got.Title)
	}

	bySlug, err := store.GetBySlug(ctx, "robotics")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if bySlug.ID != created.ID {
		t.Error("GetBySlug returned a different division")
	}
}

func TestStore_Create_UnknownIconFallsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := divisionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Division{
		Title:    "Design",
		Slug:     "design",
		IconName: "NotARealIcon",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.IconName != models.IconFallback {
		t.Errorf("IconName = %q, want %q", created.IconName, models.IconFallback)
	}
}

func TestStore_Create_DuplicateSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := divisionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	if _, err := store.Create(ctx, models.Division{Title: "One", Slug: "dup"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := store.Create(ctx, models.Division{Title: "Two", Slug: "dup"})
	if !errors.Is(err, divisionstore.ErrDuplicateSlug) {
		t.Errorf("err = %v, want ErrDuplicateSlug", err)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := divisionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created := testutil.CreateDivision(t, db)

	upd := created
	upd.Title = "Software & AI"
	upd.Description = "Updated description."
	if err := store.Update(ctx, created.ID, upd); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Software & AI" {
		t.Errorf("Title = %q", got.Title)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Error("expected UpdatedAt to advance")
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := divisionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created := testutil.CreateDivision(t, db)

	n, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("DeletedCount = %d, want 1", n)
	}

	// Second delete removes nothing.
	n, err = store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second DeletedCount = %d, want 0", n)
	}

	if _, err := store.GetByID(ctx, created.ID); !errors.Is(err, divisionstore.ErrNotFound) {
		t.Errorf("GetByID after delete: err = %v, want ErrNotFound", err)
	}
}

func TestStore_ListByTitle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := divisionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	testutil.CreateDivision(t, db, func(d *models.Division) { d.Title = "Zeta"; d.Slug = "zeta" })
	testutil.CreateDivision(t, db, func(d *models.Division) { d.Title = "Alpha"; d.Slug = "alpha" })
	testutil.CreateDivision(t, db, func(d *models.Division) { d.Title = "Mid"; d.Slug = "mid" })

	divisions, err := store.ListByTitle(ctx)
	if err != nil {
		t.Fatalf("ListByTitle failed: %v", err)
	}
	if len(divisions) != 3 {
		t.Fatalf("got %d divisions, want 3", len(divisions))
	}
	if divisions[0].Title != "Alpha" || divisions[2].Title != "Zeta" {
		t.Errorf("unexpected order: %s, %s, %s", divisions[0].Title, divisions[1].Title, divisions[2].Title)
	}
}

func TestStore_EnsureSeed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := divisionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureSeed(ctx); err != nil {
		t.Fatalf("EnsureSeed failed: %v", err)
	}

	count, err := store.Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 4 {
		t.Errorf("count after seed = %d, want 4", count)
	}

	// Seeding again changes nothing, and admin edits survive.
	seeded, err := store.GetBySlug(ctx, "software")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	upd := seeded
	upd.Title = "Renamed Division"
	if err := store.Update(ctx, seeded.ID, upd); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if err := store.EnsureSeed(ctx); err != nil {
		t.Fatalf("second EnsureSeed failed: %v", err)
	}
	count, _ = store.Count(ctx, bson.M{})
	if count != 4 {
		t.Errorf("count after reseed = %d, want 4", count)
	}
	got, _ := store.GetBySlug(ctx, "software")
	if got.Title != "Renamed Division" {
		t.Errorf("reseed overwrote an edited division: Title = %q", got.Title)
	}
}
