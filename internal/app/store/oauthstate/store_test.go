package oauthstate_test

import (
	"testing"
	"time"

	"github.com/cerc-club/clubsite/internal/app/store/oauthstate"
	"github.com/cerc-club/clubsite/internal/testutil"
)

func TestStore_SaveAndValidate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Save(ctx, "state-abc", "/admin/dashboard", time.Now().Add(10*time.Minute))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	returnURL, valid, err := store.Validate(ctx, "state-abc")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !valid {
		t.Error("expected state to be valid")
	}
	if returnURL != "/admin/dashboard" {
		t.Errorf("returnURL = %q", returnURL)
	}
}

func TestStore_Validate_SingleUse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Save(ctx, "state-once", "", time.Now().Add(10*time.Minute)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, valid, _ := store.Validate(ctx, "state-once"); !valid {
		t.Fatal("first Validate should succeed")
	}
	if _, valid, _ := store.Validate(ctx, "state-once"); valid {
		t.Error("second Validate should fail (single use)")
	}
}

func TestStore_Validate_Expired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Save(ctx, "state-old", "", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	_, valid, err := store.Validate(ctx, "state-old")
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if valid {
		t.Error("expected expired state to be invalid")
	}
}
