// Package testutil provides shared helpers for tests that need a live
// MongoDB instance or canned HTTP requests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestMongoURIEnv names the environment variable that overrides the
// MongoDB URI used by store tests.
const TestMongoURIEnv = "CLUBSITE_TEST_MONGO_URI"

const defaultTestMongoURI = "mongodb://localhost:27017"

var dbCounter atomic.Int64

// SetupTestDB connects to the test MongoDB instance and returns a fresh
// database that is dropped when the test finishes. Tests are skipped
// when no MongoDB is reachable, so the suite passes on machines without
// a local server.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv(TestMongoURIEnv)
	if uri == "" {
		uri = defaultTestMongoURI
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("skipping: cannot connect to test MongoDB at %s: %v", uri, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("skipping: test MongoDB at %s not reachable: %v", uri, err)
	}

	name := fmt.Sprintf("clubsite_test_%d_%d", time.Now().UnixNano(), dbCounter.Add(1))
	db := client.Database(name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

// TestContext returns a context with a generous timeout for test
// database operations.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
