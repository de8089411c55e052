//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/haugsdal/packboard/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestMain starts one shared MongoDB container for every integration test in
// this package. Each test isolates itself with a unique database name.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongo(context.Background(), m))
}

// setupTestDB connects to the shared container with a database unique to the
// calling test.
func setupTestDB(t *testing.T) *MongoDB {
	db, err := NewMongoDB(testutil.SharedMongoURI(), testutil.TestDBName(t.Name()))
	require.NoError(t, err)
	return db
}
