//go:build integration

// Package testutil provides testcontainers helpers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoContainer wraps a running MongoDB testcontainer.
type MongoContainer struct {
	Container testcontainers.Container
	URI       string
}

// StartMongo starts a MongoDB testcontainer and returns its connection URI.
// Prefer the shared container via SetupTestMainWithMongo; starting a container
// per test adds roughly half a minute each.
func StartMongo(ctx context.Context) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoContainer{Container: container, URI: uri}, nil
}

// Terminate stops the container.
func (m *MongoContainer) Terminate(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("failed to terminate container: %w", err)
	}
	return nil
}

var (
	sharedMongo     *MongoContainer
	sharedMongoErr  error
	sharedMongoOnce sync.Once
	sharedMongoMu   sync.RWMutex
)

// SharedMongo returns a package-wide shared MongoDB container, starting it on
// first use. Tests isolate themselves with unique database names.
func SharedMongo(ctx context.Context) (*MongoContainer, error) {
	sharedMongoOnce.Do(func() {
		sharedMongoMu.Lock()
		defer sharedMongoMu.Unlock()
		sharedMongo, sharedMongoErr = StartMongo(ctx)
	})

	sharedMongoMu.RLock()
	defer sharedMongoMu.RUnlock()
	if sharedMongoErr != nil {
		return nil, sharedMongoErr
	}
	return sharedMongo, nil
}

// SetupTestMainWithMongo runs a package's tests against one shared MongoDB
// container. Usage:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongo(context.Background(), m))
//	}
func SetupTestMainWithMongo(ctx context.Context, m *testing.M) int {
	if _, err := SharedMongo(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	sharedMongoMu.Lock()
	defer sharedMongoMu.Unlock()
	if sharedMongo != nil {
		if err := sharedMongo.Terminate(ctx); err != nil {
			_, _ = os.Stderr.WriteString("warning: failed to terminate shared MongoDB container: " + err.Error() + "\n")
		}
	}
	return code
}

// SharedMongoURI returns the shared container's URI. Panics when the container
// has not been started via SharedMongo or SetupTestMainWithMongo.
func SharedMongoURI() string {
	sharedMongoMu.RLock()
	defer sharedMongoMu.RUnlock()
	if sharedMongo == nil {
		panic("shared MongoDB container not initialized")
	}
	return sharedMongo.URI
}

// TestDBName turns a test name into a unique, valid MongoDB database name.
func TestDBName(testName string) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_").Replace(testName)
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
