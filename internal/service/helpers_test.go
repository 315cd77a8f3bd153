package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"recomptracker/internal/repository"
	"recomptracker/internal/repository/sqlite"
	"recomptracker/internal/storage"

	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

type testRepos struct {
	users        repository.UserRepository
	workouts     repository.WorkoutRepository
	nutrition    repository.NutritionRepository
	measurements repository.MeasurementRepository
	photos       repository.PhotoRepository
}

// newTestRepos builds the real SQLite repositories over a temp
// database.
func newTestRepos(t *testing.T) *testRepos {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.EnsureSchema(db))

	return &testRepos{
		users:        sqlite.NewUserRepository(db),
		workouts:     sqlite.NewWorkoutRepository(db),
		nutrition:    sqlite.NewNutritionRepository(db),
		measurements: sqlite.NewMeasurementRepository(db),
		photos:       sqlite.NewPhotoRepository(db),
	}
}

// registerTestUser goes through the real registration path and returns
// the new user's id.
func registerTestUser(t *testing.T, users repository.UserRepository, username string) int64 {
	t.Helper()

	auth := NewAuthService(users, testJWTSecret, 0)
	user, err := auth.Register(context.Background(), username, "correct horse battery")
	require.NoError(t, err)
	return user.ID
}

// memBlobStore is an in-memory BlobStore used to exercise the
// object-storage photo path without a bucket.
type memBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{objects: map[string][]byte{}}
}

func (m *memBlobStore) Put(_ context.Context, objectKey, _ string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectKey] = append([]byte(nil), data...)
	return nil
}

func (m *memBlobStore) Get(_ context.Context, objectKey string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[objectKey]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return data, nil
}

func (m *memBlobStore) Delete(_ context.Context, objectKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, objectKey)
	return nil
}

func (m *memBlobStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// failingBlobStore always fails on Put, to check that a storage
// failure surfaces instead of being swallowed.
type failingBlobStore struct{}

func (failingBlobStore) Put(context.Context, string, string, []byte) error {
	return fmt.Errorf("bucket unavailable")
}

func (failingBlobStore) Get(context.Context, string) ([]byte, error) {
	return nil, fmt.Errorf("bucket unavailable")
}

func (failingBlobStore) Delete(context.Context, string) error {
	return fmt.Errorf("bucket unavailable")
}
