package repository

import (
	"context"

	"recomptracker/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound          = RepositoryError("not found")
	ErrDuplicateUsername = RepositoryError("username already exists")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user rows.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// WorkoutRepository defines the interface for the workout log.
// Entries are append-only; there is no update or delete.
type WorkoutRepository interface {
	Create(ctx context.Context, entry *domain.WorkoutEntry) (int64, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.WorkoutEntry, error)
}

// NutritionRepository defines the interface for the meal log.
type NutritionRepository interface {
	Create(ctx context.Context, entry *domain.NutritionEntry) (int64, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.NutritionEntry, error)
	// DailyTotals groups a user's meals by calendar date and sums each
	// macro field, ordered by date ascending. Dates without entries are
	// absent, not zero-filled.
	DailyTotals(ctx context.Context, userID int64) ([]domain.DailyMacros, error)
}

// MeasurementRepository defines the interface for body measurements.
type MeasurementRepository interface {
	Create(ctx context.Context, m *domain.BodyMeasurement) (int64, error)
	// GetByUserID returns the user's measurements ordered by date
	// ascending, for trend charting.
	GetByUserID(ctx context.Context, userID int64) ([]domain.BodyMeasurement, error)
}

// PhotoRepository defines the interface for progress photos.
type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.ProgressPhoto) (int64, error)
	// GetByUserID returns the user's photos ordered by date descending
	// without the image payload.
	GetByUserID(ctx context.Context, userID int64) ([]domain.ProgressPhoto, error)
	// GetByID returns a single photo including its inline payload or
	// object key. The photo must belong to userID, otherwise
	// ErrNotFound.
	GetByID(ctx context.Context, userID, id int64) (*domain.ProgressPhoto, error)
}
