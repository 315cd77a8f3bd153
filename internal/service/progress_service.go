package service

import (
	"context"
	"errors"

	"recomptracker/internal/domain"
	"recomptracker/internal/repository"
	"recomptracker/internal/storage"
)

var (
	ErrPhotoNotFound = errors.New("photo not found")
)

// ProgressService is the query and aggregation layer feeding the
// dashboard views. Every call re-reads the store; nothing is cached.
type ProgressService interface {
	// ListMeasurements returns the user's measurements ordered by date
	// ascending. An empty history is an empty slice, not an error.
	ListMeasurements(ctx context.Context, userID int64) ([]domain.BodyMeasurement, error)

	// ListWorkouts returns all of the user's workout entries.
	ListWorkouts(ctx context.Context, userID int64) ([]domain.WorkoutEntry, error)

	// ListPhotos returns the user's photos ordered by date descending,
	// without image payloads.
	ListPhotos(ctx context.Context, userID int64) ([]domain.ProgressPhoto, error)

	// PhotoImage fetches a single photo's payload on demand.
	PhotoImage(ctx context.Context, userID, photoID int64) ([]byte, error)

	// DailyMacroTotals returns the per-day macro sums ordered by date
	// ascending.
	DailyMacroTotals(ctx context.Context, userID int64) ([]domain.DailyMacros, error)
}

// FilterByExercise narrows workout entries to one exercise, matched by
// exact name, for exercise-specific progression views.
func FilterByExercise(entries []domain.WorkoutEntry, exercise string) []domain.WorkoutEntry {
	filtered := []domain.WorkoutEntry{}
	for _, e := range entries {
		if e.Exercise == exercise {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// progressService implements the ProgressService interface.
type progressService struct {
	workoutRepo     repository.WorkoutRepository
	nutritionRepo   repository.NutritionRepository
	measurementRepo repository.MeasurementRepository
	photoRepo       repository.PhotoRepository
	blobStore       storage.BlobStore // nil when photo payloads are inline
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(
	workoutRepo repository.WorkoutRepository,
	nutritionRepo repository.NutritionRepository,
	measurementRepo repository.MeasurementRepository,
	photoRepo repository.PhotoRepository,
	blobStore storage.BlobStore,
) ProgressService {
	return &progressService{
		workoutRepo:     workoutRepo,
		nutritionRepo:   nutritionRepo,
		measurementRepo: measurementRepo,
		photoRepo:       photoRepo,
		blobStore:       blobStore,
	}
}

func (s *progressService) ListMeasurements(ctx context.Context, userID int64) ([]domain.BodyMeasurement, error) {
	return s.measurementRepo.GetByUserID(ctx, userID)
}

func (s *progressService) ListWorkouts(ctx context.Context, userID int64) ([]domain.WorkoutEntry, error) {
	return s.workoutRepo.GetByUserID(ctx, userID)
}

func (s *progressService) ListPhotos(ctx context.Context, userID int64) ([]domain.ProgressPhoto, error) {
	return s.photoRepo.GetByUserID(ctx, userID)
}

// PhotoImage returns the stored bytes for one photo, reading from the
// blob store when the row only holds an object key.
func (s *progressService) PhotoImage(ctx context.Context, userID, photoID int64) ([]byte, error) {
	photo, err := s.photoRepo.GetByID(ctx, userID, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}

	if photo.ObjectKey != "" {
		if s.blobStore == nil {
			return nil, errors.New("photo payload is in object storage but no blob store is configured")
		}
		data, err := s.blobStore.Get(ctx, photo.ObjectKey)
		if err != nil {
			if errors.Is(err, storage.ErrObjectNotFound) {
				return nil, ErrPhotoNotFound
			}
			return nil, err
		}
		return data, nil
	}
	return photo.Image, nil
}

func (s *progressService) DailyMacroTotals(ctx context.Context, userID int64) ([]domain.DailyMacros, error) {
	return s.nutritionRepo.DailyTotals(ctx, userID)
}
