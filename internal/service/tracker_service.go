package service

import (
	"context"
	"errors"
	"fmt"
	"path"

	"recomptracker/internal/domain"
	"recomptracker/internal/repository"
	"recomptracker/internal/storage"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	// ErrInvalidEntry marks a log entry rejected by the enumeration or
	// mutual-exclusivity constraints before any insert happens.
	ErrInvalidEntry = errors.New("invalid log entry")
)

// TrackerService is the set of log writers. Each call validates the
// entry, performs a single insert scoped to the authenticated user,
// and never reads back or updates existing rows. A storage failure
// propagates to the caller; nothing is retried.
type TrackerService interface {
	LogWorkout(ctx context.Context, userID int64, date string, dayName domain.DayType, exercise string, strength *domain.StrengthFields, cardio *domain.CardioFields) (*domain.WorkoutEntry, error)
	LogMeal(ctx context.Context, userID int64, date string, mealType domain.MealType, mealTime string, protein, carbs, fat float64, notes string) (*domain.NutritionEntry, error)
	LogMeasurement(ctx context.Context, userID int64, date string, weight, chest, waist, hips float64) (*domain.BodyMeasurement, error)
	LogPhoto(ctx context.Context, userID int64, date string, contentType string, image []byte, notes string) (*domain.ProgressPhoto, error)
}

// trackerService implements the TrackerService interface.
type trackerService struct {
	workoutRepo     repository.WorkoutRepository
	nutritionRepo   repository.NutritionRepository
	measurementRepo repository.MeasurementRepository
	photoRepo       repository.PhotoRepository
	blobStore       storage.BlobStore // nil means photo payloads stay inline
}

// NewTrackerService creates a new instance of trackerService.
// blobStore may be nil, in which case photo payloads are stored inline
// in their rows.
func NewTrackerService(
	workoutRepo repository.WorkoutRepository,
	nutritionRepo repository.NutritionRepository,
	measurementRepo repository.MeasurementRepository,
	photoRepo repository.PhotoRepository,
	blobStore storage.BlobStore,
) TrackerService {
	return &trackerService{
		workoutRepo:     workoutRepo,
		nutritionRepo:   nutritionRepo,
		measurementRepo: measurementRepo,
		photoRepo:       photoRepo,
		blobStore:       blobStore,
	}
}

// LogWorkout validates and inserts one workout session. The day type
// decides which field group is legal: cardio day types take the
// (duration, intensity) pair, every other day type takes the
// (sets, reps, weight) triple. Supplying the wrong group, both, or
// neither fails with ErrInvalidEntry.
func (s *trackerService) LogWorkout(ctx context.Context, userID int64, date string, dayName domain.DayType, exercise string, strength *domain.StrengthFields, cardio *domain.CardioFields) (*domain.WorkoutEntry, error) {
	if !domain.ValidDate(date) {
		return nil, fmt.Errorf("%w: date %q is not a calendar day", ErrInvalidEntry, date)
	}
	if !dayName.IsValid() {
		return nil, fmt.Errorf("%w: unknown day type %q", ErrInvalidEntry, dayName)
	}
	if !dayName.AllowsExercise(exercise) {
		return nil, fmt.Errorf("%w: exercise %q is not part of %q", ErrInvalidEntry, exercise, dayName)
	}

	if dayName.IsCardio() {
		if cardio == nil || strength != nil {
			return nil, fmt.Errorf("%w: %q takes cardio fields only", ErrInvalidEntry, dayName)
		}
		if cardio.Duration < 1 {
			return nil, fmt.Errorf("%w: duration must be at least one minute", ErrInvalidEntry)
		}
		if !cardio.Intensity.IsValid() {
			return nil, fmt.Errorf("%w: unknown intensity %q", ErrInvalidEntry, cardio.Intensity)
		}
	} else {
		if strength == nil || cardio != nil {
			return nil, fmt.Errorf("%w: %q takes strength fields only", ErrInvalidEntry, dayName)
		}
		if strength.Sets < 1 || strength.Reps < 1 {
			return nil, fmt.Errorf("%w: sets and reps must be at least one", ErrInvalidEntry)
		}
		if strength.Weight < 0 {
			return nil, fmt.Errorf("%w: weight cannot be negative", ErrInvalidEntry)
		}
	}

	entry := &domain.WorkoutEntry{
		UserID:   userID,
		Date:     date,
		DayName:  dayName,
		Exercise: exercise,
		Strength: strength,
		Cardio:   cardio,
	}
	id, err := s.workoutRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return entry, nil
}

// LogMeal validates and inserts one meal.
func (s *trackerService) LogMeal(ctx context.Context, userID int64, date string, mealType domain.MealType, mealTime string, protein, carbs, fat float64, notes string) (*domain.NutritionEntry, error) {
	if !domain.ValidDate(date) {
		return nil, fmt.Errorf("%w: date %q is not a calendar day", ErrInvalidEntry, date)
	}
	if !mealType.IsValid() {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidEntry, mealType)
	}
	if mealTime != "" && !domain.ValidClock(mealTime) {
		return nil, fmt.Errorf("%w: meal time %q is not a clock time", ErrInvalidEntry, mealTime)
	}
	if protein < 0 || carbs < 0 || fat < 0 {
		return nil, fmt.Errorf("%w: macro values cannot be negative", ErrInvalidEntry)
	}

	entry := &domain.NutritionEntry{
		UserID:   userID,
		Date:     date,
		MealType: mealType,
		MealTime: mealTime,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Notes:    notes,
	}
	id, err := s.nutritionRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return entry, nil
}

// LogMeasurement validates and inserts one measurement session.
func (s *trackerService) LogMeasurement(ctx context.Context, userID int64, date string, weight, chest, waist, hips float64) (*domain.BodyMeasurement, error) {
	if !domain.ValidDate(date) {
		return nil, fmt.Errorf("%w: date %q is not a calendar day", ErrInvalidEntry, date)
	}
	if weight < 0 || chest < 0 || waist < 0 || hips < 0 {
		return nil, fmt.Errorf("%w: measurement values cannot be negative", ErrInvalidEntry)
	}

	m := &domain.BodyMeasurement{
		UserID: userID,
		Date:   date,
		Weight: weight,
		Chest:  chest,
		Waist:  waist,
		Hips:   hips,
	}
	id, err := s.measurementRepo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return m, nil
}

// LogPhoto stores one photo. The bytes are opaque here; the upload
// boundary has already constrained the format. With a blob store
// configured the payload goes there under a fresh object key and only
// the key is kept in the row.
func (s *trackerService) LogPhoto(ctx context.Context, userID int64, date string, contentType string, image []byte, notes string) (*domain.ProgressPhoto, error) {
	if !domain.ValidDate(date) {
		return nil, fmt.Errorf("%w: date %q is not a calendar day", ErrInvalidEntry, date)
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: photo payload is empty", ErrInvalidEntry)
	}

	photo := &domain.ProgressPhoto{
		UserID: userID,
		Date:   date,
		Notes:  notes,
	}

	if s.blobStore != nil {
		objectKey := path.Join("photos", fmt.Sprintf("%d", userID), uuid.NewString())
		if err := s.blobStore.Put(ctx, objectKey, contentType, image); err != nil {
			return nil, fmt.Errorf("store photo payload: %w", err)
		}
		photo.ObjectKey = objectKey
	} else {
		photo.Image = image
	}

	id, err := s.photoRepo.Create(ctx, photo)
	if err != nil {
		// Do not leave an orphaned object behind the failed row.
		if photo.ObjectKey != "" {
			_ = s.blobStore.Delete(ctx, photo.ObjectKey)
		}
		return nil, err
	}
	photo.ID = id
	return photo, nil
}
