package sqlite

import (
	"context"
	"testing"

	"recomptracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutRepository(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "alice")

	strength := &domain.WorkoutEntry{
		UserID:   userID,
		Date:     "2024-01-01",
		DayName:  domain.DayFullBodyStrength,
		Exercise: "Bench Press",
		Strength: &domain.StrengthFields{Sets: 4, Reps: 8, Weight: 60},
	}
	_, err := repo.Create(ctx, strength)
	require.NoError(t, err)

	cardio := &domain.WorkoutEntry{
		UserID:   userID,
		Date:     "2024-01-02",
		DayName:  domain.DayHIITCardio,
		Exercise: "Bike Sprints",
		Cardio:   &domain.CardioFields{Duration: 20, Intensity: domain.IntensityHigh},
	}
	_, err = repo.Create(ctx, cardio)
	require.NoError(t, err)

	entries, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Submitted fields come back intact, absent groups stay nil.
	got := entries[0]
	assert.Equal(t, "2024-01-01", got.Date)
	assert.Equal(t, domain.DayFullBodyStrength, got.DayName)
	assert.Equal(t, "Bench Press", got.Exercise)
	require.NotNil(t, got.Strength)
	assert.Equal(t, domain.StrengthFields{Sets: 4, Reps: 8, Weight: 60}, *got.Strength)
	assert.Nil(t, got.Cardio)

	got = entries[1]
	require.NotNil(t, got.Cardio)
	assert.Equal(t, domain.CardioFields{Duration: 20, Intensity: domain.IntensityHigh}, *got.Cardio)
	assert.Nil(t, got.Strength)
}

func TestWorkoutRepositoryScopedToUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutRepository(db)
	ctx := context.Background()
	aliceID := createTestUser(t, db, "alice")
	bobID := createTestUser(t, db, "bob")

	_, err := repo.Create(ctx, &domain.WorkoutEntry{
		UserID:   aliceID,
		Date:     "2024-01-01",
		DayName:  domain.DayLowerBodyPower,
		Exercise: "Deadlifts",
		Strength: &domain.StrengthFields{Sets: 3, Reps: 5, Weight: 100},
	})
	require.NoError(t, err)

	bobEntries, err := repo.GetByUserID(ctx, bobID)
	require.NoError(t, err)
	assert.Empty(t, bobEntries)

	aliceEntries, err := repo.GetByUserID(ctx, aliceID)
	require.NoError(t, err)
	assert.Len(t, aliceEntries, 1)
}
