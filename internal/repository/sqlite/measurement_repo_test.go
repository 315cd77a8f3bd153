package sqlite

import (
	"context"
	"testing"

	"recomptracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurementRepositoryEmptyHistory(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeasurementRepository(db)
	userID := createTestUser(t, db, "alice")

	measurements, err := repo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, measurements)
	assert.Empty(t, measurements)
}

func TestMeasurementRepositoryOrderedByDateAscending(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeasurementRepository(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "alice")

	// Inserted out of order on purpose.
	for _, date := range []string{"2024-02-01", "2024-01-01", "2024-01-15"} {
		_, err := repo.Create(ctx, &domain.BodyMeasurement{
			UserID: userID,
			Date:   date,
			Weight: 80,
			Chest:  100,
			Waist:  85,
			Hips:   95,
		})
		require.NoError(t, err)
	}

	measurements, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, measurements, 3)
	assert.Equal(t, "2024-01-01", measurements[0].Date)
	assert.Equal(t, "2024-01-15", measurements[1].Date)
	assert.Equal(t, "2024-02-01", measurements[2].Date)
}
