package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"recomptracker/internal/domain"
	"recomptracker/internal/repository"
)

// sqliteMeasurementRepository implements repository.MeasurementRepository.
type sqliteMeasurementRepository struct {
	db *sql.DB
}

// NewMeasurementRepository creates a new measurement repository.
func NewMeasurementRepository(db *sql.DB) repository.MeasurementRepository {
	return &sqliteMeasurementRepository{db: db}
}

// Create inserts one measurement session.
func (r *sqliteMeasurementRepository) Create(ctx context.Context, m *domain.BodyMeasurement) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO body_measurements (user_id, date, weight, chest, waist, hips)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.UserID, m.Date, m.Weight, m.Chest, m.Waist, m.Hips,
	)
	if err != nil {
		return 0, fmt.Errorf("create measurement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create measurement: %w", err)
	}
	m.ID = id
	return id, nil
}

// GetByUserID returns the user's measurements ordered by date
// ascending. A user with no rows gets an empty slice, not an error.
func (r *sqliteMeasurementRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.BodyMeasurement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, date, weight, chest, waist, hips
		FROM body_measurements
		WHERE user_id = ?
		ORDER BY date ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer rows.Close()

	measurements := []domain.BodyMeasurement{}
	for rows.Next() {
		var m domain.BodyMeasurement
		err := rows.Scan(&m.ID, &m.UserID, &m.Date, &m.Weight, &m.Chest, &m.Waist, &m.Hips)
		if err != nil {
			return nil, fmt.Errorf("list measurements: %w", err)
		}
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	return measurements, nil
}
