package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"recomptracker/internal/domain"
	"recomptracker/internal/repository"
)

// sqliteWorkoutRepository implements repository.WorkoutRepository.
type sqliteWorkoutRepository struct {
	db *sql.DB
}

// NewWorkoutRepository creates a new workout repository.
func NewWorkoutRepository(db *sql.DB) repository.WorkoutRepository {
	return &sqliteWorkoutRepository{db: db}
}

// Create inserts one workout entry. The strength and cardio column
// groups are mutually exclusive; the absent group is stored as NULL.
func (r *sqliteWorkoutRepository) Create(ctx context.Context, entry *domain.WorkoutEntry) (int64, error) {
	var sets, reps, weight, duration, intensity any
	if entry.Strength != nil {
		sets = entry.Strength.Sets
		reps = entry.Strength.Reps
		weight = entry.Strength.Weight
	}
	if entry.Cardio != nil {
		duration = entry.Cardio.Duration
		intensity = string(entry.Cardio.Intensity)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO workouts (user_id, date, day_name, exercise, sets, reps, weight, duration, intensity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.UserID, entry.Date, string(entry.DayName), entry.Exercise,
		sets, reps, weight, duration, intensity,
	)
	if err != nil {
		return 0, fmt.Errorf("create workout: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create workout: %w", err)
	}
	entry.ID = id
	return id, nil
}

// GetByUserID returns all workout entries belonging to the user,
// ordered by date then insertion order.
func (r *sqliteWorkoutRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.WorkoutEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, date, day_name, exercise, sets, reps, weight, duration, intensity
		FROM workouts
		WHERE user_id = ?
		ORDER BY date ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	entries := []domain.WorkoutEntry{}
	for rows.Next() {
		entry, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("list workouts: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return entries, nil
}

func scanWorkout(rows *sql.Rows) (*domain.WorkoutEntry, error) {
	var (
		entry     domain.WorkoutEntry
		dayName   string
		sets      sql.NullInt64
		reps      sql.NullInt64
		weight    sql.NullFloat64
		duration  sql.NullInt64
		intensity sql.NullString
	)
	err := rows.Scan(&entry.ID, &entry.UserID, &entry.Date, &dayName, &entry.Exercise,
		&sets, &reps, &weight, &duration, &intensity)
	if err != nil {
		return nil, err
	}
	entry.DayName = domain.DayType(dayName)

	if sets.Valid {
		entry.Strength = &domain.StrengthFields{
			Sets:   int(sets.Int64),
			Reps:   int(reps.Int64),
			Weight: weight.Float64,
		}
	}
	if duration.Valid {
		entry.Cardio = &domain.CardioFields{
			Duration:  int(duration.Int64),
			Intensity: domain.Intensity(intensity.String),
		}
	}
	return &entry, nil
}
