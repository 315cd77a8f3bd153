package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"recomptracker/internal/domain"
	"recomptracker/internal/repository"
)

// sqliteNutritionRepository implements repository.NutritionRepository.
type sqliteNutritionRepository struct {
	db *sql.DB
}

// NewNutritionRepository creates a new nutrition repository.
func NewNutritionRepository(db *sql.DB) repository.NutritionRepository {
	return &sqliteNutritionRepository{db: db}
}

// Create inserts one meal entry.
func (r *sqliteNutritionRepository) Create(ctx context.Context, entry *domain.NutritionEntry) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO nutrition (user_id, date, meal_type, meal_time, protein, carbs, fat, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.UserID, entry.Date, string(entry.MealType), entry.MealTime,
		entry.Protein, entry.Carbs, entry.Fat, entry.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("create nutrition entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create nutrition entry: %w", err)
	}
	entry.ID = id
	return id, nil
}

// GetByUserID returns all meal entries belonging to the user.
func (r *sqliteNutritionRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.NutritionEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, date, meal_type, meal_time, protein, carbs, fat, notes
		FROM nutrition
		WHERE user_id = ?
		ORDER BY date ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list nutrition entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.NutritionEntry{}
	for rows.Next() {
		var (
			entry    domain.NutritionEntry
			mealType string
		)
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Date, &mealType, &entry.MealTime,
			&entry.Protein, &entry.Carbs, &entry.Fat, &entry.Notes)
		if err != nil {
			return nil, fmt.Errorf("list nutrition entries: %w", err)
		}
		entry.MealType = domain.MealType(mealType)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list nutrition entries: %w", err)
	}
	return entries, nil
}

// DailyTotals sums each macro field per calendar date, ordered by date
// ascending. Dates with no entries do not appear.
func (r *sqliteNutritionRepository) DailyTotals(ctx context.Context, userID int64) ([]domain.DailyMacros, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, SUM(protein), SUM(carbs), SUM(fat)
		FROM nutrition
		WHERE user_id = ?
		GROUP BY date
		ORDER BY date ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("daily macro totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.DailyMacros{}
	for rows.Next() {
		var t domain.DailyMacros
		if err := rows.Scan(&t.Date, &t.Protein, &t.Carbs, &t.Fat); err != nil {
			return nil, fmt.Errorf("daily macro totals: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("daily macro totals: %w", err)
	}
	return totals, nil
}
