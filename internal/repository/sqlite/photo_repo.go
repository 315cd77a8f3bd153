package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"recomptracker/internal/domain"
	"recomptracker/internal/repository"
)

// sqlitePhotoRepository implements repository.PhotoRepository.
type sqlitePhotoRepository struct {
	db *sql.DB
}

// NewPhotoRepository creates a new photo repository.
func NewPhotoRepository(db *sql.DB) repository.PhotoRepository {
	return &sqlitePhotoRepository{db: db}
}

// Create inserts one photo row. Either Image or ObjectKey is set,
// depending on where the payload lives.
func (r *sqlitePhotoRepository) Create(ctx context.Context, photo *domain.ProgressPhoto) (int64, error) {
	var image any
	if len(photo.Image) > 0 {
		image = photo.Image
	}
	var objectKey any
	if photo.ObjectKey != "" {
		objectKey = photo.ObjectKey
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO progress_photos (user_id, date, image, object_key, notes)
		VALUES (?, ?, ?, ?, ?)`,
		photo.UserID, photo.Date, image, objectKey, photo.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("create photo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create photo: %w", err)
	}
	photo.ID = id
	return id, nil
}

// GetByUserID lists the user's photos ordered by date descending. The
// image column is deliberately not selected so a listing never pulls
// every payload into memory.
func (r *sqlitePhotoRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.ProgressPhoto, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, date, notes
		FROM progress_photos
		WHERE user_id = ?
		ORDER BY date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	photos := []domain.ProgressPhoto{}
	for rows.Next() {
		var p domain.ProgressPhoto
		if err := rows.Scan(&p.ID, &p.UserID, &p.Date, &p.Notes); err != nil {
			return nil, fmt.Errorf("list photos: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return photos, nil
}

// GetByID fetches a single photo with its payload columns. The row
// must belong to userID; a foreign or stale id maps to ErrNotFound.
func (r *sqlitePhotoRepository) GetByID(ctx context.Context, userID, id int64) (*domain.ProgressPhoto, error) {
	var (
		p         domain.ProgressPhoto
		image     []byte
		objectKey sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, date, image, object_key, notes
		FROM progress_photos
		WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&p.ID, &p.UserID, &p.Date, &image, &objectKey, &p.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get photo: %w", err)
	}
	p.Image = image
	p.ObjectKey = objectKey.String
	return &p, nil
}
