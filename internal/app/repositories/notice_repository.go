package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
)

// INoticeRepository defines the interface for notice database operations
type INoticeRepository interface {
	Create(ctx context.Context, notice *models.Notice) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Notice, error)
	List(ctx context.Context) ([]*models.Notice, error)
	Update(ctx context.Context, notice *models.Notice) error
	Delete(ctx context.Context, id int64) error
}

// NoticeRepository handles notice database operations
type NoticeRepository struct {
	db *pgxpool.Pool
}

// NewNoticeRepository creates a new NoticeRepository
func NewNoticeRepository(db *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{db: db}
}

// Create inserts a new notice
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO notices (title, content, image_path, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		notice.Title, notice.Content, notice.ImagePath, notice.Date).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating notice: %w", err)
	}

	return id, nil
}

// GetByID retrieves a notice by ID
func (r *NoticeRepository) GetByID(ctx context.Context, id int64) (*models.Notice, error) {
	notice := &models.Notice{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, content, image_path, date
		FROM notices
		WHERE id = $1`,
		id).Scan(&notice.ID, &notice.Title, &notice.Content, &notice.ImagePath, &notice.Date)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("error retrieving notice: %w", err)
	}

	return notice, nil
}

// List retrieves every notice, newest first
func (r *NoticeRepository) List(ctx context.Context) ([]*models.Notice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, content, image_path, date
		FROM notices
		ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing notices: %w", err)
	}
	defer rows.Close()

	var notices []*models.Notice
	for rows.Next() {
		notice := &models.Notice{}
		if err := rows.Scan(&notice.ID, &notice.Title, &notice.Content, &notice.ImagePath, &notice.Date); err != nil {
			return nil, fmt.Errorf("error scanning notice row: %w", err)
		}
		notices = append(notices, notice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notice rows: %w", err)
	}

	return notices, nil
}

// Update updates a notice's title, content and image path
func (r *NoticeRepository) Update(ctx context.Context, notice *models.Notice) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE notices
		SET title = $1, content = $2, image_path = $3
		WHERE id = $4`,
		notice.Title, notice.Content, notice.ImagePath, notice.ID)

	if err != nil {
		return fmt.Errorf("error updating notice: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoticeNotFound
	}

	return nil
}

// Delete removes a notice
func (r *NoticeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting notice: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoticeNotFound
	}

	return nil
}
