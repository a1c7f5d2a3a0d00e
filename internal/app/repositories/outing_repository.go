package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
)

// IOutingRepository defines the interface for outing application database operations
type IOutingRepository interface {
	Create(ctx context.Context, application *models.OutingApplication) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.OutingApplication, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.OutingApplication, error)
	ListAll(ctx context.Context) ([]*models.OutingApplication, error)
	UpdateStatus(ctx context.Context, id int64, status models.OutingStatus, decidedBy int64, decidedAt time.Time) error
}

// OutingRepository handles outing application database operations
type OutingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOutingRepository creates a new OutingRepository
func NewOutingRepository(db *pgxpool.Pool) *OutingRepository {
	return &OutingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new outing application in pending state
func (r *OutingRepository) Create(ctx context.Context, application *models.OutingApplication) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO outing_applications (user_id, name, student_number, out_date, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		application.UserID, application.Name, application.StudentNumber,
		application.OutDate, application.Status, application.AppliedAt).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating outing application: %w", err)
	}

	return id, nil
}

// GetByID retrieves an outing application by ID
func (r *OutingRepository) GetByID(ctx context.Context, id int64) (*models.OutingApplication, error) {
	application := &models.OutingApplication{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, student_number, out_date, status, applied_at, decided_by, decided_at
		FROM outing_applications
		WHERE id = $1`,
		id).Scan(
		&application.ID, &application.UserID, &application.Name, &application.StudentNumber,
		&application.OutDate, &application.Status, &application.AppliedAt,
		&application.DecidedBy, &application.DecidedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOutingNotFound
		}
		return nil, fmt.Errorf("error retrieving outing application: %w", err)
	}

	return application, nil
}

// ListByUserID retrieves a user's outing applications, newest application first
func (r *OutingRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.OutingApplication, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

// ListAll retrieves every outing application, newest application first
func (r *OutingRepository) ListAll(ctx context.Context) ([]*models.OutingApplication, error) {
	return r.list(ctx, nil)
}

func (r *OutingRepository) list(ctx context.Context, pred interface{}) ([]*models.OutingApplication, error) {
	query := r.sb.Select(
		"id", "user_id", "name", "student_number", "out_date",
		"status", "applied_at", "decided_by", "decided_at").
		From("outing_applications").
		OrderBy("applied_at DESC, id DESC")

	if pred != nil {
		query = query.Where(pred)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build outing list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing outing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.OutingApplication
	for rows.Next() {
		application := &models.OutingApplication{}
		if err := rows.Scan(
			&application.ID, &application.UserID, &application.Name, &application.StudentNumber,
			&application.OutDate, &application.Status, &application.AppliedAt,
			&application.DecidedBy, &application.DecidedAt); err != nil {
			return nil, fmt.Errorf("error scanning outing application row: %w", err)
		}
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outing application rows: %w", err)
	}

	return applications, nil
}

// UpdateStatus records a staff decision on an outing application
func (r *OutingRepository) UpdateStatus(ctx context.Context, id int64, status models.OutingStatus, decidedBy int64, decidedAt time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE outing_applications
		SET status = $1, decided_by = $2, decided_at = $3
		WHERE id = $4`,
		status, decidedBy, decidedAt, id)

	if err != nil {
		return fmt.Errorf("error updating outing status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOutingNotFound
	}

	return nil
}
