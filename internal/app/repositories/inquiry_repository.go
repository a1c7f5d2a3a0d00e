package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
)

// IInquiryRepository defines the interface for inquiry desk database operations
type IInquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Inquiry, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.Inquiry, error)
	ListAll(ctx context.Context) ([]*models.Inquiry, error)
	UpsertAnswer(ctx context.Context, answer *models.InquiryAnswer) error
}

// InquiryRepository handles inquiry desk database operations
type InquiryRepository struct {
	db *pgxpool.Pool
}

// NewInquiryRepository creates a new InquiryRepository
func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// Create inserts a new inquiry
func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO inquiries (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id`,
		inquiry.UserID, inquiry.Title, inquiry.Content).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating inquiry: %w", err)
	}

	return id, nil
}

const inquirySelect = `
	SELECT i.id, i.user_id, i.title, i.content, i.created_at,
	       a.id, a.admin_id, a.answer, a.answered_at
	FROM inquiries i
	LEFT JOIN inquiry_answers a ON a.inquiry_id = i.id`

func scanInquiry(row pgx.Row) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{}
	var answerID, adminID *int64
	var answerText *string
	var answeredAt *time.Time

	err := row.Scan(
		&inquiry.ID, &inquiry.UserID, &inquiry.Title, &inquiry.Content, &inquiry.CreatedAt,
		&answerID, &adminID, &answerText, &answeredAt)
	if err != nil {
		return nil, err
	}

	if answerID != nil {
		inquiry.Answer = &models.InquiryAnswer{
			ID:         *answerID,
			InquiryID:  inquiry.ID,
			AdminID:    *adminID,
			Answer:     *answerText,
			AnsweredAt: *answeredAt,
		}
	}

	return inquiry, nil
}

// GetByID retrieves an inquiry together with its answer, if any
func (r *InquiryRepository) GetByID(ctx context.Context, id int64) (*models.Inquiry, error) {
	inquiry, err := scanInquiry(r.db.QueryRow(ctx, inquirySelect+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("error retrieving inquiry: %w", err)
	}

	return inquiry, nil
}

// ListByUserID retrieves a user's inquiries, newest first
func (r *InquiryRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Inquiry, error) {
	return r.list(ctx, inquirySelect+` WHERE i.user_id = $1 ORDER BY i.created_at DESC, i.id DESC`, userID)
}

// ListAll retrieves every inquiry, newest first
func (r *InquiryRepository) ListAll(ctx context.Context) ([]*models.Inquiry, error) {
	return r.list(ctx, inquirySelect+` ORDER BY i.created_at DESC, i.id DESC`)
}

func (r *InquiryRepository) list(ctx context.Context, sql string, args ...interface{}) ([]*models.Inquiry, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []*models.Inquiry
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning inquiry row: %w", err)
		}
		inquiries = append(inquiries, inquiry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inquiry rows: %w", err)
	}

	return inquiries, nil
}

// UpsertAnswer records the staff answer for an inquiry. A re-answer replaces
// the text and timestamp but keeps the admin who answered first.
func (r *InquiryRepository) UpsertAnswer(ctx context.Context, answer *models.InquiryAnswer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO inquiry_answers (inquiry_id, admin_id, answer, answered_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (inquiry_id)
		DO UPDATE SET answer = EXCLUDED.answer, answered_at = EXCLUDED.answered_at`,
		answer.InquiryID, answer.AdminID, answer.Answer, answer.AnsweredAt)

	if err != nil {
		return fmt.Errorf("error upserting inquiry answer: %w", err)
	}

	return nil
}
