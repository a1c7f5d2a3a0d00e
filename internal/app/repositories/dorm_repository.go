package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
	"github.com/minwoo/dormhub/internal/pkg/dberrors"
)

// RoomAssignment carries the fields a staff member may change on an
// application. Nil fields are left untouched.
type RoomAssignment struct {
	BuildingName *string
	RoomNumber   *int
	Position     *int
}

// IDormRepository defines the interface for dorm application database operations
type IDormRepository interface {
	Create(ctx context.Context, application *models.DormApplication) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.DormApplication, error)
	GetByUserID(ctx context.Context, userID int64) (*models.DormApplication, error)
	ExistsForUser(ctx context.Context, userID int64) (bool, error)
	List(ctx context.Context) ([]*models.DormApplication, error)
	UpdateAssignment(ctx context.Context, id int64, assignment RoomAssignment) error
	Delete(ctx context.Context, id int64) error
}

// DormRepository handles dorm application database operations
type DormRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDormRepository creates a new DormRepository
func NewDormRepository(db *pgxpool.Pool) *DormRepository {
	return &DormRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new dorm application. Each user may hold only one.
func (r *DormRepository) Create(ctx context.Context, application *models.DormApplication) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO dorm_applications
			(user_id, name, student_number, gender, content, building_name, room_number, position, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		application.UserID, application.Name, application.StudentNumber, application.Gender,
		application.Content, application.BuildingName, application.RoomNumber,
		application.Position, application.IsAvailable).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "dorm_applications_user_id_key") {
			return 0, apperrors.ErrDormApplicationExists
		}
		if dberrors.IsDuplicateConstraintError(err, "dorm_applications_student_number_key") {
			return 0, apperrors.ErrStudentNumberExists
		}
		return 0, fmt.Errorf("error creating dorm application: %w", err)
	}

	return id, nil
}

// GetByID retrieves a dorm application by ID
func (r *DormRepository) GetByID(ctx context.Context, id int64) (*models.DormApplication, error) {
	return r.getOne(ctx, "id", id)
}

// GetByUserID retrieves the dorm application belonging to a user
func (r *DormRepository) GetByUserID(ctx context.Context, userID int64) (*models.DormApplication, error) {
	return r.getOne(ctx, "user_id", userID)
}

func (r *DormRepository) getOne(ctx context.Context, column string, value int64) (*models.DormApplication, error) {
	application := &models.DormApplication{}
	sql := fmt.Sprintf(`
		SELECT id, user_id, name, student_number, gender, content,
		       building_name, room_number, position, is_available
		FROM dorm_applications
		WHERE %s = $1`, column)

	err := r.db.QueryRow(ctx, sql, value).Scan(
		&application.ID, &application.UserID, &application.Name, &application.StudentNumber,
		&application.Gender, &application.Content, &application.BuildingName,
		&application.RoomNumber, &application.Position, &application.IsAvailable)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDormApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving dorm application: %w", err)
	}

	return application, nil
}

// ExistsForUser checks if a user already filed an application
func (r *DormRepository) ExistsForUser(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM dorm_applications WHERE user_id = $1)`,
		userID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking dorm application: %w", err)
	}

	return exists, nil
}

// List retrieves every dorm application, newest first
func (r *DormRepository) List(ctx context.Context) ([]*models.DormApplication, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, student_number, gender, content,
		       building_name, room_number, position, is_available
		FROM dorm_applications
		ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing dorm applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.DormApplication
	for rows.Next() {
		application := &models.DormApplication{}
		if err := rows.Scan(
			&application.ID, &application.UserID, &application.Name, &application.StudentNumber,
			&application.Gender, &application.Content, &application.BuildingName,
			&application.RoomNumber, &application.Position, &application.IsAvailable); err != nil {
			return nil, fmt.Errorf("error scanning dorm application row: %w", err)
		}
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dorm application rows: %w", err)
	}

	return applications, nil
}

// UpdateAssignment applies a partial room assignment. Fields left nil in the
// assignment keep their current value.
func (r *DormRepository) UpdateAssignment(ctx context.Context, id int64, assignment RoomAssignment) error {
	update := r.sb.Update("dorm_applications").Where(squirrel.Eq{"id": id})

	if assignment.BuildingName != nil {
		update = update.Set("building_name", *assignment.BuildingName)
	}
	if assignment.RoomNumber != nil {
		update = update.Set("room_number", *assignment.RoomNumber)
	}
	if assignment.Position != nil {
		update = update.Set("position", *assignment.Position)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build assignment update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating dorm application: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDormApplicationNotFound
	}

	return nil
}

// Delete removes a dorm application
func (r *DormRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM dorm_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting dorm application: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDormApplicationNotFound
	}

	return nil
}
