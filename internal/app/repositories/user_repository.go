package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/db"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
	"github.com/minwoo/dormhub/internal/pkg/dberrors"
	"github.com/minwoo/dormhub/internal/pkg/logger"
)

// rowQuerier is satisfied by both the pool and a transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// IUserRepository defines the interface for user and profile database operations
type IUserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.Profile) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	CreateProfile(ctx context.Context, profile *models.Profile) (int64, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	AdjustPoints(ctx context.Context, username string, pointType models.PointType, delta int) error
	SearchProfiles(ctx context.Context, field, value string) ([]*models.Profile, error)
}

// UserRepository handles user and profile database operations
type UserRepository struct {
	db *pgxpool.Pool
	pg *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: pool,
		pg: &db.PostgresDB{Pool: pool},
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateUser creates a new user
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	return r.createUser(ctx, r.db, user)
}

func (r *UserRepository) createUser(ctx context.Context, q rowQuerier, user *models.User) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO users (username, email, password, is_staff, is_superuser)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.Username, user.Email, user.Password, user.IsStaff, user.IsSuperuser).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, email, password, is_staff, is_superuser, created_at, updated_at
		FROM users
		WHERE id = $1`,
		id).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.IsStaff, &user.IsSuperuser, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetUserByUsername retrieves a user by username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, email, password, is_staff, is_superuser, created_at, updated_at
		FROM users
		WHERE username = $1`,
		username).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.IsStaff, &user.IsSuperuser, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// UsernameExists checks if a username is already taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}

	return exists, nil
}

// CreateUserWithProfile inserts a user and its profile in one transaction so
// a failed profile insert never leaves an orphan account behind.
func (r *UserRepository) CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.Profile) (int64, error) {
	var userID int64
	err := r.pg.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, err := r.createUser(ctx, tx, user)
		if err != nil {
			return err
		}
		profile.UserID = id
		if _, err := r.createProfile(ctx, tx, profile); err != nil {
			return err
		}
		userID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// CreateProfile creates the profile row for a user
func (r *UserRepository) CreateProfile(ctx context.Context, profile *models.Profile) (int64, error) {
	return r.createProfile(ctx, r.db, profile)
}

func (r *UserRepository) createProfile(ctx context.Context, q rowQuerier, profile *models.Profile) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO profiles (user_id, full_name, department, phone_number, reward_point, penalty_point)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		profile.UserID, profile.FullName, profile.Department, profile.PhoneNumber,
		profile.RewardPoint, profile.PenaltyPoint).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "profiles_user_id_key") {
			return 0, apperrors.ErrConflict
		}
		return 0, fmt.Errorf("error creating profile: %w", err)
	}

	return id, nil
}

// GetProfileByUserID retrieves a profile with its user by user ID
func (r *UserRepository) GetProfileByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	profile := &models.Profile{User: &models.User{}}
	err := r.db.QueryRow(ctx, `
		SELECT p.id, p.user_id, p.full_name, p.department, p.phone_number,
		       p.reward_point, p.penalty_point,
		       u.id, u.username, u.email, u.is_staff, u.is_superuser, u.created_at, u.updated_at
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`,
		userID).Scan(
		&profile.ID, &profile.UserID, &profile.FullName, &profile.Department,
		&profile.PhoneNumber, &profile.RewardPoint, &profile.PenaltyPoint,
		&profile.User.ID, &profile.User.Username, &profile.User.Email,
		&profile.User.IsStaff, &profile.User.IsSuperuser,
		&profile.User.CreatedAt, &profile.User.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return profile, nil
}

// AdjustPoints adds delta to the reward or penalty counter of the profile
// belonging to the given username. The increment happens in a single UPDATE
// so concurrent adjustments never lose a delta.
func (r *UserRepository) AdjustPoints(ctx context.Context, username string, pointType models.PointType, delta int) error {
	column := "reward_point"
	if pointType == models.PointTypePenalty {
		column = "penalty_point"
	}

	sql := fmt.Sprintf(`
		UPDATE profiles SET %s = %s + $1
		FROM users
		WHERE profiles.user_id = users.id AND users.username = $2`, column, column)

	cmdTag, err := r.db.Exec(ctx, sql, delta, username)
	if err != nil {
		logger.Error().Err(err).Str("username", username).Msg("Error executing point adjustment")
		return fmt.Errorf("error adjusting points: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// SearchProfiles finds profiles matching an enumerated search field. The
// field must already be validated by the caller; studentNumber matches
// through the dorm application carrying that number.
func (r *UserRepository) SearchProfiles(ctx context.Context, field, value string) ([]*models.Profile, error) {
	query := r.sb.Select(
		"p.id", "p.user_id", "p.full_name", "p.department", "p.phone_number",
		"p.reward_point", "p.penalty_point",
		"u.id", "u.username", "u.email", "u.is_staff", "u.is_superuser",
		"u.created_at", "u.updated_at").
		From("profiles p").
		Join("users u ON u.id = p.user_id").
		OrderBy("u.username ASC")

	switch field {
	case "username":
		query = query.Where(squirrel.Eq{"u.username": value})
	case "studentNumber":
		query = query.Join("dorm_applications d ON d.user_id = p.user_id").
			Where(squirrel.Eq{"d.student_number": value})
	case "department":
		query = query.Where(squirrel.Eq{"p.department": value})
	default:
		return nil, apperrors.ErrValidationFailed
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build profile search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		profile := &models.Profile{User: &models.User{}}
		if err := rows.Scan(
			&profile.ID, &profile.UserID, &profile.FullName, &profile.Department,
			&profile.PhoneNumber, &profile.RewardPoint, &profile.PenaltyPoint,
			&profile.User.ID, &profile.User.Username, &profile.User.Email,
			&profile.User.IsStaff, &profile.User.IsSuperuser,
			&profile.User.CreatedAt, &profile.User.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}

	return profiles, nil
}
