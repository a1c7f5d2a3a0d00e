package seed

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/minwoo/dormhub/internal/app/models"
	appRepos "github.com/minwoo/dormhub/internal/app/repositories"
	"github.com/minwoo/dormhub/internal/pkg/auth"
)

const defaultAdminUsername = "admin"

// CreateDefaultData provisions the default staff account when no account
// with the admin username exists yet. Signup never produces staff users, so
// a fresh install needs this one.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.UsernameExists(ctx, defaultAdminUsername)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin account")
		return err
	}
	if exists {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin1234"
		lgr.Warn().Msg("ADMIN_PASSWORD not set, using the default admin password")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.User{
		Username:    defaultAdminUsername,
		Email:       "admin@dormhub.local",
		Password:    hashed,
		IsStaff:     true,
		IsSuperuser: true,
	}

	profile := &appModels.Profile{
		FullName: "Dorm Administrator",
	}
	adminID, err := userRepo.CreateUserWithProfile(ctx, admin, profile)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Int64("userID", adminID).Msg("Default admin account created")
	return nil
}
