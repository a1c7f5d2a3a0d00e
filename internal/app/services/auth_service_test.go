package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
	"github.com/minwoo/dormhub/internal/pkg/auth"
)

// fakeUserRepo is an in-memory IUserRepository for service tests.
type fakeUserRepo struct {
	nextUserID    int64
	nextProfileID int64
	users         map[int64]*models.User
	profiles      map[int64]*models.Profile // keyed by user id
	profileErr    error                     // forces CreateUserWithProfile to fail after the user insert
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[int64]*models.User),
		profiles: make(map[int64]*models.Profile),
	}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	r.nextUserID++
	stored := *user
	stored.ID = r.nextUserID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.users[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeUserRepo) CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.Profile) (int64, error) {
	id, err := r.CreateUser(ctx, user)
	if err != nil {
		return 0, err
	}
	if r.profileErr != nil {
		delete(r.users, id)
		return 0, r.profileErr
	}
	profile.UserID = id
	if _, err := r.CreateProfile(ctx, profile); err != nil {
		delete(r.users, id)
		return 0, err
	}
	return id, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) CreateProfile(_ context.Context, profile *models.Profile) (int64, error) {
	if _, ok := r.profiles[profile.UserID]; ok {
		return 0, apperrors.ErrConflict
	}
	r.nextProfileID++
	stored := *profile
	stored.ID = r.nextProfileID
	r.profiles[stored.UserID] = &stored
	return stored.ID, nil
}

func (r *fakeUserRepo) GetProfileByUserID(_ context.Context, userID int64) (*models.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	copied := *p
	if u, ok := r.users[userID]; ok {
		user := *u
		copied.User = &user
	}
	return &copied, nil
}

func (r *fakeUserRepo) AdjustPoints(_ context.Context, username string, pointType models.PointType, delta int) error {
	for _, u := range r.users {
		if u.Username != username {
			continue
		}
		p, ok := r.profiles[u.ID]
		if !ok {
			return apperrors.ErrUserNotFound
		}
		if pointType == models.PointTypeReward {
			p.RewardPoint += delta
		} else {
			p.PenaltyPoint += delta
		}
		return nil
	}
	return apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) SearchProfiles(_ context.Context, field, value string) ([]*models.Profile, error) {
	var out []*models.Profile
	for _, u := range r.users {
		p, ok := r.profiles[u.ID]
		if !ok {
			continue
		}
		match := false
		switch field {
		case "username":
			match = u.Username == value
		case "department":
			match = p.Department == value
		}
		if match {
			copied := *p
			user := *u
			copied.User = &user
			out = append(out, &copied)
		}
	}
	return out, nil
}

// fakeTokenRepo is an in-memory ITokenRepository for service tests.
type storedToken struct {
	userID  int64
	expiry  time.Time
	revoked bool
}

type fakeTokenRepo struct {
	tokens map[string]*storedToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*storedToken)}
}

func (r *fakeTokenRepo) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	r.tokens[token] = &storedToken{userID: userID, expiry: expiryDate}
	return nil
}

func (r *fakeTokenRepo) GetTokenByValue(_ context.Context, token string) (int64, time.Time, bool, error) {
	t, ok := r.tokens[token]
	if !ok {
		return 0, time.Time{}, false, apperrors.ErrTokenNotFound
	}
	if t.revoked {
		return 0, time.Time{}, true, apperrors.ErrTokenRevoked
	}
	if time.Now().After(t.expiry) {
		return 0, time.Time{}, false, apperrors.ErrTokenExpired
	}
	return t.userID, t.expiry, false, nil
}

func (r *fakeTokenRepo) RevokeToken(_ context.Context, token string) error {
	t, ok := r.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	t.revoked = true
	return nil
}

func (r *fakeTokenRepo) RevokeAllUserTokens(_ context.Context, userID int64) error {
	for _, t := range r.tokens {
		if t.userID == userID {
			t.revoked = true
		}
	}
	return nil
}

func (r *fakeTokenRepo) CleanupExpiredTokens(_ context.Context) (int64, error) {
	var removed int64
	for token, t := range r.tokens {
		if t.revoked || time.Now().After(t.expiry) {
			delete(r.tokens, token)
			removed++
		}
	}
	return removed, nil
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "dormhub.test",
	})
}

func newAuthService() (*AuthService, *fakeUserRepo, *fakeTokenRepo) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	return NewAuthService(userRepo, tokenRepo, newTestJWTService()), userRepo, tokenRepo
}

func signup(t *testing.T, svc *AuthService) *dto.SignupResponse {
	t.Helper()
	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username:   "kim2021",
		Password:   "secret123",
		Email:      "kim@dorm.ac.kr",
		FullName:   "Kim Minjae",
		Department: "Computer Science",
	})
	require.NoError(t, err)
	return resp
}

func TestAuthService_Signup(t *testing.T) {
	svc, userRepo, _ := newAuthService()

	resp := signup(t, svc)

	user, err := userRepo.GetUserByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.False(t, user.IsStaff, "signup must never grant the staff role")
	assert.False(t, user.IsSuperuser)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	profile, err := userRepo.GetProfileByUserID(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Kim Minjae", profile.FullName)
	assert.Zero(t, profile.RewardPoint)
	assert.Zero(t, profile.PenaltyPoint)
}

func TestAuthService_Signup_ProfileFailureLeavesNoUser(t *testing.T) {
	svc, userRepo, _ := newAuthService()
	userRepo.profileErr = errors.New("profile insert failed")

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username: "kim2021",
		Password: "secret123",
		Email:    "kim@dorm.ac.kr",
		FullName: "Kim Minjae",
	})
	require.Error(t, err)

	exists, err := userRepo.UsernameExists(context.Background(), "kim2021")
	require.NoError(t, err)
	assert.False(t, exists, "a failed signup must not leave the user row behind")

	_, err = userRepo.GetUserByUsername(context.Background(), "kim2021")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestAuthService_Signup_DuplicateUsername(t *testing.T) {
	svc, _, _ := newAuthService()
	signup(t, svc)

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username: "kim2021",
		Password: "secret123",
		Email:    "kim2@dorm.ac.kr",
		FullName: "Another Kim",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc, _, _ := newAuthService()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"short password", "kim2021", "ab1"},
		{"password without digit", "kim2021", "onlyletters"},
		{"password without letter", "kim2021", "12345678"},
		{"username too short", "ab", "secret123"},
		{"username with space", "kim 2021", "secret123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), &dto.SignupRequest{
				Username: tt.username,
				Password: tt.password,
				Email:    "kim@dorm.ac.kr",
				FullName: "Kim",
			})
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, _, tokenRepo := newAuthService()
	created := signup(t, svc)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "kim2021",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, created.UserID, resp.UserID)
	assert.False(t, resp.IsStaff)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, 3600, resp.ExpiresIn)

	userID, _, _, err := tokenRepo.GetTokenByValue(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, created.UserID, userID)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _, _ := newAuthService()
	signup(t, svc)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "kim2021", Password: "wrong999"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken_Rotation(t *testing.T) {
	svc, _, tokenRepo := newAuthService()
	signup(t, svc)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "kim2021", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The used refresh token must be revoked and unusable.
	_, _, _, err = tokenRepo.GetTokenByValue(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	_, err = svc.RefreshToken(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestAuthService_RefreshToken_Unknown(t *testing.T) {
	svc, _, _ := newAuthService()

	_, err := svc.RefreshToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)

	_, err = svc.RefreshToken(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestAuthService_Logout_RevokesAll(t *testing.T) {
	svc, _, tokenRepo := newAuthService()
	created := signup(t, svc)

	first, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "kim2021", Password: "secret123"})
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "kim2021", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), created.UserID))

	_, _, _, err = tokenRepo.GetTokenByValue(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	_, _, _, err = tokenRepo.GetTokenByValue(context.Background(), second.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}
