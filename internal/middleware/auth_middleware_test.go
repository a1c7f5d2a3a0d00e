package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/pkg/auth"
)

func newTestJWTService(accessExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "dormhub.test",
	})
}

// staffGatedRouter registers a route behind JWTAuth and StaffRequired, the
// same chain the staff route groups use.
func staffGatedRouter(jwtService *auth.JWTService) *gin.Engine {
	m := NewAuthMiddleware(jwtService)
	router := gin.New()
	router.POST("/points", m.JWTAuth(), m.StaffRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
	})
	return router
}

func issueToken(t *testing.T, jwtService *auth.JWTService, user *models.User) string {
	t.Helper()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)
	return accessToken
}

func requestWithAuth(t *testing.T, router *gin.Engine, authHeader string) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/points", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestStaffRequired_NonStaffForbidden(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router := staffGatedRouter(jwtService)

	token := issueToken(t, jwtService, &models.User{ID: 1, Username: "kim2021"})
	w, body := requestWithAuth(t, router, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeForbidden, body.Error.Code)
}

func TestStaffRequired_StaffAllowed(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router := staffGatedRouter(jwtService)

	token := issueToken(t, jwtService, &models.User{ID: 2, Username: "admin", IsStaff: true})
	w, body := requestWithAuth(t, router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
}

func TestStaffRequired_SuperuserAllowed(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router := staffGatedRouter(jwtService)

	token := issueToken(t, jwtService, &models.User{ID: 3, Username: "root", IsSuperuser: true})
	w, _ := requestWithAuth(t, router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_MissingToken(t *testing.T) {
	router := staffGatedRouter(newTestJWTService(time.Hour))

	w, body := requestWithAuth(t, router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeUnauthorized, body.Error.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(-time.Minute)
	router := staffGatedRouter(jwtService)

	token := issueToken(t, jwtService, &models.User{ID: 2, Username: "admin", IsStaff: true})
	w, body := requestWithAuth(t, router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeExpiredToken, body.Error.Code)
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	router := staffGatedRouter(newTestJWTService(time.Hour))

	w, body := requestWithAuth(t, router, "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeInvalidToken, body.Error.Code)
}

func TestJWTAuth_RawTokenAccepted(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router := staffGatedRouter(jwtService)

	// Swagger UI sends the token without the Bearer prefix.
	token := issueToken(t, jwtService, &models.User{ID: 2, Username: "admin", IsStaff: true})
	w, _ := requestWithAuth(t, router, token)

	assert.Equal(t, http.StatusOK, w.Code)
}
