package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"dorm not found", apperrors.ErrDormApplicationNotFound, 404, string(dto.ErrorCodeResourceNotFound)},
		{"post not found", apperrors.ErrPostNotFound, 404, string(dto.ErrorCodeResourceNotFound)},
		{"permission denied", apperrors.ErrPermissionDenied, 403, string(dto.ErrorCodeForbidden)},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, string(dto.ErrorCodeInvalidCredentials)},
		{"expired token", apperrors.ErrTokenExpired, 401, string(dto.ErrorCodeExpiredToken)},
		{"revoked token", apperrors.ErrTokenRevoked, 401, string(dto.ErrorCodeInvalidToken)},
		{"validation failed", apperrors.ErrValidationFailed, 400, string(dto.ErrorCodeValidationFailed)},
		{"dorm application exists", apperrors.ErrDormApplicationExists, 409, string(dto.ErrorCodeResourceAlreadyExists)},
		{"username exists", apperrors.ErrUsernameAlreadyExists, 409, string(dto.ErrorCodeResourceAlreadyExists)},
		{"outing already decided", apperrors.ErrOutingAlreadyDecided, 409, string(dto.ErrorCodeConflict)},
		{"unknown error", errors.New("boom"), 500, string(dto.ErrorCodeInternalServer)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := handleError(t, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, string(body.Error.Code))
			assert.False(t, body.Timestamp.IsZero())
		})
	}
}

func TestHandleAPIError_CustomMessage(t *testing.T) {
	err := apperrors.NewValidationError("position must be between 0 and 4")
	w, body := handleError(t, err)

	assert.Equal(t, 400, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "position must be between 0 and 4", body.Error.Message)
}

func TestHandleAPIError_WrappedError(t *testing.T) {
	// Errors wrapped by services must still map on the underlying sentinel.
	err := apperrors.NewCustomError(apperrors.ErrOutingNotFound, "outing 42 not found")
	w, body := handleError(t, err)

	assert.Equal(t, 404, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "outing 42 not found", body.Error.Message)
}
