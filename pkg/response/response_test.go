package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/auth-service/internal/domain/apperr"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestTimestampFormat(t *testing.T) {
	ts := Timestamp()
	assert.True(t, strings.HasSuffix(ts, "Z"), "timestamp must end with Z, got %s", ts)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}Z$`, ts)
}

func TestSuccessEnvelope(t *testing.T) {
	c, w := newTestContext()
	Success(c, http.StatusCreated, map[string]string{"user_id": "u-1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var env map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, true, env["success"])
	assert.NotContains(t, env, "error")
	data := env["data"].(map[string]any)
	assert.Equal(t, "u-1", data["user_id"])
	assert.True(t, strings.HasSuffix(env["timestamp"].(string), "Z"))
}

func TestFailEnvelope(t *testing.T) {
	c, w := newTestContext()
	Fail(c, http.StatusBadRequest, []ErrorItem{
		{Code: apperr.CodeMissingField, Msg: "email is required", Field: "email"},
		{Code: apperr.CodeWeakPassword, Msg: "weak", Field: "password"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var env struct {
		Success bool        `json:"success"`
		Error   []ErrorItem `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	require.Len(t, env.Error, 2)
	assert.Equal(t, apperr.CodeMissingField, env.Error[0].Code)
	assert.Equal(t, "email", env.Error[0].Field)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "typed domain error", err: apperr.DuplicateEmail("a@b.com"), wantStatus: http.StatusBadRequest, wantCode: apperr.CodeDuplicateEmail},
		{name: "typed auth error", err: apperr.InvalidCredentials(), wantStatus: http.StatusUnauthorized, wantCode: apperr.CodeInvalidCredentials},
		{name: "not found", err: apperr.UserNotFound(), wantStatus: http.StatusNotFound, wantCode: apperr.CodeUserNotFound},
		{name: "untyped error never leaks", err: errors.New("pq: connection refused"), wantStatus: http.StatusInternalServerError, wantCode: apperr.CodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()
			FromError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var env struct {
				Error []ErrorItem `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			require.Len(t, env.Error, 1)
			assert.Equal(t, tt.wantCode, env.Error[0].Code)
			if tt.wantCode == apperr.CodeInternalError {
				assert.NotContains(t, env.Error[0].Msg, "pq:")
			}
		})
	}
}
