package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/procure/backend/internal/application/identity"
	"github.com/procure/backend/internal/infrastructure/auth"
	"github.com/procure/backend/internal/infrastructure/config"
	"github.com/procure/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret",
		RefreshSecret:          "test-refresh-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "procure-backend-test",
	})
	authService := identityapp.NewAuthService("admin", "admin123", "admin", jwtService)
	h := NewAuthHandler(authService, jwtService)

	engine := gin.New()
	engine.POST("/api/v1/auth/login", h.Login)
	engine.POST("/api/v1/auth/refresh", h.Refresh)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	engine := newAuthTestRouter(t)

	t.Run("valid credentials", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/auth/login", identityapp.LoginRequest{
			Username: "admin",
			Password: "admin123",
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool                      `json:"success"`
			Data    identityapp.LoginResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data.AccessToken)
		assert.NotEmpty(t, resp.Data.RefreshToken)
		assert.Equal(t, "Bearer", resp.Data.TokenType)
		assert.Equal(t, int64((15*time.Minute).Seconds()), resp.Data.ExpiresIn)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/auth/login", identityapp.LoginRequest{
			Username: "admin",
			Password: "nope",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/auth/login", map[string]string{"username": "admin"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	engine := newAuthTestRouter(t)

	login := postJSON(t, engine, "/api/v1/auth/login", identityapp.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.Equal(t, http.StatusOK, login.Code)

	var loginResp struct {
		Data identityapp.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &loginResp))

	t.Run("valid refresh token", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/auth/refresh", RefreshRequest{
			RefreshToken: loginResp.Data.RefreshToken,
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data identityapp.LoginResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Data.AccessToken)
		assert.NotEmpty(t, resp.Data.RefreshToken)
	})

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/auth/refresh", RefreshRequest{
			RefreshToken: loginResp.Data.AccessToken,
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/auth/refresh", RefreshRequest{
			RefreshToken: "not-a-token",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
