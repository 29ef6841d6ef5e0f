package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-habits/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateTimezone(ctx context.Context, id, timezone string) error {
	return m.Called(ctx, id, timezone).Error(0)
}

func setupHandler() (*gin.Engine, *MockUserRepository, *services.TokenService) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockUserRepository)
	tokenService := services.NewTokenService("handler-secret", "kanso-test", time.Hour, mockRepo)
	authHandler := NewAuthHandler(services.NewAuthService(mockRepo), tokenService)

	router := gin.New()
	authHandler.RegisterRoutes(router.Group(""))

	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(tokenService))
	authHandler.RegisterProtectedRoutes(protected)

	return router, mockRepo, tokenService
}

func postJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success: Should return 201 and created user (No Password)", func(t *testing.T) {
		router, mockRepo, _ := setupHandler()

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		w := postJSON(router, http.MethodPost, "/auth/register",
			`{"email": "test@example.com", "password": "password123", "timezone": "Europe/Rome"}`, "")

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "test@example.com", response["email"])
		assert.Equal(t, "Europe/Rome", response["timezone"])
		assert.NotEmpty(t, response["id"])
		assert.Nil(t, response["password"])
		assert.Nil(t, response["password_hash"])

		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail: Validation Errors", func(t *testing.T) {
		router, mockRepo, _ := setupHandler()

		bodies := []string{
			`{"email": "not-an-email", "password": "password123"}`,
			`{"email": "test@example.com", "password": "short"}`,
			`{"email": "test@example.com", "password": "password123", "timezone": "Mars/Base"}`,
		}

		for _, b := range bodies {
			w := postJSON(router, http.MethodPost, "/auth/register", b, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, b)
		}
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Email Conflict", func(t *testing.T) {
		router, mockRepo, _ := setupHandler()

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrEmailAlreadyExists)

		w := postJSON(router, http.MethodPost, "/auth/register", `{"email": "dup@example.com", "password": "password123"}`, "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Fail: Internal Error", func(t *testing.T) {
		router, mockRepo, _ := setupHandler()

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

		w := postJSON(router, http.MethodPost, "/auth/register", `{"email": "x@example.com", "password": "password123"}`, "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db down")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	user, err := domain.NewUser("user-1", "mario@example.com", "")
	require.NoError(t, err)
	require.NoError(t, user.SetPassword("password123"))

	t.Run("Success: Returns a usable bearer token", func(t *testing.T) {
		router, mockRepo, tokens := setupHandler()

		mockRepo.On("GetByEmail", mock.Anything, "mario@example.com").Return(user, nil)
		mockRepo.On("GetByID", mock.Anything, "user-1").Return(user, nil)

		w := postJSON(router, http.MethodPost, "/auth/login", `{"email": "mario@example.com", "password": "password123"}`, "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp tokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "bearer", resp.TokenType)

		id, err := tokens.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "user-1", id)
	})

	t.Run("Fail: Bad Credentials", func(t *testing.T) {
		router, mockRepo, _ := setupHandler()

		mockRepo.On("GetByEmail", mock.Anything, "mario@example.com").Return(user, nil)
		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

		w := postJSON(router, http.MethodPost, "/auth/login", `{"email": "mario@example.com", "password": "wrong-pass"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = postJSON(router, http.MethodPost, "/auth/login", `{"email": "ghost@example.com", "password": "password123"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	router, mockRepo, tokens := setupHandler()

	mockRepo.On("GetByID", mock.Anything, "user-1").Return(&domain.User{ID: "user-1", Email: "mario@example.com", Timezone: "UTC"}, nil)
	mockRepo.On("UpdateTimezone", mock.Anything, "user-1", "Asia/Tokyo").Return(nil)

	token, err := tokens.GenerateToken("user-1")
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"mario@example.com"`)

	w = postJSON(router, http.MethodPut, "/auth/me/timezone", `{"timezone": "Asia/Tokyo"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"timezone":"Asia/Tokyo"`)

	w = postJSON(router, http.MethodPut, "/auth/me/timezone", `{"timezone": "Nowhere/Land"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(router, http.MethodPut, "/auth/me/timezone", `{"timezone": "UTC"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
