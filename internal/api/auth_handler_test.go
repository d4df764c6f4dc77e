package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chatvault/backend/internal/api"
	app_errors "chatvault/backend/internal/errors"
	"chatvault/backend/internal/interfaces/mocks"
	"chatvault/backend/internal/model"
	"chatvault/backend/internal/service"
)

func setupAuthHandler(t *testing.T) (*api.AuthHandler, *mocks.MockAuthService) {
	mockAuthSvc := mocks.NewMockAuthService(t)
	return api.NewAuthHandler(mockAuthSvc), mockAuthSvc
}

func demoProfile() *model.UserProfile {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &model.UserProfile{ID: testUserID, Username: "demo", Email: "demo@example.com", Theme: model.ThemeLight, CreatedAt: now, UpdatedAt: now}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		expected := &service.AuthResponse{Token: "token", User: demoProfile()}
		mockAuthSvc.On("Register", mock.Anything, &service.RegisterRequest{
			Username: "demo", Email: "demo@example.com", Password: "demo123",
		}).Return(expected, nil).Once()

		body := `{"username":"demo","email":"demo@example.com","password":"demo123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.Register(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp service.AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "token", resp.Token)
		assert.Equal(t, "demo", resp.User.Username)
		assert.Equal(t, model.ThemeLight, resp.User.Theme)
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		handler, _ := setupAuthHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader("{not json"))
		rr := httptest.NewRecorder()
		handler.Register(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Validation message reaches the client", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("Register", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: password must be at least 6 characters", app_errors.ErrValidation)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username":"demo","email":"demo@example.com","password":"x"}`))
		rr := httptest.NewRecorder()
		handler.Register(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr), "password must be at least 6 characters")
	})

	t.Run("Conflict", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("Register", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: username or email already exists", app_errors.ErrConflict)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username":"demo","email":"demo@example.com","password":"demo123"}`))
		rr := httptest.NewRecorder()
		handler.Register(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("Login", mock.Anything, &service.LoginRequest{Username: "demo@example.com", Password: "demo123"}).
			Return(&service.AuthResponse{Token: "token", User: demoProfile()}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"demo@example.com","password":"demo123"}`))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("Login", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: invalid credentials", app_errors.ErrUnauthorized)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"demo","password":"wrong"}`))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "invalid credentials", decodeError(t, rr))
	})
}

func TestAuthHandler_GetProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("GetProfile", mock.Anything, testUserID).Return(demoProfile(), nil).Once()

		rr := httptest.NewRecorder()
		handler.GetProfile(rr, newAuthedRequest(http.MethodGet, "/api/profile", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		var profile model.UserProfile
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
		assert.Equal(t, *demoProfile(), profile)
	})

	t.Run("User gone", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("GetProfile", mock.Anything, testUserID).Return(nil, app_errors.ErrNotFound).Once()

		rr := httptest.NewRecorder()
		handler.GetProfile(rr, newAuthedRequest(http.MethodGet, "/api/profile", ""))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("No identity in context", func(t *testing.T) {
		handler, _ := setupAuthHandler(t)

		rr := httptest.NewRecorder()
		handler.GetProfile(rr, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "authorization required", decodeError(t, rr))
	})
}

func TestAuthHandler_UpdateTheme(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("UpdateTheme", mock.Anything, testUserID, &service.UpdateThemeRequest{Theme: "dark"}).Return(nil).Once()

		rr := httptest.NewRecorder()
		handler.UpdateTheme(rr, newAuthedRequest(http.MethodPatch, "/api/profile/theme", `{"theme":"dark"}`))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("Invalid theme", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("UpdateTheme", mock.Anything, testUserID, mock.Anything).
			Return(fmt.Errorf("%w: theme must be one of: light, dark", app_errors.ErrValidation)).Once()

		rr := httptest.NewRecorder()
		handler.UpdateTheme(rr, newAuthedRequest(http.MethodPatch, "/api/profile/theme", `{"theme":"purple"}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Store failure is hidden", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("UpdateTheme", mock.Anything, testUserID, mock.Anything).
			Return(errors.New("sqlite: database is locked")).Once()

		rr := httptest.NewRecorder()
		handler.UpdateTheme(rr, newAuthedRequest(http.MethodPatch, "/api/profile/theme", `{"theme":"dark"}`))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "sqlite")
	})
}
