package api

import (
	"net/http"

	"chatvault/backend/internal/interfaces"
	"chatvault/backend/internal/service"
)

// AuthHandler serves registration, login and the caller's profile.
type AuthHandler struct {
	service interfaces.AuthService
}

func NewAuthHandler(svc interfaces.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates an account with the light theme and returns a bearer token for it.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      service.RegisterRequest  true  "Account details"
// @Success      201      {object}  service.AuthResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Failure      429      {object}  ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, resp)
}

// Login godoc
// @Summary      Log in
// @Description  Accepts a username or an email in the username field.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      service.LoginRequest  true  "Credentials"
// @Success      200      {object}  service.AuthResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      429      {object}  ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// GetProfile godoc
// @Summary      Get the current user
// @Tags         Profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.UserProfile
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// UpdateTheme godoc
// @Summary      Change the UI theme
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      service.UpdateThemeRequest  true  "light or dark"
// @Success      200      {object}  StatusResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /profile/theme [patch]
func (h *AuthHandler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	var req service.UpdateThemeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.UpdateTheme(r.Context(), userID, &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, statusOK)
}
