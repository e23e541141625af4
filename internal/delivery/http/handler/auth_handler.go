package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/delivery/http/middleware"
	"go-trainer-booking/internal/usecase"
	"go-trainer-booking/pkg/jwt"
	"go-trainer-booking/pkg/response"
	"go-trainer-booking/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	jwtService  *jwt.JWTService
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, jwtService *jwt.JWTService) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		jwtService:  jwtService,
	}
}

// Bootstrap handles POST /api/auth/bootstrap. The bootstrap key travels in
// the x-bootstrap-key header and must match ADMIN_BOOTSTRAP_KEY.
func (h *AuthHandler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	var req dto.BootstrapAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Bootstrap(r.Context(), r.Header.Get("x-bootstrap-key"), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBootstrapForbidden):
			response.Forbidden(w, err.Error())
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			response.Error(w, http.StatusConflict, err.Error())
		default:
			response.InternalServerError(w, "Failed to bootstrap admin")
		}
		return
	}
	response.JSON(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to login")
		return
	}
	response.JSON(w, http.StatusOK, tokens)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	// The refresh token id is optional; without it only the access token dies
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	refreshTokenID := ""
	if req.RefreshToken != "" {
		if claims, err := h.jwtService.ValidateToken(req.RefreshToken); err == nil {
			refreshTokenID = claims.TokenID
		}
	}

	if err := h.authUsecase.Logout(r.Context(), tokenID, refreshTokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"loggedOut": true})
}

// RefreshToken handles POST /api/auth/refresh-token
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidToken) || errors.Is(err, usecase.ErrTokenRevoked) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to refresh token")
		return
	}
	response.JSON(w, http.StatusOK, tokens)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to load user")
		return
	}
	response.JSON(w, http.StatusOK, user)
}
