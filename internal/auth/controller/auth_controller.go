package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"stockroom/internal/auth/middleware"
	"stockroom/internal/dto"
	apperrors "stockroom/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	CurrentUser(ctx context.Context, callerID int) (*dto.UserDTO, error)
	ListUsers(ctx context.Context) (*dto.UserListResponse, error)
}

type AuthController struct {
	service Service
	logger  *zap.Logger
}

func NewAuthController(service Service, logger *zap.Logger) *AuthController {
	return &AuthController{
		service: service,
		logger:  logger,
	}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.service.Register(r.Context(), req)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("user registered", zap.Int("userId", resp.User.ID), zap.String("role", resp.User.Role))
	c.writeJSON(w, http.StatusCreated, resp)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.service.Login(r.Context(), req)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("user logged in", zap.Int("userId", resp.User.ID))
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing caller identity")
		return
	}

	user, err := c.service.CurrentUser(r.Context(), caller.ID)
	if err != nil {
		c.handleServiceError(w, err, c.logger)
		return
	}
	c.writeJSON(w, http.StatusOK, user)
}

func (c *AuthController) ListUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := c.service.ListUsers(r.Context())
	if err != nil {
		c.handleServiceError(w, err, c.logger)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *AuthController) handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}
	if _, ok := apperrors.IsUnauthorizedError(err); ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
		return
	}
	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeError(w, http.StatusConflict, "DUPLICATE", err.Error())
		return
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	logger.Error("auth operation failed", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *AuthController) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func (c *AuthController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *AuthController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
