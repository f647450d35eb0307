package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"stockroom/internal/dto"
	apperrors "stockroom/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	ListProducts(ctx context.Context) (*dto.ProductListResponse, error)
	GetProduct(ctx context.Context, id int) (*dto.ProductDTO, error)
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductDTO, error)
	UpdateProduct(ctx context.Context, id int, req dto.UpdateProductRequest) (*dto.ProductDTO, error)
	DeleteProduct(ctx context.Context, id int) (*dto.ProductDTO, error)
	LowStockAlerts(ctx context.Context) (*dto.ProductListResponse, error)
	LowDemandProducts(ctx context.Context, reference time.Time) (*dto.ProductListResponse, error)
	AvailableStockView(ctx context.Context) (*dto.AvailableStockResponse, error)
	Analytics(ctx context.Context) (*dto.AnalyticsSummary, error)
}

type ProductsController struct {
	service Service
	logger  *zap.Logger
}

func NewProductsController(service Service, logger *zap.Logger) *ProductsController {
	return &ProductsController{
		service: service,
		logger:  logger,
	}
}

func (c *ProductsController) List(w http.ResponseWriter, r *http.Request) {
	resp, err := c.service.ListProducts(r.Context())
	if err != nil {
		c.handleServiceError(w, err, c.requestLogger())
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *ProductsController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	resp, err := c.service.GetProduct(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, err, c.requestLogger())
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *ProductsController) Create(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	created, err := c.service.CreateProduct(r.Context(), req)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("product created", zap.Int("productId", created.ID), zap.String("sku", created.SKU))
	c.writeJSON(w, http.StatusCreated, created)
}

func (c *ProductsController) Update(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	updated, err := c.service.UpdateProduct(r.Context(), id, req)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("product updated", zap.Int("productId", id))
	c.writeJSON(w, http.StatusOK, updated)
}

func (c *ProductsController) Delete(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	removed, err := c.service.DeleteProduct(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("product deleted", zap.Int("productId", id))
	c.writeJSON(w, http.StatusOK, removed)
}

func (c *ProductsController) LowStockAlerts(w http.ResponseWriter, r *http.Request) {
	resp, err := c.service.LowStockAlerts(r.Context())
	if err != nil {
		c.handleServiceError(w, err, c.requestLogger())
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *ProductsController) LowDemandProducts(w http.ResponseWriter, r *http.Request) {
	resp, err := c.service.LowDemandProducts(r.Context(), time.Now().UTC())
	if err != nil {
		c.handleServiceError(w, err, c.requestLogger())
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *ProductsController) AvailableStock(w http.ResponseWriter, r *http.Request) {
	resp, err := c.service.AvailableStockView(r.Context())
	if err != nil {
		c.handleServiceError(w, err, c.requestLogger())
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *ProductsController) Analytics(w http.ResponseWriter, r *http.Request) {
	resp, err := c.service.Analytics(r.Context())
	if err != nil {
		c.handleServiceError(w, err, c.requestLogger())
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *ProductsController) parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.writeValidationError(w, "invalid product id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func (c *ProductsController) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}

func (c *ProductsController) handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	logger.Error("product operation failed", zap.Error(err))
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

func (c *ProductsController) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func (c *ProductsController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *ProductsController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
