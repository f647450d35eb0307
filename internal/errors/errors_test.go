package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "product not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("test not found")

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, notFoundErr)
	assert.Equal(t, "test not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "sku", Message: "sku is required"},
		{Field: "name", Message: "required field"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestForbiddenError(t *testing.T) {
	err := NewForbiddenError("access denied")

	forbiddenErr, ok := IsForbiddenError(err)
	assert.True(t, ok)
	assert.Equal(t, "access denied", forbiddenErr.Error())

	_, ok = IsForbiddenError(errors.New("other"))
	assert.False(t, ok)
}

func TestUnauthorizedError(t *testing.T) {
	err := NewUnauthorizedError("invalid token")

	unauthorizedErr, ok := IsUnauthorizedError(err)
	assert.True(t, ok)
	assert.Equal(t, "invalid token", unauthorizedErr.Error())
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("username already exists")

	conflictErr, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, "username already exists", conflictErr.Message)
}

func TestInsufficientStockError_CarriesAvailable(t *testing.T) {
	err := NewInsufficientStockError(42)

	stockErr, ok := IsInsufficientStockError(err)
	assert.True(t, ok)
	assert.Equal(t, 42, stockErr.Available)
	assert.Contains(t, err.Error(), "42")
}

func TestInsufficientStockError_ZeroAvailable(t *testing.T) {
	err := NewInsufficientStockError(0)

	assert.Contains(t, err.Error(), "available: 0")
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("store error")
	err := NewInternalError("failed to read store", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "failed to read store", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to read store")
	assert.Contains(t, err.Error(), "store error")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}
