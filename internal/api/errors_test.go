package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/til-api/internal/domain"
	"github.com/phrazzld/til-api/internal/service"
	"github.com/phrazzld/til-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"nil error", nil, http.StatusInternalServerError},
		{"acronym not found", store.ErrAcronymNotFound, http.StatusNotFound},
		{"wrapped user not found", fmt.Errorf("lookup: %w", store.ErrUserNotFound), http.StatusNotFound},
		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"validation", domain.NewValidationError("short", "required field", domain.ErrValidation), http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{
			"service wrapped not found",
			service.NewServiceError("acronym", "get", "failed", store.ErrAcronymNotFound),
			http.StatusNotFound,
		},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "Acronym not found", GetSafeErrorMessage(store.ErrAcronymNotFound))
	assert.Equal(t, "User not found", GetSafeErrorMessage(store.ErrUserNotFound))
	assert.Equal(t, "Resource not found", GetSafeErrorMessage(store.ErrNotFound))
	assert.Equal(t, "Username already exists", GetSafeErrorMessage(store.ErrUsernameExists))
	assert.Equal(t, "Invalid ID", GetSafeErrorMessage(domain.ErrInvalidID))

	leaky := errors.New(`pq: relation "acronyms" does not exist at /var/lib/postgres`)
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(leaky))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	assert.Equal(t, "Invalid long: required field",
		SanitizeValidationError(domain.NewValidationError("long", "required field", domain.ErrValidation)))

	fieldErr := validator.New().Struct(struct {
		Name string `validate:"required"`
	}{})
	assert.Equal(t, "Invalid Name: required field", SanitizeValidationError(fieldErr))

	assert.Equal(t, "Validation error",
		SanitizeValidationError(domain.NewValidationError("", "bad input", domain.ErrValidation)))
	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("Field validation for 'Short' failed")))
}
