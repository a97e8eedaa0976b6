package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/phrazzld/til-api/internal/api/shared"
	"github.com/phrazzld/til-api/internal/domain"
)

// getPathUUID extracts a UUID from the URL path parameters.
// A missing parameter is a validation error; a malformed one wraps domain.ErrInvalidID.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// decodeAndValidate decodes the JSON body into v and runs struct validation.
// Every failure is reported as a *domain.ValidationError.
func decodeAndValidate(r *http.Request, v interface{}) error {
	if err := shared.DecodeJSON(r, v); err != nil {
		if errors.Is(err, shared.ErrEmptyBody) {
			return domain.NewValidationError("body", "is required", domain.ErrInvalidFormat)
		}
		return domain.NewValidationError("body", "is not valid JSON", domain.ErrInvalidFormat)
	}

	if err := shared.ValidateRequest(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return domain.NewValidationError(
				fieldErrs[0].Field(),
				getValidationTagMessage(fieldErrs[0].Tag()),
				domain.ErrValidation,
			)
		}
		return domain.NewValidationError("", err.Error(), domain.ErrValidation)
	}

	return nil
}

// decodeAcronymInput turns a request body into a presence-checked domain.AcronymInput.
func decodeAcronymInput(r *http.Request) (domain.AcronymInput, error) {
	var req AcronymRequest
	if err := decodeAndValidate(r, &req); err != nil {
		return domain.AcronymInput{}, err
	}
	return req.toInput(), nil
}
