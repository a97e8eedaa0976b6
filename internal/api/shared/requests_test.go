package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr error
		errText string
	}{
		{name: "valid json", body: `{"name": "test", "age": 30}`},
		{name: "invalid json", body: `{"name": "test", "age": 30,}`, errText: "invalid character"},
		{name: "empty body", body: "", wantErr: ErrEmptyBody},
		{name: "wrong type", body: `{"age": "thirty"}`, errText: "cannot unmarshal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var p payload
			err := DecodeJSON(req, &p)

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errText)
			default:
				require.NoError(t, err)
				assert.Equal(t, "test", p.Name)
				assert.Equal(t, 30, p.Age)
			}
		})
	}
}

type selfValidating struct{ ok bool }

func (s selfValidating) Validate() error {
	if !s.ok {
		return errors.New("custom validation failed")
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	type tagged struct {
		Short string `validate:"required"`
		Long  string `json:"long" validate:"omitempty,min=2"`
	}

	assert.NoError(t, ValidateRequest(&tagged{Short: "OMG"}))

	err := ValidateRequest(&tagged{})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "Short", validationErrs[0].Field(), "untagged fields keep the Go name")

	err = ValidateRequest(&tagged{Short: "OMG", Long: "x"})
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "long", validationErrs[0].Field(), "json tag names are reported")

	assert.NoError(t, ValidateRequest(selfValidating{ok: true}))
	assert.EqualError(t, ValidateRequest(selfValidating{}), "custom validation failed")
}
