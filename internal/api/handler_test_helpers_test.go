package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/til-api/internal/domain"
	"github.com/phrazzld/til-api/internal/mocks"
	"github.com/phrazzld/til-api/internal/service"
)

type testEnv struct {
	acronyms *mocks.MockAcronymStore
	users    *mocks.MockUserStore
	router   http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	acronyms := mocks.NewMockAcronymStore()
	users := mocks.NewMockUserStore()

	acronymSvc, err := service.NewAcronymService(acronyms, users, nil)
	require.NoError(t, err)
	userSvc, err := service.NewUserService(users, acronyms, 4, nil)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		for _, route := range NewAcronymHandler(acronymSvc, nil).Routes() {
			r.Method(route.Method, route.Pattern, route.Handler)
		}
		for _, route := range NewUserHandler(userSvc, nil).Routes() {
			r.Method(route.Method, route.Pattern, route.Handler)
		}
	})

	return &testEnv{acronyms: acronyms, users: users, router: r}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) seedAcronym(t *testing.T, short, long string, userID uuid.UUID) *domain.Acronym {
	t.Helper()
	a := domain.NewAcronym(domain.AcronymInput{Short: short, Long: long, UserID: userID})
	e.acronyms.Seed(a)
	return a
}

func (e *testEnv) seedUser(t *testing.T, name, username string) *domain.User {
	t.Helper()
	u, err := domain.NewUser(name, username, "secret")
	require.NoError(t, err)
	u.PasswordHash = "$2a$04$abcdefghijklmnopqrstuv"
	u.Password = ""
	e.users.Seed(u)
	return u
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}
