package main

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/til-api/internal/api"
	"github.com/phrazzld/til-api/internal/api/shared"
	"github.com/phrazzld/til-api/internal/mocks"
	"github.com/phrazzld/til-api/internal/platform/logger"
	"github.com/phrazzld/til-api/internal/service"
)

// newTestServer starts the full router over in-memory stores.
func newTestServer(t *testing.T) *resty.Client {
	t.Helper()

	_, testLogger, cleanup := logger.SetupTestLogger(t)
	t.Cleanup(cleanup)

	acronyms := mocks.NewMockAcronymStore()
	users := mocks.NewMockUserStore()

	acronymSvc, err := service.NewAcronymService(acronyms, users, testLogger)
	require.NoError(t, err)
	userSvc, err := service.NewUserService(users, acronyms, 4, testLogger)
	require.NoError(t, err)

	srv := httptest.NewServer(newRouter(testLogger, acronymSvc, userSvc))
	t.Cleanup(srv.Close)

	return resty.New().SetBaseURL(srv.URL)
}

func TestHealthEndpoint(t *testing.T) {
	client := newTestServer(t)

	resp, err := client.R().Get("/health")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "OK", resp.String())
}

func TestAcronymLifecycle(t *testing.T) {
	client := newTestServer(t)

	var user api.UserResponse
	resp, err := client.R().
		SetBody(map[string]string{"name": "Tim", "username": "timc", "password": "password"}).
		SetResult(&user).
		Post("/api/users")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.NotContains(t, resp.String(), "password")

	var created api.AcronymResponse
	resp, err = client.R().
		SetBody(map[string]string{"short": "OMG", "long": "Oh My God", "userID": user.ID.String()}).
		SetResult(&created).
		Post("/api/acronyms")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, user.ID, created.UserID)

	var owner api.UserResponse
	resp, err = client.R().SetResult(&owner).Get("/api/acronyms/" + created.ID.String() + "/user")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, user, owner)

	var owned []api.AcronymResponse
	resp, err = client.R().SetResult(&owned).Get("/api/users/" + user.ID.String() + "/acronyms")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, owned, 1)
	assert.Equal(t, created.ID, owned[0].ID)

	var updated api.AcronymResponse
	resp, err = client.R().
		SetBody(map[string]string{"short": "OMG", "long": "Oh My Gosh", "userID": user.ID.String()}).
		SetResult(&updated).
		Put("/api/acronyms/" + created.ID.String())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "Oh My Gosh", updated.Long)

	var found []api.AcronymResponse
	resp, err = client.R().SetQueryParam("term", "Oh My Gosh").SetResult(&found).Get("/api/acronyms/search")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, found, 1)

	resp, err = client.R().Delete("/api/acronyms/" + created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())

	var errResp shared.ErrorResponse
	resp, err = client.R().SetError(&errResp).Get("/api/acronyms/" + created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.Equal(t, "Acronym not found", errResp.Error)
	assert.NotEmpty(t, errResp.TraceID)
}

func TestStaticRoutesTakePrecedenceOverID(t *testing.T) {
	client := newTestServer(t)

	for _, path := range []string{"/api/acronyms/sorted", "/api/acronyms"} {
		resp, err := client.R().Get(path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode(), path)
		assert.JSONEq(t, "[]", resp.String(), path)
	}

	resp, err := client.R().Get("/api/acronyms/first")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	resp, err = client.R().Get("/api/acronyms/search")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
}

func TestRequestIDAppearsInLogs(t *testing.T) {
	buf, testLogger, cleanup := logger.SetupTestLogger(t)
	defer cleanup()

	acronymSvc, err := service.NewAcronymService(mocks.NewMockAcronymStore(), mocks.NewMockUserStore(), testLogger)
	require.NoError(t, err)
	userSvc, err := service.NewUserService(mocks.NewMockUserStore(), mocks.NewMockAcronymStore(), 4, testLogger)
	require.NoError(t, err)

	srv := httptest.NewServer(newRouter(testLogger, acronymSvc, userSvc))
	defer srv.Close()

	resp, err := resty.New().SetBaseURL(srv.URL).R().
		SetHeader("X-Request-Id", "req-123").
		Get("/api/acronyms/" + uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), "request completed")
}

func TestConcurrentCreates(t *testing.T) {
	client := newTestServer(t)
	userID := uuid.New()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := client.R().
				SetBody(map[string]string{"short": "A", "long": "B", "userID": userID.String()}).
				Post("/api/acronyms")
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode())
		}()
	}
	wg.Wait()

	var all []api.AcronymResponse
	resp, err := client.R().SetResult(&all).Get("/api/acronyms")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Len(t, all, n)

	seen := make(map[uuid.UUID]bool, n)
	for _, a := range all {
		seen[a.ID] = true
	}
	assert.Len(t, seen, n)
}
