package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/qrfeedback/internal/server/middleware"
	"github.com/iudanet/qrfeedback/internal/server/storage/sqlite"
	"github.com/iudanet/qrfeedback/pkg/api"
)

func setupTestServer(t *testing.T, rl *middleware.RateLimiter) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewRouter(Options{
		Logger:      logger,
		Storage:     store,
		RateLimiter: rl,
		PublicURL:   "https://qr.example.com",
		Version:     "test",
	}))
	t.Cleanup(srv.Close)

	return srv
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestRouter_FeedbackFlow(t *testing.T) {
	srv := setupTestServer(t, nil)

	var area api.AreaResponse
	status := doJSON(t, http.MethodPost, srv.URL+"/api/v1/areas",
		api.CreateAreaRequest{Name: "Reception", Slug: "reception"}, &area)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "https://qr.example.com/api/v1/areas/reception/feedback", area.FeedbackURL)

	var fb api.FeedbackResponse
	status = doJSON(t, http.MethodPost, srv.URL+"/api/v1/areas/reception/feedback",
		api.SubmitFeedbackRequest{Rating: 5, Comment: "Great", Phone: "11 98765 4321"}, &fb)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "(11) 98765-4321", fb.Phone)

	var errResp api.ErrorResponse
	status = doJSON(t, http.MethodPost, srv.URL+"/api/v1/areas/reception/feedback",
		api.SubmitFeedbackRequest{Rating: 5, Phone: "(11) 999"}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)

	var list api.ListFeedbackResponse
	status = doJSON(t, http.MethodGet, srv.URL+"/api/v1/areas/reception/feedback", nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, fb.ID, list.Feedback[0].ID)

	var single api.FeedbackResponse
	status = doJSON(t, http.MethodGet, srv.URL+"/api/v1/feedback/"+fb.ID, nil, &single)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "reception", single.AreaSlug)
	assert.Equal(t, "(11) 98765-4321", single.Phone)

	var areas api.ListAreasResponse
	status = doJSON(t, http.MethodGet, srv.URL+"/api/v1/areas", nil, &areas)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, areas.Areas, 1)
}

func TestRouter_PhoneMaskAndHealth(t *testing.T) {
	srv := setupTestServer(t, nil)

	var masked api.PhoneMaskResponse
	status := doJSON(t, http.MethodPost, srv.URL+"/api/v1/phone/mask", api.PhoneMaskRequest{Value: "1199999"}, &masked)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "(11) 9999-9", masked.Masked)
	assert.False(t, masked.Valid)

	status = doJSON(t, http.MethodGet, srv.URL+"/api/v1/health", nil, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestRouter_Users(t *testing.T) {
	srv := setupTestServer(t, nil)

	var user api.UserResponse
	status := doJSON(t, http.MethodPost, srv.URL+"/api/v1/users",
		api.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Phone: "1133334444"}, &user)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "(11) 3333-4444", user.Phone)

	var got api.UserResponse
	status = doJSON(t, http.MethodGet, srv.URL+"/api/v1/users/"+user.ID, nil, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, user.ID, got.ID)

	var byPhone api.UserResponse
	status = doJSON(t, http.MethodGet, srv.URL+"/api/v1/users?phone="+url.QueryEscape("(11) 3333-4444"), nil, &byPhone)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, user.ID, byPhone.ID)

	status = doJSON(t, http.MethodPost, srv.URL+"/api/v1/users",
		api.CreateUserRequest{Name: "Bia", Email: "bia@example.com", Phone: "(11) 3333-4444"}, nil)
	assert.Equal(t, http.StatusConflict, status)
}

func TestRouter_RateLimitOnlySubmit(t *testing.T) {
	rl := middleware.NewRateLimiter(1, time.Minute, false)
	defer rl.Stop()
	srv := setupTestServer(t, rl)

	status := doJSON(t, http.MethodPost, srv.URL+"/api/v1/areas",
		api.CreateAreaRequest{Name: "Cafe", Slug: "cafe"}, nil)
	require.Equal(t, http.StatusCreated, status)

	submit := api.SubmitFeedbackRequest{Rating: 4}
	assert.Equal(t, http.StatusCreated, doJSON(t, http.MethodPost, srv.URL+"/api/v1/areas/cafe/feedback", submit, nil))
	assert.Equal(t, http.StatusTooManyRequests, doJSON(t, http.MethodPost, srv.URL+"/api/v1/areas/cafe/feedback", submit, nil))

	// Чтение не ограничивается
	assert.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/api/v1/areas/cafe/feedback", nil, nil))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	srv := setupTestServer(t, nil)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/areas", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
