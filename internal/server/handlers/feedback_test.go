package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/qrfeedback/internal/models"
	"github.com/iudanet/qrfeedback/pkg/api"
)

func submitRequest(t *testing.T, slug string, body any) *http.Request {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/areas/"+slug+"/feedback", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("slug", slug)
	return req
}

func TestFeedbackHandler_Submit(t *testing.T) {
	tests := []struct {
		name       string
		slug       string
		req        api.SubmitFeedbackRequest
		wantStatus int
		wantPhone  string
		wantMsg    string
	}{
		{
			name:       "with masked phone",
			slug:       "lobby",
			req:        api.SubmitFeedbackRequest{Rating: 5, Comment: " Great ", Name: "Maria", Phone: "(11) 98765-4321"},
			wantStatus: http.StatusCreated,
			wantPhone:  "11987654321",
		},
		{
			name:       "with raw landline",
			slug:       "lobby",
			req:        api.SubmitFeedbackRequest{Rating: 3, Phone: "1133334444"},
			wantStatus: http.StatusCreated,
			wantPhone:  "1133334444",
		},
		{
			name:       "without phone",
			slug:       "lobby",
			req:        api.SubmitFeedbackRequest{Rating: 1, Comment: "Slow"},
			wantStatus: http.StatusCreated,
			wantPhone:  "",
		},
		{
			name:       "partial phone",
			slug:       "lobby",
			req:        api.SubmitFeedbackRequest{Rating: 4, Phone: "(11) 999"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "phone must contain 10 or 11 digits",
		},
		{
			name:       "twelve digits masked",
			slug:       "lobby",
			req:        api.SubmitFeedbackRequest{Rating: 4, Phone: "(11) 98765-43210"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "phone must contain 10 or 11 digits",
		},
		{
			name:       "twelve digits raw",
			slug:       "lobby",
			req:        api.SubmitFeedbackRequest{Rating: 4, Phone: "119876543210"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "phone must contain 10 or 11 digits",
		},
		{
			name:       "rating too high",
			slug:       "lobby",
			req:        api.SubmitFeedbackRequest{Rating: 6},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "rating must be at most 5",
		},
		{
			name:       "rating missing",
			slug:       "lobby",
			req:        api.SubmitFeedbackRequest{Comment: "no rating"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "rating must be at least 1",
		},
		{
			name:       "unknown area",
			slug:       "garden",
			req:        api.SubmitFeedbackRequest{Rating: 5},
			wantStatus: http.StatusNotFound,
			wantMsg:    "area not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			areas := newMockAreaStorage(testArea("lobby"))
			feedback := &mockFeedbackStorage{}
			handler := NewFeedbackHandler(setupTestLogger(), areas, feedback)

			w := httptest.NewRecorder()
			handler.Submit(w, submitRequest(t, tt.slug, tt.req))

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus != http.StatusCreated {
				var errResp api.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
				assert.Contains(t, errResp.Message, tt.wantMsg)
				assert.Empty(t, feedback.entries)
				return
			}

			require.Len(t, feedback.entries, 1)
			stored := feedback.entries[0]
			assert.Equal(t, "area-lobby", stored.AreaID)
			assert.Equal(t, tt.wantPhone, stored.Phone)
			assert.Equal(t, tt.req.Rating, stored.Rating)

			var resp api.FeedbackResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, stored.ID, resp.ID)
			assert.Equal(t, "lobby", resp.AreaSlug)
			assert.Equal(t, stored.MaskedPhone(), resp.Phone)
		})
	}
}

func TestFeedbackHandler_Submit_TrimsText(t *testing.T) {
	areas := newMockAreaStorage(testArea("lobby"))
	feedback := &mockFeedbackStorage{}
	handler := NewFeedbackHandler(setupTestLogger(), areas, feedback)

	w := httptest.NewRecorder()
	handler.Submit(w, submitRequest(t, "lobby", api.SubmitFeedbackRequest{Rating: 4, Comment: "  ok  ", Name: " Zé "}))

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, feedback.entries, 1)
	assert.Equal(t, "ok", feedback.entries[0].Comment)
	assert.Equal(t, "Zé", feedback.entries[0].Name)
}

func TestFeedbackHandler_Submit_StorageError(t *testing.T) {
	areas := newMockAreaStorage(testArea("lobby"))
	feedback := &mockFeedbackStorage{createError: errors.New("locked")}
	handler := NewFeedbackHandler(setupTestLogger(), areas, feedback)

	w := httptest.NewRecorder()
	handler.Submit(w, submitRequest(t, "lobby", api.SubmitFeedbackRequest{Rating: 5}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFeedbackHandler_List(t *testing.T) {
	area := testArea("lobby")
	areas := newMockAreaStorage(area)
	feedback := &mockFeedbackStorage{}
	for i, phone := range []string{"11987654321", "", "1133334444"} {
		feedback.entries = append(feedback.entries, &models.Feedback{
			ID:        string(rune('a' + i)),
			AreaID:    area.ID,
			Rating:    i + 1,
			Phone:     phone,
			CreatedAt: time.Now(),
		})
	}
	handler := NewFeedbackHandler(setupTestLogger(), areas, feedback)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCount  int
		wantLimit  int
	}{
		{name: "default limit", query: "", wantStatus: http.StatusOK, wantCount: 3, wantLimit: defaultFeedbackLimit},
		{name: "explicit limit", query: "?limit=2", wantStatus: http.StatusOK, wantCount: 2, wantLimit: 2},
		{name: "capped limit", query: "?limit=100000", wantStatus: http.StatusOK, wantCount: 3, wantLimit: maxFeedbackLimit},
		{name: "bad limit", query: "?limit=abc", wantStatus: http.StatusBadRequest},
		{name: "zero limit", query: "?limit=0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/areas/lobby/feedback"+tt.query, nil)
			req.SetPathValue("slug", "lobby")
			w := httptest.NewRecorder()
			handler.List(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			assert.Equal(t, tt.wantLimit, feedback.lastLimit)

			var resp api.ListFeedbackResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantCount, resp.Count)
			require.Len(t, resp.Feedback, tt.wantCount)

			// Новые первыми, телефоны отдаются с маской
			assert.Equal(t, "(11) 3333-4444", resp.Feedback[0].Phone)
			assert.Equal(t, "", resp.Feedback[1].Phone)
		})
	}
}

func TestFeedbackHandler_List_UnknownArea(t *testing.T) {
	handler := NewFeedbackHandler(setupTestLogger(), newMockAreaStorage(), &mockFeedbackStorage{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/areas/garden/feedback", nil)
	req.SetPathValue("slug", "garden")
	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeedbackHandler_Get(t *testing.T) {
	area := testArea("lobby")
	withPhone := &models.Feedback{ID: uuid.New().String(), AreaID: area.ID, Rating: 5, Phone: "11987654321", CreatedAt: time.Now()}
	noPhone := &models.Feedback{ID: uuid.New().String(), AreaID: area.ID, Rating: 2, CreatedAt: time.Now()}
	orphan := &models.Feedback{ID: uuid.New().String(), AreaID: "area-gone", Rating: 3, CreatedAt: time.Now()}

	areas := newMockAreaStorage(area)
	feedback := &mockFeedbackStorage{entries: []*models.Feedback{withPhone, noPhone, orphan}}
	handler := NewFeedbackHandler(setupTestLogger(), areas, feedback)

	tests := []struct {
		name       string
		id         string
		wantStatus int
		wantPhone  string
	}{
		{name: "with phone masked", id: withPhone.ID, wantStatus: http.StatusOK, wantPhone: "(11) 98765-4321"},
		{name: "without phone", id: noPhone.ID, wantStatus: http.StatusOK, wantPhone: ""},
		{name: "not found", id: uuid.New().String(), wantStatus: http.StatusNotFound},
		{name: "invalid id", id: "42", wantStatus: http.StatusBadRequest},
		{name: "area missing", id: orphan.ID, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/feedback/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()
			handler.Get(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp api.FeedbackResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.id, resp.ID)
			assert.Equal(t, "lobby", resp.AreaSlug)
			assert.Equal(t, tt.wantPhone, resp.Phone)
		})
	}
}
