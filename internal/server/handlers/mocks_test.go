package handlers

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/iudanet/qrfeedback/internal/models"
	"github.com/iudanet/qrfeedback/internal/server/storage"
)

func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

// mockAreaStorage is a mock implementation of AreaStorage for testing
type mockAreaStorage struct {
	areas       map[string]*models.Area // slug -> Area
	createError error
	getError    error
	listError   error
}

func newMockAreaStorage(areas ...*models.Area) *mockAreaStorage {
	m := &mockAreaStorage{areas: make(map[string]*models.Area)}
	for _, a := range areas {
		m.areas[a.Slug] = a
	}
	return m
}

func (m *mockAreaStorage) CreateArea(ctx context.Context, area *models.Area) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.areas[area.Slug]; exists {
		return storage.ErrAreaAlreadyExists
	}
	m.areas[area.Slug] = area
	return nil
}

func (m *mockAreaStorage) GetAreaByID(ctx context.Context, areaID string) (*models.Area, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for _, a := range m.areas {
		if a.ID == areaID {
			return a, nil
		}
	}
	return nil, storage.ErrAreaNotFound
}

func (m *mockAreaStorage) GetAreaBySlug(ctx context.Context, slug string) (*models.Area, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	a, ok := m.areas[slug]
	if !ok {
		return nil, storage.ErrAreaNotFound
	}
	return a, nil
}

func (m *mockAreaStorage) ListAreas(ctx context.Context) ([]*models.Area, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	out := make([]*models.Area, 0, len(m.areas))
	for _, a := range m.areas {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// mockFeedbackStorage is a mock implementation of FeedbackStorage for testing
type mockFeedbackStorage struct {
	mu          sync.Mutex
	entries     []*models.Feedback
	createError error
	listError   error
	lastLimit   int
}

func (m *mockFeedbackStorage) CreateFeedback(ctx context.Context, fb *models.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createError != nil {
		return m.createError
	}
	m.entries = append(m.entries, fb)
	return nil
}

func (m *mockFeedbackStorage) GetFeedback(ctx context.Context, feedbackID string) (*models.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, fb := range m.entries {
		if fb.ID == feedbackID {
			return fb, nil
		}
	}
	return nil, storage.ErrFeedbackNotFound
}

func (m *mockFeedbackStorage) ListFeedbackByArea(ctx context.Context, areaID string, limit int) ([]*models.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
	if m.listError != nil {
		return nil, m.listError
	}
	var out []*models.Feedback
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].AreaID == areaID {
			out = append(out, m.entries[i])
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users       map[string]*models.User // phone -> User
	createError error
	getError    error
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Phone]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Phone] = user
	return nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for _, u := range m.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	u, ok := m.users[phone]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return u, nil
}
