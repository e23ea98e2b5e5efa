package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/iudanet/qrfeedback/internal/client/outbox"
	"github.com/iudanet/qrfeedback/internal/client/storage"
	"github.com/iudanet/qrfeedback/pkg/api"
)

// scriptedIO отдает заранее заданные ответы и собирает вывод
type scriptedIO struct {
	inputs      []string
	interactive bool
	out         strings.Builder
	prompts     []string
}

func (s *scriptedIO) Println(a ...any) {
	fmt.Fprintln(&s.out, a...)
}

func (s *scriptedIO) Printf(format string, a ...any) {
	fmt.Fprintf(&s.out, format, a...)
}

func (s *scriptedIO) ReadInput(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	v := s.inputs[0]
	s.inputs = s.inputs[1:]
	return v, nil
}

func (s *scriptedIO) IsInteractive() bool {
	return s.interactive
}

type mockServer struct {
	resp        *api.ListAreasResponse
	err         error
	healthErr   error
	healthCalls int
}

func (m *mockServer) Health(ctx context.Context) error {
	m.healthCalls++
	return m.healthErr
}

func (m *mockServer) ListAreas(ctx context.Context) (*api.ListAreasResponse, error) {
	return m.resp, m.err
}

type mockOutbox struct {
	enqueued   []api.SubmitFeedbackRequest
	enqueueErr error
	pending    []*storage.PendingFeedback
	lastSync   time.Time
	flush      *outbox.FlushResult
	flushErr   error
	flushCalls int
}

func (m *mockOutbox) Enqueue(ctx context.Context, slug string, req api.SubmitFeedbackRequest) (*storage.PendingFeedback, error) {
	if m.enqueueErr != nil {
		return nil, m.enqueueErr
	}
	m.enqueued = append(m.enqueued, req)
	return &storage.PendingFeedback{ID: "item-1", AreaSlug: slug, Request: req}, nil
}

func (m *mockOutbox) Pending(ctx context.Context) ([]*storage.PendingFeedback, error) {
	return m.pending, nil
}

func (m *mockOutbox) LastSync(ctx context.Context) (time.Time, error) {
	return m.lastSync, nil
}

func (m *mockOutbox) Flush(ctx context.Context) (*outbox.FlushResult, error) {
	m.flushCalls++
	if m.flushErr != nil {
		return nil, m.flushErr
	}
	if m.flush == nil {
		return &outbox.FlushResult{}, nil
	}
	return m.flush, nil
}
