package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/qrfeedback/pkg/api"
)

// Error представляет ответ сервера с кодом 4xx/5xx
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsPermanent сообщает, что повтор запроса не поможет (ошибка валидации, 404 и т.п.)
func IsPermanent(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 &&
		apiErr.StatusCode != http.StatusTooManyRequests &&
		apiErr.StatusCode != http.StatusRequestTimeout
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, nil); err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// ListAreas возвращает список зон
func (c *Client) ListAreas(ctx context.Context) (*api.ListAreasResponse, error) {
	var resp api.ListAreasResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/areas", nil, &resp); err != nil {
		return nil, fmt.Errorf("list areas request failed: %w", err)
	}
	return &resp, nil
}

// SubmitFeedback отправляет отзыв для зоны slug
func (c *Client) SubmitFeedback(ctx context.Context, slug string, req api.SubmitFeedbackRequest) (*api.FeedbackResponse, error) {
	var resp api.FeedbackResponse
	path := "/api/v1/areas/" + url.PathEscape(slug) + "/feedback"
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("submit feedback request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
