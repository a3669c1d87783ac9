package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// apiClient is the shared JSON transport for the backend REST API. All
// resource services go through it so status-code handling stays in one place.
type apiClient struct {
	baseURL string
	client  *http.Client
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// postJSON sends a POST with a JSON body and decodes the response into out.
// wantStatus is the expected success code; anything else becomes a classed
// error via handleAPIError.
func (c *apiClient) postJSON(ctx context.Context, path string, body, out interface{}, wantStatus int) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	return c.do(httpReq, out, wantStatus)
}

// getJSON sends a GET and decodes the response into out
func (c *apiClient) getJSON(ctx context.Context, path string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	return c.do(httpReq, out, http.StatusOK)
}

func (c *apiClient) do(httpReq *http.Request, out interface{}, wantStatus int) error {
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to reach backend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return c.handleAPIError(resp.StatusCode, bodyBytes)
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// apiErrorBody is the backend's error envelope
type apiErrorBody struct {
	Message string `json:"message"`
}

// handleAPIError turns a non-success status into a distinguishable error:
// 4xx means the payload was rejected, 5xx means the backend broke.
func (c *apiClient) handleAPIError(statusCode int, body []byte) error {
	var errBody apiErrorBody
	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Message != "" {
		message = errBody.Message
	}

	if statusCode >= 400 && statusCode < 500 {
		return &ValidationError{StatusCode: statusCode, Message: message}
	}
	return &ServerError{StatusCode: statusCode, Message: message}
}
