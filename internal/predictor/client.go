// internal/predictor/client.go
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"claim-dashboard/internal/metrics"
	"claim-dashboard/internal/models"
)

// DefaultURL is where the prediction service listens in a local deployment.
const DefaultURL = "http://localhost:8000/predict"

// StatusError is returned when the prediction service answers with a
// non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("prediction service returned status %d: %s", e.Code, e.Body)
}

// Client posts claims to the prediction service.
type Client struct {
	url        string
	httpClient *http.Client
	metrics    *metrics.Recorder
	logger     *zap.Logger
}

// NewClient creates a prediction client. A zero timeout leaves the request
// bounded only by the transport.
func NewClient(url string, timeout time.Duration, recorder *metrics.Recorder, logger *zap.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: recorder,
		logger:  logger,
	}
}

// URL returns the endpoint claims are posted to.
func (c *Client) URL() string {
	return c.url
}

// Predict sends one claim and decodes the answer. The body is stored as
// received: keys the service leaves out stay nil in the result.
func (c *Client) Predict(ctx context.Context, req *models.ClaimRequest) (*models.ClaimResult, error) {
	startTime := time.Now()
	status := "error"
	defer func() {
		c.metrics.Prediction(status, time.Since(startTime))
	}()

	requestBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode claim: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("prediction request failed: %w", err)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var result *models.ClaimResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if result == nil {
		return nil, fmt.Errorf("failed to parse response: empty prediction")
	}

	c.logger.Debug("prediction received",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(startTime)))

	return result, nil
}
