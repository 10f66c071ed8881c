package userapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/usersummary/internal/domain"
	"github.com/osse101/usersummary/internal/logger"
	"github.com/osse101/usersummary/internal/metrics"
	"github.com/osse101/usersummary/internal/validation"
)

// APIClient reads the users listing over HTTP. It makes exactly one
// request per call: no retries, no paging, no auth.
type APIClient struct {
	Client *http.Client
	schema validation.SchemaValidator
}

// NewAPIClient creates a new API client. A zero timeout leaves requests
// bounded only by the caller's context.
func NewAPIClient(timeout time.Duration) *APIClient {
	return &APIClient{
		Client: &http.Client{
			Timeout: timeout,
		},
		schema: validation.NewSchemaValidator(),
	}
}

// FetchUsers GETs rawURL and decodes the body as a list of users.
// Errors wrap domain.ErrTransport, domain.ErrRequestFailed or domain.ErrParse.
func (c *APIClient) FetchUsers(ctx context.Context, rawURL string) ([]domain.User, error) {
	body, err := c.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if err := c.schema.ValidateBytes(body, validation.UsersSchemaPath); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	var users []domain.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	return users, nil
}

// FetchJSON GETs rawURL and decodes the body without assuming a shape.
func (c *APIClient) FetchJSON(ctx context.Context, rawURL string) (interface{}, error) {
	body, err := c.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	return data, nil
}

// get performs the request and returns the body of a 2xx response.
func (c *APIClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	endpoint := endpointLabel(rawURL)
	log := logger.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.Client.Do(req)
	metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, metrics.StatusTransportError).Inc()
		log.Warn("API request failed", "endpoint", endpoint, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	metrics.APIRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	log.Debug("API response received", "endpoint", endpoint, "status", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &domain.RequestFailedError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", domain.ErrTransport, err)
	}
	return body, nil
}

// endpointLabel keeps metric cardinality bounded to host+path.
func endpointLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "invalid"
	}
	return u.Host + u.Path
}
