// shared/api/client.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// HTTPError is a custom error type for HTTP responses with non-OK status codes.
type HTTPError struct {
	StatusCode int
	Message    string
	URL        string
	Method     string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP error %d %s from %s %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Method, e.URL, e.Message)
	}
	return fmt.Sprintf("HTTP error %d %s from %s %s", e.StatusCode, http.StatusText(e.StatusCode), e.Method, e.URL)
}

// Common errors for client usage. Use errors.Is for checking.
var (
	ErrNotFound      = fmt.Errorf("resource not found")
	ErrBadRequest    = fmt.Errorf("bad request")
	ErrInternalError = fmt.Errorf("internal server error")
)

// NewDefaultHTTPClient creates an http.Client with common timeouts and
// transport settings, suitable for all API clients.
func NewDefaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// Client is a generic HTTP client for interacting with JSON APIs.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API Client. Pass nil to use NewDefaultHTTPClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = NewDefaultHTTPClient()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// Get performs a GET request and decodes the JSON response into result.
func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	url := fmt.Sprintf("%s%s", c.baseURL, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create GET request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return fmt.Errorf("GET request to %s cancelled: %w", url, ctx.Err())
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("GET request to %s timed out: %w", url, ctx.Err())
		}
		return fmt.Errorf("failed to send GET request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// Try to read the error message from the standard error envelope
		var errorResponse JSONErrorResponse
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr == nil && len(bodyBytes) > 0 {
			if jsonErr := json.Unmarshal(bodyBytes, &errorResponse); jsonErr == nil && errorResponse.Error != "" {
				return createHTTPError(resp.StatusCode, errorResponse.Error, url, http.MethodGet)
			}
			if len(bodyBytes) < 500 {
				return createHTTPError(resp.StatusCode, string(bodyBytes), url, http.MethodGet)
			}
		}
		return createHTTPError(resp.StatusCode, "", url, http.MethodGet)
	}

	if result != nil {
		if resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode GET response from %s: %w", url, err)
		}
	}
	return nil
}

// createHTTPError maps common status codes to predefined errors.
func createHTTPError(statusCode int, message, url, method string) error {
	httpErr := &HTTPError{StatusCode: statusCode, Message: message, URL: url, Method: method}
	switch statusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, httpErr.Error())
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, httpErr.Error())
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrInternalError, httpErr.Error())
	default:
		return httpErr
	}
}

// IsHTTPError checks if an error is an HTTPError and optionally matches status code.
func IsHTTPError(err error, status int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return status == 0 || httpErr.StatusCode == status
	}
	return false
}
