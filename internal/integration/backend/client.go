// Package backend implements the expense backend gateways over HTTP.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// maxBodyBytes caps how much of a backend response is read.
const maxBodyBytes = 32 << 20

// Config holds the backend client configuration.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// DefaultConfig returns the default backend client configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:      "http://localhost:5000/api",
		Timeout:      10 * time.Second,
		MaxRetries:   2,
		RetryBackoff: 500 * time.Millisecond,
	}
}

// Client talks to the expense backend. It implements the expense, budget and
// chart gateways. GET requests are retried on transport errors and 5xx
// responses with linear backoff; writes are sent once.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retrying   *retryablehttp.Client
}

// NewClient creates a new backend client.
func NewClient(cfg Config) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

// NewClientWithHTTP creates a backend client using the given HTTP client.
func NewClientWithHTTP(cfg Config, httpClient *http.Client) *Client {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	retrying := retryablehttp.NewClient()
	retrying.HTTPClient = httpClient
	retrying.RetryMax = cfg.MaxRetries
	retrying.RetryWaitMin = cfg.RetryBackoff
	retrying.RetryWaitMax = cfg.RetryBackoff
	retrying.Backoff = retryablehttp.LinearJitterBackoff
	retrying.CheckRetry = retryPolicy
	retrying.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retrying.Logger = nil
	retrying.RequestLogHook = logRetry

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		retrying:   retrying,
	}
}

// retryPolicy retries transport errors and 5xx responses until the context ends.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	return resp.StatusCode >= http.StatusInternalServerError, nil
}

func logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 {
		return
	}
	slog.Warn("Retrying backend request",
		"path", req.URL.Path,
		"attempt", attempt+1,
	)
}

type response struct {
	status      int
	contentType string
	body        []byte
}

// get performs a GET with retries.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.target(path, query), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.retrying.Do(req)
	return read(http.MethodGet, path, res, err)
}

// send performs a single write request with a JSON body.
func (c *Client) send(ctx context.Context, method, path string, payload any) (*response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.target(path, nil), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	return read(method, path, res, err)
}

func (c *Client) target(path string, query url.Values) string {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

// read classifies a finished exchange and drains its body.
func read(method, path string, res *http.Response, err error) (*response, error) {
	if err != nil {
		if res != nil {
			res.Body.Close()
		}
		return nil, domainerror.NewBackendError(domainerror.ErrCodeBackendUnavailable, method, path, 0, "", errors.Join(domainerror.ErrBackendUnavailable, err))
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, domainerror.NewBackendError(domainerror.ErrCodeBackendUnavailable, method, path, res.StatusCode, "failed to read response", errors.Join(domainerror.ErrBackendUnavailable, err))
	}

	switch {
	case res.StatusCode >= http.StatusInternalServerError:
		return nil, domainerror.NewBackendError(domainerror.ErrCodeBackendUnavailable, method, path, res.StatusCode, errorMessage(data), domainerror.ErrBackendUnavailable)
	case res.StatusCode == http.StatusNotFound:
		return nil, domainerror.NewBackendError(domainerror.ErrCodeBackendNotFound, method, path, res.StatusCode, errorMessage(data), domainerror.ErrBackendNotFound)
	case res.StatusCode >= http.StatusBadRequest:
		return nil, domainerror.NewBackendError(domainerror.ErrCodeBackendRejected, method, path, res.StatusCode, errorMessage(data), domainerror.ErrBackendRejected)
	}

	return &response{
		status:      res.StatusCode,
		contentType: res.Header.Get("Content-Type"),
		body:        data,
	}, nil
}

// checkSuccess inspects a write response. An explicit success=false fails the call.
func checkSuccess(method, path string, resp *response) error {
	var ack writeAck
	if len(bytes.TrimSpace(resp.body)) == 0 || json.Unmarshal(resp.body, &ack) != nil {
		return nil
	}
	if ack.Success != nil && !*ack.Success {
		msg := ack.Error
		if msg == "" {
			msg = ack.Message
		}
		return domainerror.NewBackendError(domainerror.ErrCodeBackendRejected, method, path, resp.status, msg, domainerror.ErrBackendRejected)
	}
	return nil
}

// errorMessage extracts {error} or {message} from an error body.
func errorMessage(body []byte) string {
	var ack writeAck
	if err := json.Unmarshal(body, &ack); err != nil {
		return ""
	}
	if ack.Error != "" {
		return ack.Error
	}
	return ack.Message
}

func malformed(method, path string, err error) error {
	return domainerror.NewBackendError(domainerror.ErrCodeBackendMalformed, method, path, 0, "malformed response", errors.Join(domainerror.ErrBackendMalformedResponse, err))
}
