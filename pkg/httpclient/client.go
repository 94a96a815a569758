package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/logger"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/metric"

	json "github.com/goccy/go-json"
)

//go:generate mockgen -source=client.go -destination=mock/client.go -package=mock_httpclient

const (
	_defaultMaxAttempts    = 3
	_defaultBaseRetryDelay = 100 * time.Millisecond
	_defaultMaxRetryDelay  = 2 * time.Second
	_defaultSlowThreshold  = time.Second

	_backoffMultiplier = 2

	_contentTypeJSON = "application/json"
	_headerRequestID = "X-Request-ID"
)

type (
	// Doer is the transport the client sends requests through,
	// usually *http.Client.
	Doer interface {
		Do(req *http.Request) (*http.Response, error)
	}

	// TokenSource supplies the bearer token attached to outgoing
	// requests. An empty string means no Authorization header.
	TokenSource func() string

	Client struct {
		http         Doer
		log          logger.Logger
		httpMetrics  metric.HTTP
		retryMetrics metric.Retry

		baseURL     *url.URL
		userAgent   string
		tokenSource TokenSource

		maxAttempts    int
		baseRetryDelay time.Duration
		maxRetryDelay  time.Duration
		slowThreshold  time.Duration
	}

	callResult struct {
		status    int
		body      []byte
		requestID string
	}
)

func New(
	baseURL string,
	doer Doer,
	log logger.Logger,
	httpMetrics metric.HTTP,
	retryMetrics metric.Retry,
	opts ...Option,
) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("httpclient.New: parse base url: %w", err)
	}

	client := &Client{
		http:         doer,
		log:          log,
		httpMetrics:  httpMetrics,
		retryMetrics: retryMetrics,

		baseURL: parsed,

		maxAttempts:    _defaultMaxAttempts,
		baseRetryDelay: _defaultBaseRetryDelay,
		maxRetryDelay:  _defaultMaxRetryDelay,
		slowThreshold:  _defaultSlowThreshold,
	}

	for _, opt := range opts {
		opt(client)
	}
	if err := client.validate(); err != nil {
		return nil, fmt.Errorf("httpclient.New: %w", err)
	}

	return client, nil
}

// DoJSON sends one JSON request and decodes the JSON response into out.
// A non-2xx status comes back as *StatusError carrying the raw body.
// operation names the logical call for metrics, not the wire path.
func (c *Client) DoJSON(
	ctx context.Context,
	operation, method, path string,
	query url.Values,
	body, out any,
) error {
	const op = "httpclient.Client.DoJSON"

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal body: %w", op, err)
		}
	}

	res, err := c.call(ctx, operation, method, c.resolve(path, query), _contentTypeJSON, payload)
	if err != nil {
		return err
	}

	if res.status < http.StatusOK || res.status >= http.StatusMultipleChoices {
		return &StatusError{StatusCode: res.status, Body: res.body, RequestID: res.requestID}
	}

	if out != nil && len(res.body) > 0 {
		if err := json.Unmarshal(res.body, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}

	return nil
}

// DoMultipart uploads a single file as a multipart/form-data POST.
func (c *Client) DoMultipart(
	ctx context.Context,
	operation, path, field, filename string,
	file io.Reader,
	out any,
) error {
	const op = "httpclient.Client.DoMultipart"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("%s: create form file: %w", op, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("%s: copy file: %w", op, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("%s: close writer: %w", op, err)
	}

	res, err := c.call(
		ctx,
		operation,
		http.MethodPost,
		c.resolve(path, nil),
		writer.FormDataContentType(),
		buf.Bytes(),
	)
	if err != nil {
		return err
	}

	if res.status < http.StatusOK || res.status >= http.StatusMultipleChoices {
		return &StatusError{StatusCode: res.status, Body: res.body, RequestID: res.requestID}
	}

	if out != nil && len(res.body) > 0 {
		if err := json.Unmarshal(res.body, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}

	return nil
}

func (c *Client) resolve(path string, query url.Values) *url.URL {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return &u
}

func (c *Client) call(
	ctx context.Context,
	operation, method string,
	u *url.URL,
	contentType string,
	payload []byte,
) (*callResult, error) {
	const op = "httpclient.Client.call"

	start := time.Now()
	defer func() {
		c.retryMetrics.ObserveDuration(operation, time.Since(start))
	}()

	var lastErr error

	currentBackoff := c.baseRetryDelay
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := c.sleep(ctx, operation, attempt, currentBackoff, lastErr); err != nil {
				c.retryMetrics.IncrementFailures(operation)
				return nil, fmt.Errorf("%s: %w", op, err)
			}

			nextBackoff := currentBackoff * _backoffMultiplier
			if nextBackoff > c.maxRetryDelay {
				nextBackoff = c.maxRetryDelay
			}
			currentBackoff = nextBackoff
		}

		res, err := c.once(ctx, operation, method, u, contentType, payload)
		if err != nil {
			if !retryableError(method, err) {
				c.retryMetrics.IncrementFailures(operation)
				return nil, fmt.Errorf("%s: %s %s: %w", op, method, u.Path, err)
			}
			c.retryMetrics.IncrementRetries(operation)
			lastErr = err
			continue
		}

		if retryableStatus(res.status) && idempotent(method) && attempt < c.maxAttempts {
			c.retryMetrics.IncrementRetries(operation)
			lastErr = &StatusError{StatusCode: res.status, Body: res.body, RequestID: res.requestID}
			continue
		}

		return res, nil
	}

	c.retryMetrics.IncrementFailures(operation)
	return nil, fmt.Errorf(
		"%s: max attempts (%d) exceeded for %s: %w",
		op,
		c.maxAttempts,
		operation,
		lastErr,
	)
}

func (c *Client) once(
	ctx context.Context,
	operation, method string,
	u *url.URL,
	contentType string,
	payload []byte,
) (*callResult, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := c.log.GetRequestID(ctx)
	if requestID == "" {
		requestID = c.log.GenerateRequestID()
	}

	req.Header.Set("Accept", _contentTypeJSON)
	req.Header.Set(_headerRequestID, requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if payload != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	reqStart := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(reqStart)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.httpMetrics.Request(method, operation, resp.StatusCode, duration)
	c.log.LogRequest(ctx, method, u.Path, resp.StatusCode, duration)

	if duration > c.slowThreshold {
		c.httpMetrics.SlowRequest(method, operation, resp.StatusCode, duration)
		c.log.LogAttrs(ctx, logger.WarnLevel, "slow request",
			logger.String("operation", operation),
			logger.String("method", method),
			logger.String("path", u.Path),
			logger.Int("status", resp.StatusCode),
			logger.String("duration", duration.String()),
		)
	}

	if respID := resp.Header.Get(_headerRequestID); respID != "" {
		requestID = respID
	}

	return &callResult{
		status:    resp.StatusCode,
		body:      data,
		requestID: requestID,
	}, nil
}

func (c *Client) sleep(
	ctx context.Context,
	operation string,
	attempt int,
	backoff time.Duration,
	cause error,
) error {
	jitter := time.Duration(rand.Int64N(int64(backoff * _backoffMultiplier)))
	if jitter > c.maxRetryDelay {
		jitter = c.maxRetryDelay
	}

	c.log.LogAttrs(ctx, logger.InfoLevel, "retrying request",
		logger.String("operation", operation),
		logger.Int("attempt", attempt),
		logger.Int("max_attempts", c.maxAttempts),
		logger.String("retry_after", jitter.String()),
		logger.Any("error", cause),
	)

	timer := time.NewTimer(jitter)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return fmt.Errorf("context canceled: %w", ctx.Err())
	}

	return nil
}

func retryableError(method string, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return false
	}
	return idempotent(method)
}

func retryableStatus(status int) bool {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}
