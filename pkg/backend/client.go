package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
)

var (
	ErrUnauthorized = errors.New("backend rejected credentials")
	ErrTransport    = errors.New("backend transport failure")
	ErrCircuitOpen  = errors.New("backend circuit breaker open")
)

// StatusError is a non-2xx answer other than 401. It matches ErrTransport.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend answered %d", e.Code)
	}
	return fmt.Sprintf("backend answered %d: %s", e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrTransport
}

// Credentials supplies the bearer token. Expire is called when the backend
// answers 401.
type Credentials interface {
	Token() (string, error)
	Expire()
}

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Retries    int
	BackoffMin time.Duration
	BackoffMax time.Duration
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	opts    Options
	http    *http.Client
	creds   Credentials
	circuit *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewClient(opts Options, creds Credentials) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.BackoffMin <= 0 {
		opts.BackoffMin = 200 * time.Millisecond
	}
	if opts.BackoffMax < opts.BackoffMin {
		opts.BackoffMax = opts.BackoffMin
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	logger := common.GetLoggerWith(common.LoggerNameBackend)
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "backend",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// only outages count against the breaker
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrUnauthorized) || isClientStatus(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("from", from.String()), zap.String("to", to.String()))
		},
	})

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		opts:    opts,
		http:    httpClient,
		creds:   creds,
		circuit: cb,
		logger:  logger,
	}
}

func isClientStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code < 500
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// do runs one logical request. Only GETs are retried, and only on
// network failures and 5xx answers.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	token, err := c.creds.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	var payload []byte
	if body != nil {
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	maxRetries := 0
	if method == http.MethodGet {
		maxRetries = c.opts.Retries
	}

	for attempt := 0; ; attempt++ {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", ErrTransport, ctx.Err())
		}

		result, err := c.circuit.Execute(func() (interface{}, error) {
			return c.roundTrip(ctx, method, target, token, payload)
		})
		if err == nil {
			if out == nil {
				return nil
			}
			if err := json.Unmarshal(result.([]byte), out); err != nil {
				return fmt.Errorf("%w: decoding %s: %w", ErrTransport, path, err)
			}
			return nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		if errors.Is(err, ErrUnauthorized) {
			c.creds.Expire()
			c.logger.Warn("backend answered 401", zap.String("path", path))
			return err
		}
		if isClientStatus(err) || ctx.Err() != nil || attempt >= maxRetries {
			return err
		}

		delay := c.backoff(attempt)
		c.logger.Warn("retrying backend request",
			zap.String("path", path), zap.Int("attempt", attempt+1), zap.Duration("delay", delay), zap.Error(err))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: %w", ErrTransport, ctx.Err())
		case <-timer.C:
		}
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	delay := c.opts.BackoffMin * time.Duration(math.Pow(2, float64(attempt)))
	if delay > c.opts.BackoffMax {
		delay = c.opts.BackoffMax
	}
	return delay
}

func (c *Client) roundTrip(ctx context.Context, method, target, token string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrTransport, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &StatusError{Code: resp.StatusCode, Body: truncate(string(data), 200)}
	}
	return data, nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n]
}
