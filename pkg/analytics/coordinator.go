package analytics

import (
	"context"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/coldtrack-monitor/pkg/backend"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
)

const DefaultTimeout = 30 * time.Second

type Fetcher interface {
	ExecutiveAnalytics(ctx context.Context, q models.DateRangeQuery, sensorID models.ID) (*models.AnalyticsResult, error)
}

// Request is one analytics query. An empty SensorID covers all sensors.
type Request struct {
	Range    models.DateRangeQuery
	SensorID models.ID
}

// Coordinator owns the displayed analytics result. Only the most recently
// started Execute may change it.
type Coordinator struct {
	fetcher Fetcher
	timeout time.Duration

	seq atomic.Uint64

	mu        sync.RWMutex
	current   *models.AnalyticsResult
	currentRq Request
	loading   bool
	lastErr   error

	logger *zap.Logger
}

func NewCoordinator(fetcher Fetcher, timeout time.Duration) *Coordinator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Coordinator{
		fetcher: fetcher,
		timeout: timeout,
		logger:  common.GetCategoryLogger(common.LoggerNameAnalytics, common.LoggerCategoryQuery),
	}
}

// Execute validates req, clears the displayed result and fetches. It returns
// ErrSuperseded when a newer Execute started before this one resolved.
func (c *Coordinator) Execute(ctx context.Context, req Request) (*models.AnalyticsResult, error) {
	if err := Validate(req.Range); err != nil {
		return nil, err
	}

	token := c.seq.Add(1)
	c.mu.Lock()
	c.current = nil
	c.lastErr = nil
	c.loading = true
	c.mu.Unlock()

	c.logger.Info("query started",
		zap.Uint64("seq", token),
		zap.String("start", req.Range.StartString()),
		zap.String("end", req.Range.EndString()),
		zap.String("sensor_id", req.SensorID.String()))

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	result, err := c.fetcher.ExecutiveAnalytics(callCtx, req.Range, req.SensorID)
	timedOut := errors.Is(callCtx.Err(), context.DeadlineExceeded)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if latest := c.seq.Load(); latest != token {
		c.logger.Info("discarding superseded result", zap.Uint64("seq", token), zap.Uint64("latest", latest))
		return nil, ErrSuperseded
	}

	c.loading = false
	if err != nil {
		qe := classifyError(err, timedOut)
		c.lastErr = qe
		c.logger.Warn("query failed", zap.Uint64("seq", token), zap.Stringer("kind", qe.Kind), zap.Error(err))
		return nil, qe
	}

	c.current = result
	c.currentRq = req
	c.logger.Info("query completed", zap.Uint64("seq", token))
	return result, nil
}

// Current returns the displayed result and the request that produced it.
func (c *Coordinator) Current() (*models.AnalyticsResult, Request, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current, c.currentRq, c.current != nil
}

func (c *Coordinator) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Coordinator) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func classifyError(err error, timedOut bool) *QueryError {
	var netErr net.Error
	switch {
	case timedOut, errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return &QueryError{Kind: KindTimeout, Err: err}
	case errors.Is(err, backend.ErrUnauthorized):
		return &QueryError{Kind: KindUnauthorized, Err: err}
	default:
		return &QueryError{Kind: KindTransport, Err: err}
	}
}
