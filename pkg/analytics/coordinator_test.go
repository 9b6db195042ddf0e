package analytics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/coldtrack-monitor/pkg/backend"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
	_ "liyu1981.xyz/coldtrack-monitor/pkg/testing"
)

type outcome struct {
	result *models.AnalyticsResult
	err    error
}

// gatedFetcher blocks each call until the test releases it by start date.
type gatedFetcher struct {
	mu      sync.Mutex
	gates   map[string]chan outcome
	started chan string
	calls   atomic.Int32
}

func newGatedFetcher() *gatedFetcher {
	return &gatedFetcher{gates: map[string]chan outcome{}, started: make(chan string, 8)}
}

func (f *gatedFetcher) gate(key string) chan outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gates[key] == nil {
		f.gates[key] = make(chan outcome, 1)
	}
	return f.gates[key]
}

func (f *gatedFetcher) ExecutiveAnalytics(ctx context.Context, q models.DateRangeQuery, _ models.ID) (*models.AnalyticsResult, error) {
	f.calls.Add(1)
	key := q.StartString()
	g := f.gate(key)
	f.started <- key
	select {
	case o := <-g:
		return o.result, o.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func day(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func q1() Request {
	return Request{Range: models.DateRangeQuery{Start: day("2025-01-01"), End: day("2025-01-10")}}
}

func q2() Request {
	return Request{Range: models.DateRangeQuery{Start: day("2025-02-01"), End: day("2025-02-10")}}
}

func resultWithTemp(t float64) *models.AnalyticsResult {
	return &models.AnalyticsResult{KPIs: models.KPISet{AvgTemperature: t}}
}

func TestSupersession(t *testing.T) {
	orders := map[string][]string{
		"older resolves first": {"2025-01-01", "2025-02-01"},
		"newer resolves first": {"2025-02-01", "2025-01-01"},
	}
	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			common.SetTestLoggerNop()
			f := newGatedFetcher()
			c := NewCoordinator(f, time.Second)
			ctx := context.Background()

			var wg sync.WaitGroup
			var err1, err2 error
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, err1 = c.Execute(ctx, q1())
			}()
			require.Equal(t, "2025-01-01", <-f.started)
			go func() {
				defer wg.Done()
				_, err2 = c.Execute(ctx, q2())
			}()
			require.Equal(t, "2025-02-01", <-f.started)

			results := map[string]outcome{
				"2025-01-01": {result: resultWithTemp(-1)},
				"2025-02-01": {result: resultWithTemp(-7)},
			}
			for _, key := range order {
				f.gate(key) <- results[key]
			}
			wg.Wait()

			assert.ErrorIs(t, err1, ErrSuperseded)
			assert.NoError(t, err2)

			shown, req, ok := c.Current()
			require.True(t, ok)
			assert.Equal(t, -7.0, shown.KPIs.AvgTemperature)
			assert.Equal(t, "2025-02-01", req.Range.StartString())
			assert.False(t, c.Loading())
		})
	}
}

func TestSupersededFailureIsIgnored(t *testing.T) {
	common.SetTestLoggerNop()
	f := newGatedFetcher()
	c := NewCoordinator(f, time.Second)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := c.Execute(ctx, q1())
		done <- err
	}()
	<-f.started

	go func() {
		_, _ = c.Execute(ctx, q2())
	}()
	<-f.started
	f.gate("2025-02-01") <- outcome{result: resultWithTemp(-6)}
	require.Eventually(t, func() bool { _, _, ok := c.Current(); return ok }, time.Second, 5*time.Millisecond)

	f.gate("2025-01-01") <- outcome{err: errors.New("late failure")}
	assert.ErrorIs(t, <-done, ErrSuperseded)
	assert.NoError(t, c.LastError())
	_, _, ok := c.Current()
	assert.True(t, ok)
}

func TestInvertedRangeMakesNoCall(t *testing.T) {
	common.SetTestLoggerNop()
	f := newGatedFetcher()
	c := NewCoordinator(f, time.Second)

	_, err := c.Execute(context.Background(), Request{Range: models.DateRangeQuery{Start: day("2025-03-10"), End: day("2025-03-01")}})
	assert.ErrorIs(t, err, ErrInvertedRange)
	assert.Zero(t, f.calls.Load())
	assert.False(t, c.Loading())
}

func TestMissingRange(t *testing.T) {
	common.SetTestLoggerNop()
	f := newGatedFetcher()
	c := NewCoordinator(f, time.Second)

	_, err := c.Execute(context.Background(), Request{Range: models.DateRangeQuery{Start: day("2025-03-10")}})
	assert.ErrorIs(t, err, ErrMissingRange)
	assert.Zero(t, f.calls.Load())
}

func TestFailureClearsDisplayedResult(t *testing.T) {
	common.SetTestLoggerNop()
	f := newGatedFetcher()
	c := NewCoordinator(f, time.Second)
	ctx := context.Background()

	f.gate("2025-01-01") <- outcome{result: resultWithTemp(-3)}
	_, err := c.Execute(ctx, q1())
	require.NoError(t, err)
	<-f.started

	f.gate("2025-02-01") <- outcome{err: fmt.Errorf("wrapped: %w", backend.ErrTransport)}
	_, err = c.Execute(ctx, q2())
	<-f.started
	assert.ErrorIs(t, err, ErrTransport)

	_, _, ok := c.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, c.LastError(), ErrTransport)
}

func TestUnauthorizedKind(t *testing.T) {
	common.SetTestLoggerNop()
	f := newGatedFetcher()
	c := NewCoordinator(f, time.Second)

	f.gate("2025-01-01") <- outcome{err: fmt.Errorf("listing: %w", backend.ErrUnauthorized)}
	_, err := c.Execute(context.Background(), q1())
	<-f.started
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, backend.ErrUnauthorized)
}

func TestTimeout(t *testing.T) {
	common.SetTestLoggerNop()
	f := newGatedFetcher()
	c := NewCoordinator(f, 20*time.Millisecond)

	_, err := c.Execute(context.Background(), q1())
	<-f.started
	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, c.Loading())
	assert.ErrorIs(t, c.LastError(), ErrTimeout)
}

func TestParseDateRange(t *testing.T) {
	q, err := ParseDateRange("2025-01-01", "2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", q.StartString())
	assert.Equal(t, "2025-01-10", q.EndString())

	_, err = ParseDateRange("", "2025-01-10")
	assert.ErrorIs(t, err, ErrMissingRange)

	_, err = ParseDateRange("2025-03-10", "2025-03-01")
	assert.ErrorIs(t, err, ErrInvertedRange)

	_, err = ParseDateRange("10/03/2025", "2025-03-01")
	assert.ErrorIs(t, err, ErrMalformedRange)
	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.True(t, qe.Validation())

	q, err = ParseDateRange("2025-03-01", "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, q.Start, q.End)
}

func TestLastDays(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	q := LastDays(now, 7, time.UTC)
	assert.Equal(t, "2025-03-08", q.StartString())
	assert.Equal(t, "2025-03-14", q.EndString())
}
