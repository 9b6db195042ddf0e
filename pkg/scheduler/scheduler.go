package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
	"liyu1981.xyz/coldtrack-monitor/pkg/analytics"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/report"
)

// ReportScheduler periodically emits an executive report for the last
// LookbackDays full days. It queries through its own coordinator so the
// result shown on the dashboard is left alone.
type ReportScheduler struct {
	scheduler *gocron.Scheduler
	queries   *analytics.Coordinator
	sink      report.Sink
	interval  time.Duration
	lookback  int
	loc       *time.Location
	now       func() time.Time
	logger    *zap.Logger
}

func New(fetcher analytics.Fetcher, sink report.Sink, interval time.Duration, lookbackDays int, loc *time.Location) *ReportScheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportScheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		queries:   analytics.NewCoordinator(fetcher, analytics.DefaultTimeout),
		sink:      sink,
		interval:  interval,
		lookback:  lookbackDays,
		loc:       loc,
		now:       time.Now,
		logger:    common.GetLoggerWith(common.LoggerNameScheduler),
	}
}

// Start schedules the report job. A zero interval disables it.
func (s *ReportScheduler) Start() error {
	if s.interval <= 0 {
		s.logger.Info("report schedule disabled")
		return nil
	}

	s.scheduler.SingletonModeAll()
	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(s.run)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Info("report schedule started", zap.Duration("every", s.interval), zap.Int("lookback_days", s.lookback))
	return nil
}

func (s *ReportScheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// RunOnce emits one report for the configured lookback window.
func (s *ReportScheduler) RunOnce(ctx context.Context) (*report.Artifact, error) {
	q := analytics.LastDays(s.now(), s.lookback, s.loc)
	result, err := s.queries.Execute(ctx, analytics.Request{Range: q})
	if err != nil {
		return nil, err
	}
	return report.EmitWithChart(ctx, s.sink, result, q)
}

func (s *ReportScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*analytics.DefaultTimeout)
	defer cancel()

	art, err := s.RunOnce(ctx)
	if err != nil {
		s.logger.Warn("scheduled report failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled report emitted", zap.String("name", art.Name), zap.String("path", art.Path))
}
