package dashboard

import (
	"context"

	"go.uber.org/zap"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
	"liyu1981.xyz/coldtrack-monitor/pkg/report"
)

func (d *Dashboard) emitCurrent(ctx context.Context) (*report.Artifact, error) {
	logger := common.GetLoggerWith(common.LoggerNameReport)

	result, req, ok := d.Queries.Current()
	if !ok {
		return nil, report.ErrNoResult
	}

	art, err := report.EmitWithChart(ctx, d.Sink, result, req.Range)
	if err != nil {
		logger.Error("report emission failed", zap.Error(err))
		return nil, err
	}

	logger.Info("report emitted", zap.String("name", art.Name), zap.String("path", art.Path), zap.Int("size", len(art.Body)))
	return art, nil
}

type IReportImpl struct {
	d *Dashboard
}

func (ir *IReportImpl) EmitCurrent(ctx context.Context) (*report.Artifact, error) {
	return ir.d.emitCurrent(ctx)
}

func (ir *IReportImpl) ListReports(ctx context.Context, limit int) ([]models.ReportRecord, error) {
	return ir.d.Archive.List(ctx, limit)
}

func (ir *IReportImpl) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	return ir.d.Events.ListEvents(ctx, filter)
}

func (d *Dashboard) GetIReport() IReport {
	return &IReportImpl{d: d}
}
