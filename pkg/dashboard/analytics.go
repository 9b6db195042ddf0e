package dashboard

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"liyu1981.xyz/coldtrack-monitor/pkg/analytics"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
	"liyu1981.xyz/coldtrack-monitor/pkg/report"
)

func (d *Dashboard) saveSummary(ctx context.Context, title, notes string) error {
	result, req, ok := d.Queries.Current()
	if !ok {
		return report.ErrNoResult
	}
	if title = strings.TrimSpace(title); title == "" {
		title = fmt.Sprintf("Análisis %s al %s", req.Range.StartString(), req.Range.EndString())
	}

	email := d.Auth.Email()
	name := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		name = email[:at]
	}

	summary := models.ExecutiveSummary{
		Start:  req.Range.StartString(),
		End:    req.Range.EndString(),
		Title:  title,
		Notes:  notes,
		Data:   result,
		Author: models.SummaryAuthor{Email: email, Name: name},
	}
	if err := d.Backend.SaveExecutiveSummary(ctx, summary); err != nil {
		return err
	}

	common.GetCategoryLogger(common.LoggerNameAnalytics, common.LoggerCategoryQuery).
		Info("executive summary saved", zap.String("title", title), zap.String("email", email))
	return nil
}

type IAnalyticsImpl struct {
	d *Dashboard
}

func (ia *IAnalyticsImpl) Run(ctx context.Context, req analytics.Request) (*models.AnalyticsResult, error) {
	return ia.d.Queries.Execute(ctx, req)
}

func (ia *IAnalyticsImpl) Current() (*models.AnalyticsResult, analytics.Request, bool) {
	return ia.d.Queries.Current()
}

func (ia *IAnalyticsImpl) SaveSummary(ctx context.Context, title, notes string) error {
	return ia.d.saveSummary(ctx, title, notes)
}

func (d *Dashboard) GetIAnalytics() IAnalytics {
	return &IAnalyticsImpl{d: d}
}
