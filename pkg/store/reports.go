package store

import (
	"context"
	"fmt"

	"liyu1981.xyz/coldtrack-monitor/pkg/db"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
)

const defaultReportListLimit = 50

type ReportArchive struct {
	db *db.DB
}

func NewReportArchive(d *db.DB) *ReportArchive {
	return &ReportArchive{db: d}
}

func (a *ReportArchive) Save(ctx context.Context, rec *models.ReportRecord) error {
	if err := a.db.Conn.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to archive report %s: %w", rec.Name, err)
	}
	return nil
}

// List returns the newest records first. limit <= 0 uses the default.
func (a *ReportArchive) List(ctx context.Context, limit int) ([]models.ReportRecord, error) {
	if limit <= 0 {
		limit = defaultReportListLimit
	}
	var records []models.ReportRecord
	err := a.db.Conn.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return records, nil
}
