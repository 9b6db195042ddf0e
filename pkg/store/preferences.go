package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/coldtrack-monitor/pkg/db"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
)

// PreferenceStore is a durable string key/value store.
type PreferenceStore struct {
	db *db.DB
}

func NewPreferenceStore(d *db.DB) *PreferenceStore {
	return &PreferenceStore{db: d}
}

// Get returns the stored value and whether the key exists.
func (s *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	var pref models.Preference
	err := s.db.Conn.WithContext(ctx).First(&pref, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return pref.Value, true, nil
}

func (s *PreferenceStore) Set(ctx context.Context, key, value string) error {
	pref := models.Preference{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	return nil
}

func (s *PreferenceStore) Delete(ctx context.Context, key string) error {
	if err := s.db.Conn.WithContext(ctx).Delete(&models.Preference{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete preference %s: %w", key, err)
	}
	return nil
}
