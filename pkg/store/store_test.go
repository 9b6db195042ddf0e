package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/db"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
	_ "liyu1981.xyz/coldtrack-monitor/pkg/testing"
)

func setupDB(t *testing.T) *db.DB {
	t.Helper()
	common.SetTestLoggerNop()
	d := db.GetInstance(db.UseMemorySqliteDialector())
	d.Conn.Exec("DELETE FROM preferences")
	d.Conn.Exec("DELETE FROM report_records")
	return d
}

func TestPreferenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	prefs := NewPreferenceStore(setupDB(t))

	_, found, err := prefs.Get(ctx, common.PreferenceKeyBranch)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, prefs.Set(ctx, common.PreferenceKeyBranch, "5"))
	require.NoError(t, prefs.Set(ctx, common.PreferenceKeyBranch, "6"))

	v, found, err := prefs.Get(ctx, common.PreferenceKeyBranch)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "6", v)

	require.NoError(t, prefs.Delete(ctx, common.PreferenceKeyBranch))
	_, found, err = prefs.Get(ctx, common.PreferenceKeyBranch)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReportArchiveListNewestFirst(t *testing.T) {
	ctx := context.Background()
	archive := NewReportArchive(setupDB(t))

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rec := &models.ReportRecord{
			ID:          uuid.NewString(),
			Name:        fmt.Sprintf("Reporte_Ejecutivo_%d", i),
			ContentType: "text/html",
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, archive.Save(ctx, rec))
	}

	records, err := archive.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Reporte_Ejecutivo_2", records[0].Name)
	assert.Equal(t, "Reporte_Ejecutivo_1", records[1].Name)
}
