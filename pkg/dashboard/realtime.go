package dashboard

import (
	"context"

	"go.uber.org/zap"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
	"liyu1981.xyz/coldtrack-monitor/pkg/selection"
)

type IRealtimeImpl struct {
	d *Dashboard
}

func (ir *IRealtimeImpl) Snapshot() selection.Snapshot {
	return ir.d.Machine.Snapshot()
}

func (ir *IRealtimeImpl) SelectBranch(ctx context.Context, branchID models.ID) error {
	return ir.d.Machine.SelectBranch(ctx, branchID)
}

func (ir *IRealtimeImpl) SelectSensor(ctx context.Context, sensorID models.ID) error {
	return ir.d.Machine.SelectSensor(ctx, sensorID)
}

func (ir *IRealtimeImpl) ClearBranch() {
	ir.d.Machine.ClearBranch()
}

func (d *Dashboard) GetIRealtime() IRealtime {
	return &IRealtimeImpl{d: d}
}

type ISessionImpl struct {
	d *Dashboard
}

// Login starts the session and reloads the selection, since branch and
// sensor lists cannot be fetched without a token.
func (is *ISessionImpl) Login(ctx context.Context, token string) error {
	if err := is.d.Auth.Login(token); err != nil {
		return err
	}
	if is.d.Machine == nil {
		return nil
	}

	if err := is.d.Machine.Init(ctx); err != nil {
		common.GetLoggerWith(common.LoggerNameRealtime).Warn("selection reload after login incomplete", zap.Error(err))
	}
	return nil
}

func (is *ISessionImpl) Logout() {
	is.d.Auth.Logout()
}

func (d *Dashboard) GetISession() ISession {
	return &ISessionImpl{d: d}
}
