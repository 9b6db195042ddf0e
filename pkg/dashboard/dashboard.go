package dashboard

import (
	"context"
	"time"

	"liyu1981.xyz/coldtrack-monitor/pkg/analytics"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
	"liyu1981.xyz/coldtrack-monitor/pkg/report"
	"liyu1981.xyz/coldtrack-monitor/pkg/selection"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/dashboard.go -package=mocks

type ISession interface {
	Login(ctx context.Context, token string) error
	Logout()
}

type IRealtime interface {
	Snapshot() selection.Snapshot
	SelectBranch(ctx context.Context, branchID models.ID) error
	SelectSensor(ctx context.Context, sensorID models.ID) error
	ClearBranch()
}

type IAnalytics interface {
	Run(ctx context.Context, req analytics.Request) (*models.AnalyticsResult, error)
	Current() (*models.AnalyticsResult, analytics.Request, bool)
	SaveSummary(ctx context.Context, title, notes string) error
}

type IReport interface {
	EmitCurrent(ctx context.Context) (*report.Artifact, error)
	ListReports(ctx context.Context, limit int) ([]models.ReportRecord, error)
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

// Machine, Queries and the rest are the concrete collaborators behind the
// default service implementations.
type Dashboard struct {
	Machine *selection.Machine
	Queries *analytics.Coordinator
	Auth    Auth
	Backend SummaryStore
	Sink    report.Sink
	Archive ReportLister
	Events  EventLister
	Loc     *time.Location

	Session   ISession
	Realtime  IRealtime
	Analytics IAnalytics
	Report    IReport
}

type Auth interface {
	Login(token string) error
	Logout()
	Email() string
}

type SummaryStore interface {
	SaveExecutiveSummary(ctx context.Context, summary models.ExecutiveSummary) error
}

type ReportLister interface {
	List(ctx context.Context, limit int) ([]models.ReportRecord, error)
}

type EventLister interface {
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

type ServiceOpts struct {
	Session   ISession
	Realtime  IRealtime
	Analytics IAnalytics
	Report    IReport
}

func (d *Dashboard) WithServices(opts ServiceOpts) *Dashboard {
	if opts.Session != nil {
		d.Session = opts.Session
	}
	if opts.Realtime != nil {
		d.Realtime = opts.Realtime
	}
	if opts.Analytics != nil {
		d.Analytics = opts.Analytics
	}
	if opts.Report != nil {
		d.Report = opts.Report
	}
	return d
}

// WithDefaultServices wires the implementations backed by d's collaborators.
func (d *Dashboard) WithDefaultServices() *Dashboard {
	return d.WithServices(ServiceOpts{
		Session:   d.GetISession(),
		Realtime:  d.GetIRealtime(),
		Analytics: d.GetIAnalytics(),
		Report:    d.GetIReport(),
	})
}
