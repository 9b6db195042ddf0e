package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"liyu1981.xyz/coldtrack-monitor/pkg/models"
)

const allSensors = "todas"

// listBody accepts either a bare JSON array or a paginated {results: [...]} page.
type listBody[T any] []T

func (l *listBody[T]) UnmarshalJSON(b []byte) error {
	var items []T
	if err := json.Unmarshal(b, &items); err == nil {
		*l = items
		return nil
	}
	var page struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(b, &page); err != nil {
		return fmt.Errorf("expected list or paginated body: %w", err)
	}
	*l = page.Results
	return nil
}

func (c *Client) ListActiveBranches(ctx context.Context) ([]models.Branch, error) {
	var branches listBody[models.Branch]
	if err := c.get(ctx, "/sucursales/activas/", nil, &branches); err != nil {
		return nil, fmt.Errorf("listing active branches: %w", err)
	}
	return branches, nil
}

func (c *Client) ListSensors(ctx context.Context, branchID models.ID) ([]models.Sensor, error) {
	query := url.Values{}
	if branchID != "" {
		query.Set("sucursal_id", branchID.String())
	}
	var sensors listBody[models.Sensor]
	if err := c.get(ctx, "/camaras/", query, &sensors); err != nil {
		return nil, fmt.Errorf("listing sensors of branch %s: %w", branchID, err)
	}
	return sensors, nil
}

func (c *Client) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	query := url.Values{}
	setIf := func(key, value string) {
		if value != "" {
			query.Set(key, value)
		}
	}
	setIf("fecha_desde", filter.From)
	setIf("fecha_hasta", filter.To)
	setIf("sucursal_id", filter.BranchID.String())
	setIf("camara_id", filter.SensorID.String())
	setIf("tipo", string(filter.Type))

	var events listBody[models.Event]
	if err := c.get(ctx, "/eventos/", query, &events); err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

// ExecutiveAnalytics fetches the aggregated view for the range. An empty
// sensorID aggregates over every sensor.
func (c *Client) ExecutiveAnalytics(ctx context.Context, q models.DateRangeQuery, sensorID models.ID) (*models.AnalyticsResult, error) {
	camera := sensorID.String()
	if camera == "" {
		camera = allSensors
	}
	query := url.Values{}
	query.Set("fechaInicio", q.StartString())
	query.Set("fechaFin", q.EndString())
	query.Set("camaraId", camera)

	var result models.AnalyticsResult
	if err := c.get(ctx, "/dashboard/analisis-ejecutivo/", query, &result); err != nil {
		return nil, fmt.Errorf("executive analytics %s..%s: %w", q.StartString(), q.EndString(), err)
	}
	return &result, nil
}

func (c *Client) SaveExecutiveSummary(ctx context.Context, summary models.ExecutiveSummary) error {
	if err := c.post(ctx, "/dashboard/guardar-resumen-ejecutivo/", summary, nil); err != nil {
		return fmt.Errorf("saving executive summary %q: %w", summary.Title, err)
	}
	return nil
}
