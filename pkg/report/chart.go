package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/zap"
	"liyu1981.xyz/coldtrack-monitor/pkg/analytics"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
)

var ErrNoTemperatureData = errors.New("no temperature data to chart")

const (
	chartWidth  = 960
	chartHeight = 360
)

func lineStyle(col drawing.Color, dashed bool) chart.Style {
	s := chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
	}
	if dashed {
		s.StrokeDashArray = []float64{6, 4}
	}
	return s
}

// RenderTemperatureChart draws daily average and maximum temperatures with
// the critical threshold as a PNG.
func RenderTemperatureChart(days []models.DailyTemperature) ([]byte, error) {
	if len(days) == 0 {
		return nil, ErrNoTemperatureData
	}

	times := make([]time.Time, 0, len(days))
	for _, d := range days {
		t, err := time.Parse(models.DateLayout, d.Date)
		if err != nil {
			return nil, fmt.Errorf("bad date %q in temperature series: %w", d.Date, err)
		}
		times = append(times, t)
	}
	avg := common.Mapper(days, func(d models.DailyTemperature) float64 { return d.AvgTemp })
	peak := common.Mapper(days, func(d models.DailyTemperature) float64 { return d.MaxTemp })
	// go-chart needs at least two x values
	if len(times) == 1 {
		times = append(times, times[0].Add(24*time.Hour))
		avg = append(avg, avg[0])
		peak = append(peak, peak[0])
	}
	threshold := common.Mapper(times, func(time.Time) float64 { return analytics.CriticalTemperature })

	ch := chart.Chart{
		Title:      "Temperaturas diarias",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{ValueFormatter: chart.TimeDateValueFormatter},
		YAxis:      chart.YAxis{Name: "°C"},
		Series: []chart.Series{
			chart.TimeSeries{Name: "Promedio", XValues: times, YValues: avg, Style: lineStyle(chart.ColorBlue, false)},
			chart.TimeSeries{Name: "Máxima", XValues: times, YValues: peak, Style: lineStyle(chart.ColorRed, false)},
			chart.TimeSeries{Name: "Umbral Crítico (4°C)", XValues: times, YValues: threshold, Style: lineStyle(chart.ColorOrange, true)},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering temperature chart: %w", err)
	}
	return buf.Bytes(), nil
}

// EmitWithChart renders the temperature chart of result and emits through
// sink. A chart that cannot be drawn is left out of the document.
func EmitWithChart(ctx context.Context, sink Sink, result *models.AnalyticsResult, q models.DateRangeQuery) (*Artifact, error) {
	if result == nil {
		return nil, ErrNoResult
	}

	snapshot, err := RenderTemperatureChart(result.Temperatures)
	if err != nil {
		common.GetLoggerWith(common.LoggerNameReport).Warn("temperature chart skipped", zap.Error(err))
		snapshot = nil
	}
	return sink.Emit(ctx, result, q, snapshot)
}
