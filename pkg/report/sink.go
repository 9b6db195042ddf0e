package report

import (
	"bytes"
	"context"
	"embed"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/coldtrack-monitor/pkg/analytics"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var ErrNoResult = errors.New("no analytics result to report")

const ContentTypeHTML = "text/html; charset=utf-8"

// Artifact is a named downloadable report.
type Artifact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Path        string    `json:"path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Body        []byte    `json:"-"`
}

// Sink turns a finished analytics result into an artifact. It never
// changes the displayed result.
type Sink interface {
	Emit(ctx context.Context, result *models.AnalyticsResult, q models.DateRangeQuery, snapshot []byte) (*Artifact, error)
}

// Name is the artifact base name for the range, without extension.
func Name(q models.DateRangeQuery) string {
	return fmt.Sprintf("Reporte_Ejecutivo_%s_%s", q.StartString(), q.EndString())
}

type kpiCard struct {
	Title       string
	Value       string
	Variance    string
	Direction   analytics.Direction
	Level       analytics.Level
	Label       string
	Description string
}

type documentData struct {
	Name            string
	Start           string
	End             string
	GeneratedAt     string
	KPIs            []kpiCard
	Chart           template.URL
	Result          *models.AnalyticsResult
	Conclusions     []string
	Recommendations []string
}

type HTMLSink struct {
	tmpl *template.Template
	loc  *time.Location
	now  func() time.Time
}

func NewHTMLSink(loc *time.Location) (*HTMLSink, error) {
	if loc == nil {
		loc = time.UTC
	}
	tmpl, err := template.New("report.html.tmpl").
		Funcs(template.FuncMap{"num": analytics.FormatNumber}).
		ParseFS(templateFS, "templates/report.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing report template: %w", err)
	}
	return &HTMLSink{tmpl: tmpl, loc: loc, now: time.Now}, nil
}

func (s *HTMLSink) Emit(_ context.Context, result *models.AnalyticsResult, q models.DateRangeQuery, snapshot []byte) (*Artifact, error) {
	if result == nil {
		return nil, ErrNoResult
	}

	now := s.now()
	name := Name(q)
	data := documentData{
		Name:            name,
		Start:           q.StartString(),
		End:             q.EndString(),
		GeneratedAt:     now.In(s.loc).Format("2006-01-02 15:04"),
		KPIs:            kpiCards(result.KPIs),
		Result:          result,
		Conclusions:     analytics.Conclusions(result.KPIs),
		Recommendations: analytics.Recommendations(result.KPIs),
	}
	if len(snapshot) > 0 {
		data.Chart = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(snapshot))
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering report %s: %w", name, err)
	}

	return &Artifact{
		ID:          uuid.NewString(),
		Name:        name + ".html",
		ContentType: ContentTypeHTML,
		CreatedAt:   now,
		Body:        buf.Bytes(),
	}, nil
}

func kpiCards(k models.KPISet) []kpiCard {
	a := analytics.Classify(k)
	card := func(title, value string, variance float64, c analytics.Classification) kpiCard {
		return kpiCard{
			Title:       title,
			Value:       value,
			Variance:    analytics.FormatNumber(variance),
			Direction:   analytics.VarianceDirection(variance),
			Level:       c.Level,
			Label:       c.Label,
			Description: c.Description,
		}
	}
	return []kpiCard{
		card("Temperatura Promedio", analytics.FormatNumber(k.AvgTemperature)+"°C", k.AvgTemperatureDelta, a.Temperature),
		card("Total de Eventos", analytics.FormatNumber(k.TotalEvents), k.TotalEventsDelta, a.Events),
		card("Horas de Deshielo", analytics.FormatNumber(k.DefrostHours)+"h", k.DefrostHoursDelta,
			analytics.Classification{Level: analytics.LevelGood, Label: "Mantenimiento Normal", Description: "Mantenimiento programado normal del sistema."}),
		card("Horas de Falla", analytics.FormatNumber(k.FailureHours)+"h", k.FailureHoursDelta, a.FailureHours),
		card("Operación Normal", analytics.FormatNumber(k.NormalPercent)+"%", k.NormalPercentDelta, a.NormalPercent),
	}
}

// FileSink writes every artifact of Inner under Dir.
type FileSink struct {
	Inner Sink
	Dir   string
}

func (s *FileSink) Emit(ctx context.Context, result *models.AnalyticsResult, q models.DateRangeQuery, snapshot []byte) (*Artifact, error) {
	art, err := s.Inner.Emit(ctx, result, q, snapshot)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report dir: %w", err)
	}
	// same range may be emitted more than once
	path := filepath.Join(s.Dir, art.ID[:8]+"_"+art.Name)
	if err := os.WriteFile(path, art.Body, 0o644); err != nil {
		return nil, fmt.Errorf("writing report %s: %w", art.Name, err)
	}
	art.Path = path
	return art, nil
}

type Archive interface {
	Save(ctx context.Context, rec *models.ReportRecord) error
}

// ArchivingSink records every artifact of Inner. Archive failures are
// logged; the artifact is still returned.
type ArchivingSink struct {
	Inner   Sink
	Archive Archive
}

func (s *ArchivingSink) Emit(ctx context.Context, result *models.AnalyticsResult, q models.DateRangeQuery, snapshot []byte) (*Artifact, error) {
	art, err := s.Inner.Emit(ctx, result, q, snapshot)
	if err != nil {
		return nil, err
	}
	rec := &models.ReportRecord{
		ID:          art.ID,
		Name:        art.Name,
		StartDate:   q.StartString(),
		EndDate:     q.EndString(),
		ContentType: art.ContentType,
		Path:        art.Path,
		Size:        len(art.Body),
		CreatedAt:   art.CreatedAt,
	}
	if err := s.Archive.Save(ctx, rec); err != nil {
		common.GetLoggerWith(common.LoggerNameReport).Warn("failed to archive report",
			zap.String("name", art.Name), zap.Error(err))
	}
	return art, nil
}
