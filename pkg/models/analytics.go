package models

import "time"

const DateLayout = "2006-01-02"

// DateRangeQuery is an inclusive day range. Zero dates mean "not provided".
type DateRangeQuery struct {
	Start time.Time
	End   time.Time
}

func (q DateRangeQuery) StartString() string {
	if q.Start.IsZero() {
		return ""
	}
	return q.Start.Format(DateLayout)
}

func (q DateRangeQuery) EndString() string {
	if q.End.IsZero() {
		return ""
	}
	return q.End.Format(DateLayout)
}

// KPISet variances are percentages against the preceding period of equal length.
type KPISet struct {
	AvgTemperature      float64 `json:"temperaturaPromedio"`
	AvgTemperatureDelta float64 `json:"variacionTemperatura"`
	TotalEvents         float64 `json:"totalEventos"`
	TotalEventsDelta    float64 `json:"variacionEventos"`
	DefrostHours        float64 `json:"horasDeshielo"`
	DefrostHoursDelta   float64 `json:"variacionDeshielo"`
	FailureHours        float64 `json:"horasFalla"`
	FailureHoursDelta   float64 `json:"variacionFalla"`
	NormalPercent       float64 `json:"porcentajeNormal"`
	NormalPercentDelta  float64 `json:"variacionNormal"`
}

type PeriodKind string

const (
	PeriodDaily   PeriodKind = "diaria"
	PeriodWeekly  PeriodKind = "semanal"
	PeriodMonthly PeriodKind = "mensual"
)

type PeriodPoint struct {
	Period        string  `json:"periodo"`
	Events        float64 `json:"eventos"`
	FailureHours  float64 `json:"horasFalla"`
	CriticalHours float64 `json:"horasCriticas"`
}

// PeriodSeries is an adaptive bucketed series; the backend picks the bucket
// size from the queried range.
type PeriodSeries struct {
	Kind   PeriodKind    `json:"tipo"`
	Title  string        `json:"titulo"`
	Points []PeriodPoint `json:"datos"`
}

type OperatingState string

const (
	OperatingNormal  OperatingState = "NORMAL"
	OperatingDefrost OperatingState = "DESHIELO"
	OperatingFailure OperatingState = "FALLA"
)

type StateShare struct {
	State   OperatingState `json:"estado"`
	Value   float64        `json:"valor"`
	Percent float64        `json:"porcentaje"`
}

type CriticalEvent struct {
	ID         ID        `json:"id"`
	SensorName string    `json:"camara"`
	Type       EventType `json:"tipo"`
	Duration   string    `json:"duracion"`
	MaxTempC   float64   `json:"tempMaxima"`
	Status     string    `json:"estado"`
}

type EventBreakdown struct {
	Distribution   []StateShare    `json:"distribucion"`
	CriticalEvents []CriticalEvent `json:"eventosCriticos"`
}

type DailyTemperature struct {
	Date          string  `json:"fecha"`
	AvgTemp       float64 `json:"tempPromedio"`
	MaxTemp       float64 `json:"tempMaxima"`
	CriticalLimit float64 `json:"umbralCritico"`
}

type RankedSensor struct {
	ID           ID      `json:"id"`
	Name         string  `json:"nombre"`
	Events       float64 `json:"eventos"`
	FailureHours float64 `json:"horasFalla"`
}

type SensorRankings struct {
	MostEvents       []RankedSensor `json:"masEventos"`
	MostFailureHours []RankedSensor `json:"masFallas"`
}

// AnalyticsResult is replaced wholesale on every successful query.
type AnalyticsResult struct {
	KPIs              KPISet             `json:"kpis"`
	Comparison        PeriodSeries       `json:"comparacionAdaptativa"`
	Trend             PeriodSeries       `json:"tendenciaAdaptativa"`
	EventDistribution EventBreakdown     `json:"analisisEventos"`
	Temperatures      []DailyTemperature `json:"temperaturas"`
	Rankings          SensorRankings     `json:"rankingCamaras"`
}

type SummaryAuthor struct {
	Email string `json:"email"`
	Name  string `json:"nombre"`
	UID   string `json:"uid,omitempty"`
}

// ExecutiveSummary is a titled analytics snapshot saved on the backend.
type ExecutiveSummary struct {
	Start  string           `json:"fechaInicio"`
	End    string           `json:"fechaFin"`
	Title  string           `json:"titulo"`
	Notes  string           `json:"observaciones"`
	Data   *AnalyticsResult `json:"datos"`
	Author SummaryAuthor    `json:"usuarioInfo"`
}
