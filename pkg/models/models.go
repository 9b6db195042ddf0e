package models

import "time"

type Branch struct {
	ID     ID     `json:"id"`
	Name   string `json:"nombre"`
	Active bool   `json:"activa"`
}

type Sensor struct {
	ID       ID     `json:"id"`
	Name     string `json:"nombre"`
	BranchID RefID  `json:"sucursal"`
	FeedPath string `json:"firebase_path"`
	Active   bool   `json:"activa"`
}

type SensorState string

const SensorStateUnknown SensorState = "unknown"

// LiveReading is one full-value snapshot from the live feed.
type LiveReading struct {
	Temperature      float64     `json:"temp"`
	State            SensorState `json:"state"`
	TimestampSeconds int64       `json:"ts"`
}

func (r LiveReading) Time() time.Time {
	return time.Unix(r.TimestampSeconds, 0)
}

type HistoryPoint struct {
	DisplayTime string  `json:"time"`
	UnixMillis  int64   `json:"ts_ms"`
	Temperature float64 `json:"temp"`
}

type EventType string

const (
	EventTypeDefrost EventType = "DESHIELO"
	EventTypeFailure EventType = "FALLA"
)

type Event struct {
	ID          ID        `json:"id"`
	Type        EventType `json:"tipo"`
	SensorName  string    `json:"camara_nombre"`
	BranchName  string    `json:"sucursal_nombre"`
	StartedAt   string    `json:"fecha_inicio"`
	EndedAt     string    `json:"fecha_fin"`
	DurationMin *float64  `json:"duracion_minutos"`
	MaxTempC    *float64  `json:"temp_max_c"`
	Status      string    `json:"estado"`
}

type EventFilter struct {
	From     string
	To       string
	BranchID ID
	SensorID ID
	Type     EventType
}

// Preference is one durable key/value entry (selection persistence).
type Preference struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

// ReportRecord archives an emitted report artifact.
type ReportRecord struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	StartDate   string    `gorm:"index" json:"start_date"`
	EndDate     string    `json:"end_date"`
	ContentType string    `json:"content_type"`
	Path        string    `json:"path,omitempty"`
	Size        int       `json:"size"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}
