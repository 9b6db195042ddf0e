package history

import (
	"sync"
	"time"

	"liyu1981.xyz/coldtrack-monitor/pkg/models"
)

const (
	DefaultCapacity = 20
	DisplayLayout   = "15:04:05"
)

// Buffer is a bounded, append-ordered window of recent readings. Once full,
// every Append drops the oldest point.
type Buffer struct {
	mu       sync.RWMutex
	capacity int
	points   []models.HistoryPoint
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		capacity: capacity,
		points:   make([]models.HistoryPoint, 0, capacity),
	}
}

func (b *Buffer) Append(p models.HistoryPoint) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.points) == b.capacity {
		copy(b.points, b.points[1:])
		b.points = b.points[:b.capacity-1]
	}
	b.points = append(b.points, p)
}

func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.points = b.points[:0]
}

// Points returns a copy, oldest first.
func (b *Buffer) Points() []models.HistoryPoint {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.HistoryPoint, len(b.points))
	copy(out, b.points)
	return out
}

func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.points)
}

func (b *Buffer) Capacity() int {
	return b.capacity
}

// PointFrom converts a live reading into a chart point. loc nil means UTC.
func PointFrom(r models.LiveReading, loc *time.Location) models.HistoryPoint {
	if loc == nil {
		loc = time.UTC
	}
	ts := r.Time()
	return models.HistoryPoint{
		DisplayTime: ts.In(loc).Format(DisplayLayout),
		UnixMillis:  ts.UnixMilli(),
		Temperature: r.Temperature,
	}
}
