package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"liyu1981.xyz/coldtrack-monitor/pkg/models"
)

var ErrMalformed = errors.New("malformed live payload")

type wirePayload struct {
	Temp  json.RawMessage `json:"temp"`
	State json.RawMessage `json:"state"`
	TS    json.RawMessage `json:"ts"`
}

// Decode parses one live snapshot. temp must be a JSON number and ts an
// integer count of seconds; a missing or empty state becomes "unknown".
func Decode(payload []byte) (models.LiveReading, error) {
	var wire wirePayload
	if err := json.Unmarshal(payload, &wire); err != nil {
		return models.LiveReading{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	var reading models.LiveReading
	if isAbsent(wire.Temp) {
		return models.LiveReading{}, fmt.Errorf("%w: missing temp", ErrMalformed)
	}
	if err := json.Unmarshal(wire.Temp, &reading.Temperature); err != nil {
		return models.LiveReading{}, fmt.Errorf("%w: temp: %w", ErrMalformed, err)
	}

	if isAbsent(wire.TS) {
		return models.LiveReading{}, fmt.Errorf("%w: missing ts", ErrMalformed)
	}
	if err := json.Unmarshal(wire.TS, &reading.TimestampSeconds); err != nil {
		return models.LiveReading{}, fmt.Errorf("%w: ts: %w", ErrMalformed, err)
	}

	reading.State = models.SensorStateUnknown
	if !isAbsent(wire.State) {
		var state string
		if err := json.Unmarshal(wire.State, &state); err != nil {
			return models.LiveReading{}, fmt.Errorf("%w: state: %w", ErrMalformed, err)
		}
		if state = strings.TrimSpace(state); state != "" {
			reading.State = models.SensorState(state)
		}
	}
	return reading, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// Topic is the retained-snapshot topic of one sensor: {prefix}/{feedPath}/live.
func Topic(prefix, feedPath string) string {
	path := strings.Trim(feedPath, "/") + "/live"
	if prefix = strings.Trim(prefix, "/"); prefix == "" {
		return path
	}
	return prefix + "/" + path
}
