package feed

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
	_ "liyu1981.xyz/coldtrack-monitor/pkg/testing"
)

// fakeSource keeps one handler per topic, like a retained key/value feed.
type fakeSource struct {
	mu       sync.Mutex
	handlers map[string]func([]byte)
	unsubbed []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{handlers: map[string]func([]byte){}}
}

func (f *fakeSource) Subscribe(topic string, fn func([]byte)) (func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[topic] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.handlers, topic)
		f.unsubbed = append(f.unsubbed, topic)
	}, nil
}

func (f *fakeSource) push(topic string, payload string) {
	f.mu.Lock()
	fn := f.handlers[topic]
	f.mu.Unlock()
	if fn != nil {
		fn([]byte(payload))
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    models.LiveReading
		wantErr bool
	}{
		{"full", `{"temp":-18.4,"state":"NORMAL","ts":1700000000}`, models.LiveReading{Temperature: -18.4, State: "NORMAL", TimestampSeconds: 1700000000}, false},
		{"no state", `{"temp":3,"ts":1700000001}`, models.LiveReading{Temperature: 3, State: models.SensorStateUnknown, TimestampSeconds: 1700000001}, false},
		{"empty state", `{"temp":3,"state":"","ts":1}`, models.LiveReading{Temperature: 3, State: models.SensorStateUnknown, TimestampSeconds: 1}, false},
		{"temp as string", `{"temp":"3.2","ts":1}`, models.LiveReading{}, true},
		{"missing temp", `{"ts":1}`, models.LiveReading{}, true},
		{"null temp", `{"temp":null,"ts":1}`, models.LiveReading{}, true},
		{"fractional ts", `{"temp":1,"ts":1.5}`, models.LiveReading{}, true},
		{"missing ts", `{"temp":1}`, models.LiveReading{}, true},
		{"not json", `temp=1`, models.LiveReading{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.payload))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTopic(t *testing.T) {
	assert.Equal(t, "status/dev-12/live", Topic("status", "dev-12"))
	assert.Equal(t, "status/a/b/live", Topic("/status/", "/a/b/"))
	assert.Equal(t, "dev-12/live", Topic("", "dev-12"))
}

func TestSubscribeDeliversAndDropsMalformed(t *testing.T) {
	buf := &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.DebugLevel)

	src := newFakeSource()
	c := NewClient(src, "status")

	var got []models.LiveReading
	h, err := c.Subscribe("dev-12", func(r models.LiveReading) { got = append(got, r) })
	require.NoError(t, err)
	assert.Equal(t, "status/dev-12/live", h.Topic())

	src.push("status/dev-12/live", `{"temp":-18,"ts":10}`)
	src.push("status/dev-12/live", `{"temp":"oops","ts":11}`)
	src.push("status/dev-12/live", `{"temp":-17.5,"ts":12,"state":"DESHIELO"}`)

	require.Len(t, got, 2)
	assert.Equal(t, int64(12), got[1].TimestampSeconds)

	dropped := 0
	for _, l := range common.ParseLogs(buf) {
		if l["msg"] == "dropping live payload" {
			dropped++
			assert.Equal(t, common.LoggerNameRealtime, l["logger"])
			assert.Equal(t, common.LoggerCategoryFeed, l["category"])
		}
	}
	assert.Equal(t, 1, dropped)
}

func TestCancelStopsCallbacksAndIsIdempotent(t *testing.T) {
	common.SetTestLoggerNop()
	src := newFakeSource()
	c := NewClient(src, "status")

	calls := 0
	h, err := c.Subscribe("dev-1", func(models.LiveReading) { calls++ })
	require.NoError(t, err)

	deliver := src.handlers["status/dev-1/live"]
	h.Cancel()
	h.Cancel()

	// a message already in flight inside the transport
	deliver([]byte(`{"temp":1,"ts":1}`))
	assert.Zero(t, calls)
	assert.Equal(t, []string{"status/dev-1/live"}, src.unsubbed)
}

func TestResubscribeCancelsPrevious(t *testing.T) {
	common.SetTestLoggerNop()
	src := newFakeSource()
	c := NewClient(src, "status")

	var fromA, fromB int
	_, err := c.Subscribe("a", func(models.LiveReading) { fromA++ })
	require.NoError(t, err)
	staleA := src.handlers["status/a/live"]

	_, err = c.Subscribe("b", func(models.LiveReading) { fromB++ })
	require.NoError(t, err)

	staleA([]byte(`{"temp":1,"ts":1}`))
	src.push("status/b/live", `{"temp":2,"ts":2}`)

	assert.Zero(t, fromA)
	assert.Equal(t, 1, fromB)

	c.Close()
	src.push("status/b/live", `{"temp":3,"ts":3}`)
	assert.Equal(t, 1, fromB)
}

func TestSubscribeWithoutFeedPath(t *testing.T) {
	common.SetTestLoggerNop()
	c := NewClient(newFakeSource(), "status")
	_, err := c.Subscribe("", func(models.LiveReading) {})
	assert.ErrorIs(t, err, ErrNoFeedPath)
}

func TestNilHandleCancel(t *testing.T) {
	var h *Handle
	assert.NotPanics(t, h.Cancel)
}
