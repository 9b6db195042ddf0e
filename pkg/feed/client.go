package feed

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
)

var ErrNoFeedPath = errors.New("sensor has no feed path")

// Source is a push key/value transport keyed by topic. fn receives the
// current value right after subscribing and every later change.
type Source interface {
	Subscribe(topic string, fn func(payload []byte)) (func(), error)
}

// Client keeps at most one live subscription.
type Client struct {
	source Source
	prefix string

	mu      sync.Mutex
	current *Handle

	logger *zap.Logger
}

func NewClient(source Source, topicPrefix string) *Client {
	return &Client{
		source: source,
		prefix: topicPrefix,
		logger: common.GetCategoryLogger(common.LoggerNameRealtime, common.LoggerCategoryFeed),
	}
}

// Subscribe cancels the previous handle, then delivers every well formed
// snapshot at feedPath to fn. Malformed payloads are dropped.
func (c *Client) Subscribe(feedPath string, fn func(models.LiveReading)) (*Handle, error) {
	if feedPath == "" {
		return nil, ErrNoFeedPath
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil {
		c.current.Cancel()
		c.current = nil
	}

	topic := Topic(c.prefix, feedPath)
	h := &Handle{topic: topic, fn: fn, logger: c.logger}
	unsubscribe, err := c.source.Subscribe(topic, h.deliver)
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", topic, err)
	}
	h.mu.Lock()
	h.cancel = sync.OnceFunc(func() {
		h.mu.Lock()
		h.cancelled = true
		h.mu.Unlock()
		unsubscribe()
		c.logger.Debug("subscription cancelled", zap.String("topic", topic))
	})
	h.mu.Unlock()

	c.current = h
	c.logger.Info("subscribed", zap.String("topic", topic))
	return h, nil
}

// Close cancels the current subscription, if any.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		c.current.Cancel()
		c.current = nil
	}
}

// Handle is one live subscription. fn must not call Cancel on its own handle.
type Handle struct {
	topic  string
	fn     func(models.LiveReading)
	cancel func()
	logger *zap.Logger

	mu        sync.Mutex
	cancelled bool
}

func (h *Handle) Topic() string {
	return h.topic
}

// Cancel is idempotent. Once it returns, fn is not invoked again.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.mu.Lock()
	cancel := h.cancel
	if cancel == nil {
		h.cancelled = true
	}
	h.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (h *Handle) deliver(payload []byte) {
	reading, err := Decode(payload)
	if err != nil {
		h.logger.Debug("dropping live payload", zap.String("topic", h.topic), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled {
		return
	}
	h.fn(reading)
}
