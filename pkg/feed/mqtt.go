package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
)

const (
	subscribeQoS   = 1
	disconnectWait = 250 // ms
)

type MQTTOptions struct {
	Broker   string
	ClientID string
	Username string
	Password string
}

// MQTTSource reads retained snapshots from an MQTT v3 broker. Topics are
// resubscribed after a reconnect so the retained value is delivered again.
type MQTTSource struct {
	client mqtt.Client

	mu     sync.Mutex
	topics map[string]mqtt.MessageHandler

	logger *zap.Logger
}

func NewMQTTSource(opts MQTTOptions) *MQTTSource {
	s := &MQTTSource{
		topics: make(map[string]mqtt.MessageHandler),
		logger: common.GetCategoryLogger(common.LoggerNameRealtime, common.LoggerCategoryFeed),
	}

	clientID := opts.ClientID
	if clientID == "" {
		clientID = "coldtrack"
	}
	clientID += "-" + uuid.NewString()[:8]

	o := mqtt.NewClientOptions()
	o.AddBroker(opts.Broker)
	o.SetClientID(clientID)
	o.SetUsername(opts.Username)
	o.SetPassword(opts.Password)
	o.SetKeepAlive(60 * time.Second)
	o.SetPingTimeout(10 * time.Second)
	o.SetAutoReconnect(true)
	o.SetMaxReconnectInterval(10 * time.Second)
	o.SetCleanSession(true)
	o.SetOrderMatters(false)

	o.OnConnect = func(c mqtt.Client) {
		s.logger.Info("connected to broker", zap.String("broker", opts.Broker))
		s.resubscribe(c)
	}
	o.OnConnectionLost = func(_ mqtt.Client, err error) {
		s.logger.Warn("connection to broker lost", zap.Error(err))
	}
	o.OnReconnecting = func(_ mqtt.Client, _ *mqtt.ClientOptions) {
		s.logger.Info("reconnecting to broker")
	}

	s.client = mqtt.NewClient(o)
	return s
}

func (s *MQTTSource) Connect(ctx context.Context) error {
	token := s.client.Connect()
	select {
	case <-token.Done():
	case <-ctx.Done():
		return fmt.Errorf("connecting to broker: %w", ctx.Err())
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}
	return nil
}

func (s *MQTTSource) Subscribe(topic string, fn func(payload []byte)) (func(), error) {
	if !s.client.IsConnectionOpen() {
		return nil, errors.New("MQTT client not connected")
	}

	handler := func(_ mqtt.Client, msg mqtt.Message) {
		fn(msg.Payload())
	}

	s.mu.Lock()
	s.topics[topic] = handler
	s.mu.Unlock()

	token := s.client.Subscribe(topic, subscribeQoS, handler)
	if token.Wait() && token.Error() != nil {
		s.mu.Lock()
		delete(s.topics, topic)
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, token.Error())
	}

	return func() {
		s.mu.Lock()
		delete(s.topics, topic)
		s.mu.Unlock()
		if t := s.client.Unsubscribe(topic); t.Wait() && t.Error() != nil {
			s.logger.Warn("unsubscribe failed", zap.String("topic", topic), zap.Error(t.Error()))
		}
	}, nil
}

func (s *MQTTSource) resubscribe(c mqtt.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for topic, handler := range s.topics {
		// OnConnect runs on paho's connection goroutine, so do not Wait here
		c.Subscribe(topic, subscribeQoS, handler)
		s.logger.Debug("resubscribed", zap.String("topic", topic))
	}
}

func (s *MQTTSource) Publish(topic string, retained bool, payload []byte) error {
	token := s.client.Publish(topic, subscribeQoS, retained, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, token.Error())
	}
	return nil
}

func (s *MQTTSource) Close() {
	if s.client.IsConnected() {
		s.client.Disconnect(disconnectWait)
		s.logger.Info("disconnected from broker")
	}
}
