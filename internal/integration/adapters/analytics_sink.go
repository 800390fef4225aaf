package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// LogAnalyticsSink writes action events to the structured log.
type LogAnalyticsSink struct {
	logger *slog.Logger
}

// NewLogAnalyticsSink creates a sink logging through logger, or the default logger when nil.
func NewLogAnalyticsSink(logger *slog.Logger) *LogAnalyticsSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogAnalyticsSink{logger: logger.With("component", "analytics")}
}

// Track logs the event.
func (s *LogAnalyticsSink) Track(ctx context.Context, event entity.ActionEvent) error {
	s.logger.InfoContext(ctx, "Action event",
		"type", event.Type,
		"user_id", event.UserID,
		"date", event.Date,
		"attributes", event.Attributes,
	)
	return nil
}

// NoopAnalyticsSink discards events.
type NoopAnalyticsSink struct{}

// Track does nothing.
func (NoopAnalyticsSink) Track(context.Context, entity.ActionEvent) error {
	return nil
}

const mqttPublishTimeout = 5 * time.Second

type mqttPublisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTAnalyticsSink publishes action events as JSON to <topic>/<user_id>.
type MQTTAnalyticsSink struct {
	client mqttPublisher
	topic  string
	close  func()
}

// NewMQTTAnalyticsSink connects to broker and returns a sink publishing under topic.
func NewMQTTAnalyticsSink(broker, clientID, topic string) (*MQTTAnalyticsSink, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(mqtt.Client) {
		slog.Info("Connected to MQTT broker", "broker", broker)
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		slog.Warn("MQTT connection lost", "broker", broker, "error", err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	sink := newMQTTAnalyticsSink(client, topic)
	sink.close = func() { client.Disconnect(250) }
	return sink, nil
}

func newMQTTAnalyticsSink(client mqttPublisher, topic string) *MQTTAnalyticsSink {
	return &MQTTAnalyticsSink{client: client, topic: topic}
}

// Track publishes the event with at-least-once delivery.
func (s *MQTTAnalyticsSink) Track(ctx context.Context, event entity.ActionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	topic := fmt.Sprintf("%s/%s", s.topic, event.UserID)
	token := s.client.Publish(topic, 1, false, payload)
	if !token.WaitTimeout(mqttPublishTimeout) {
		return fmt.Errorf("timed out publishing event to %s", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", topic, err)
	}
	return nil
}

// Close disconnects from the broker.
func (s *MQTTAnalyticsSink) Close() {
	if s.close != nil {
		s.close()
	}
}
