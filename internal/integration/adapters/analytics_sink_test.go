package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type publishedMessage struct {
	topic   string
	qos     byte
	payload []byte
}

type fakePublisher struct {
	messages []publishedMessage
	err      error
}

func (p *fakePublisher) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	p.messages = append(p.messages, publishedMessage{topic: topic, qos: qos, payload: payload.([]byte)})
	return &fakeToken{err: p.err}
}

func TestMQTTAnalyticsSink_Track(t *testing.T) {
	userID := uuid.New()
	event := entity.NewActionEvent(entity.EventPrayerMarked, userID, "2024-03-10", time.Now(), map[string]string{"prayer": "fajr"})

	t.Run("publishes json to the user topic", func(t *testing.T) {
		pub := &fakePublisher{}
		sink := newMQTTAnalyticsSink(pub, "ibadah/events")

		if err := sink.Track(context.Background(), event); err != nil {
			t.Fatalf("track: %v", err)
		}
		if len(pub.messages) != 1 {
			t.Fatalf("expected 1 message, got %d", len(pub.messages))
		}
		msg := pub.messages[0]
		if msg.topic != "ibadah/events/"+userID.String() {
			t.Errorf("unexpected topic %s", msg.topic)
		}
		if msg.qos != 1 {
			t.Errorf("expected qos 1, got %d", msg.qos)
		}
		var decoded entity.ActionEvent
		if err := json.Unmarshal(msg.payload, &decoded); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if decoded.Type != entity.EventPrayerMarked || decoded.Attributes["prayer"] != "fajr" {
			t.Errorf("unexpected payload %+v", decoded)
		}
	})

	t.Run("surfaces publish errors", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("broker gone")}
		sink := newMQTTAnalyticsSink(pub, "ibadah/events")
		if err := sink.Track(context.Background(), event); err == nil {
			t.Error("expected publish error")
		}
	})
}
