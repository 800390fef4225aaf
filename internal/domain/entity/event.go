package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a discrete user action reported to analytics.
type EventType string

const (
	EventPrayerMarked   EventType = "prayer_marked"
	EventHabitToggled   EventType = "habit_toggled"
	EventRewardGranted  EventType = "reward_granted"
	EventZakatLogged    EventType = "zakat_logged"
	EventZakatPaid      EventType = "zakat_paid"
	EventDataReset      EventType = "data_reset"
	EventProfileCreated EventType = "profile_created"
)

// ActionEvent is an analytics record. It is never authoritative for points.
type ActionEvent struct {
	Type       EventType         `json:"type"`
	UserID     uuid.UUID         `json:"user_id"`
	Date       string            `json:"date,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// NewActionEvent creates an event stamped at now.
func NewActionEvent(eventType EventType, userID uuid.UUID, date string, now time.Time, attrs map[string]string) ActionEvent {
	return ActionEvent{
		Type:       eventType,
		UserID:     userID,
		Date:       date,
		Attributes: attrs,
		OccurredAt: now.UTC(),
	}
}
