package entity

import "time"

// ResetMarkerKey is the record key of the marker left behind by a data reset.
const ResetMarkerKey = "sync:reset"

// ResetMarker records when a profile's data was last wiped.
// Synced records written at or before ResetAt are not restored.
type ResetMarker struct {
	ResetAt time.Time `json:"reset_at"`
}

// Erases reports whether a record written at updatedAt predates the reset.
func (m ResetMarker) Erases(updatedAt time.Time) bool {
	return !m.ResetAt.IsZero() && !updatedAt.After(m.ResetAt)
}
