package adapter

import "time"

// Clock supplies the current wall-clock time in the tracker's local timezone.
type Clock interface {
	Now() time.Time
}
