package adapter

import "github.com/google/uuid"

// OwnerLocker serializes writers of one profile's records.
type OwnerLocker interface {
	// Lock blocks until the profile's lock is held and returns the release function.
	Lock(userID uuid.UUID) (unlock func())
}
