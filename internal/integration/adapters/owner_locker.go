package adapters

import (
	"sync"

	"github.com/google/uuid"
)

// InMemoryOwnerLocker is a process-local implementation of adapter.OwnerLocker.
type InMemoryOwnerLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*ownerLock
}

type ownerLock struct {
	mu      sync.Mutex
	holders int
}

// NewInMemoryOwnerLocker creates a new in-memory owner locker.
func NewInMemoryOwnerLocker() *InMemoryOwnerLocker {
	return &InMemoryOwnerLocker{
		locks: make(map[uuid.UUID]*ownerLock),
	}
}

// Lock blocks until the profile's lock is held. Unused locks are dropped on release.
func (l *InMemoryOwnerLocker) Lock(userID uuid.UUID) func() {
	l.mu.Lock()
	lock, ok := l.locks[userID]
	if !ok {
		lock = &ownerLock{}
		l.locks[userID] = lock
	}
	lock.holders++
	l.mu.Unlock()

	lock.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			lock.mu.Unlock()
			l.mu.Lock()
			lock.holders--
			if lock.holders == 0 {
				delete(l.locks, userID)
			}
			l.mu.Unlock()
		})
	}
}

// Size returns the number of profiles with a held or awaited lock.
func (l *InMemoryOwnerLocker) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
