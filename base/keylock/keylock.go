package keylock

import "sync"

// KeyLock serializes work per key while leaving unrelated keys fully
// parallel. Entries are reference counted and removed once the last holder
// unlocks, so the map does not grow with the number of keys ever seen.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyLock {
	return &KeyLock{locks: map[string]*entry{}}
}

func (kl *KeyLock) Lock(key string) {
	kl.mu.Lock()
	e, ok := kl.locks[key]
	if !ok {
		e = &entry{}
		kl.locks[key] = e
	}
	e.refs++
	kl.mu.Unlock()

	e.mu.Lock()
}

func (kl *KeyLock) Unlock(key string) {
	kl.mu.Lock()
	e, ok := kl.locks[key]
	if !ok {
		kl.mu.Unlock()
		panic("keylock: unlock of unheld key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(kl.locks, key)
	}
	kl.mu.Unlock()

	e.mu.Unlock()
}
