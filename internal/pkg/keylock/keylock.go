// Package keylock provides per-key mutual exclusion. The attendance and
// leave services serialize mutations per employee with it so that two
// concurrent requests for the same employee cannot both pass a
// read-then-write guard.
package keylock

import "sync"

// KeyLock hands out one mutex per int64 key. Mutexes are never released;
// the key space here is employee ids, which is small and long-lived.
type KeyLock struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func New() *KeyLock {
	return &KeyLock{locks: make(map[int64]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *KeyLock) Lock(key int64) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
