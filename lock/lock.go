// Package lock provides a mutex keyed by cart scope. Every cart mutation
// and the whole checkout sequence for a scope run under its lock, so a
// read-merge-write never races another writer of the same scope.
package lock

import "sync"

type Keyed struct {
	mu     sync.Mutex
	scopes map[string]*sync.Mutex
}

func NewKeyed() *Keyed {
	return &Keyed{scopes: make(map[string]*sync.Mutex)}
}

func (k *Keyed) get(scope string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.scopes[scope]
	if !ok {
		m = &sync.Mutex{}
		k.scopes[scope] = m
	}
	return m
}

func (k *Keyed) Lock(scope string) {
	k.get(scope).Lock()
}

func (k *Keyed) Unlock(scope string) {
	k.get(scope).Unlock()
}
