// internal/infrastructure/storage/memory.go
package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryBus is an in-process key-value store shared by any number of handles.
// Each handle models one execution context (one "tab"): a write through one
// handle is observable by every other handle's watchers, but never echoes
// back to the handle that made it.
type MemoryBus struct {
	mu       sync.RWMutex
	data     map[string]string
	watchers map[int]*memoryWatcher
	nextID   int
}

type memoryWatcher struct {
	origin string
	key    string
	fn     func(Event)
}

// NewMemoryBus creates an empty bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		data:     make(map[string]string),
		watchers: make(map[int]*memoryWatcher),
	}
}

// Open creates a handle with its own origin identity.
func (b *MemoryBus) Open() *MemoryStorage {
	return &MemoryStorage{
		bus:    b,
		origin: uuid.NewString(),
	}
}

func (b *MemoryBus) get(key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	value, ok := b.data[key]
	return value, ok
}

func (b *MemoryBus) set(origin, key, value string) {
	b.mu.Lock()
	b.data[key] = value
	b.mu.Unlock()

	b.notify(Event{Key: key, Value: &value, Origin: origin})
}

func (b *MemoryBus) remove(origin, key string) {
	b.mu.Lock()
	_, existed := b.data[key]
	delete(b.data, key)
	b.mu.Unlock()

	if existed {
		b.notify(Event{Key: key, Value: nil, Origin: origin})
	}
}

func (b *MemoryBus) notify(ev Event) {
	b.mu.RLock()
	targets := make([]*memoryWatcher, 0, len(b.watchers))
	for _, w := range b.watchers {
		if w.origin != ev.Origin && w.key == ev.Key {
			targets = append(targets, w)
		}
	}
	b.mu.RUnlock()

	for _, w := range targets {
		w.fn(ev)
	}
}

func (b *MemoryBus) watch(origin, key string, fn func(Event)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.watchers[id] = &memoryWatcher{origin: origin, key: key, fn: fn}
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.watchers, id)
		b.mu.Unlock()
	}
}

// MemoryStorage is one execution context's view of a MemoryBus. It implements
// Storage and Watcher and is the default backend and the test double.
type MemoryStorage struct {
	bus    *MemoryBus
	origin string
}

// NewMemory creates a standalone in-memory storage on a private bus.
func NewMemory() *MemoryStorage {
	return NewMemoryBus().Open()
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	value, ok := m.bus.get(key)
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *MemoryStorage) Set(_ context.Context, key, value string) error {
	m.bus.set(m.origin, key, value)
	return nil
}

func (m *MemoryStorage) Remove(_ context.Context, key string) error {
	m.bus.remove(m.origin, key)
	return nil
}

func (m *MemoryStorage) Watch(_ context.Context, key string, fn func(Event)) (func(), error) {
	return m.bus.watch(m.origin, key, fn), nil
}
