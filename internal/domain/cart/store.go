// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// DefaultStorageKey is the storage key the cart persists under.
const DefaultStorageKey = "fake-store-api-cart"

// Store binds a cart to a single storage key. The in-memory cart is the
// source of truth for the current session; persistence is best-effort
// write-through, so storage failures are logged and never surfaced to the
// caller. When the backend supports change notifications, writes made by
// other execution contexts replace local state (last write wins).
//
// A Store is an injectable object: create one per context and share it by
// reference with every surface that observes the cart.
type Store struct {
	storage storage.Storage
	key     string
	log     logrus.FieldLogger

	mu    sync.Mutex
	items Cart
	subs  map[int]func(Cart)
	subID int

	stopWatch func()
}

// NewStore creates a store over the given backend, reading the initial cart
// from stg. An unreadable or corrupt stored value falls back to an empty
// cart with a warning. Call Close to release the change subscription.
func NewStore(ctx context.Context, stg storage.Storage, key string, log logrus.FieldLogger) *Store {
	if key == "" {
		key = DefaultStorageKey
	}

	s := &Store{
		storage: stg,
		key:     key,
		log:     log,
		subs:    make(map[int]func(Cart)),
	}
	s.items = s.readInitial(ctx)

	if watcher, ok := stg.(storage.Watcher); ok {
		stop, err := watcher.Watch(ctx, key, s.onExternalChange)
		if err != nil {
			s.log.WithError(err).Warn("cart change notifications unavailable")
		} else {
			s.stopWatch = stop
		}
	}

	return s
}

// Close deregisters the change subscription. The store remains usable for
// local mutations afterwards.
func (s *Store) Close() {
	if s.stopWatch != nil {
		s.stopWatch()
		s.stopWatch = nil
	}
}

// Cart returns a snapshot of the current cart.
func (s *Store) Cart() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// AddToCart adds quantity units of p, merging with an existing entry for the
// same product id. Quantities below 1 are treated as 1.
func (s *Store) AddToCart(ctx context.Context, p product.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.apply(ctx, func(c Cart) Cart {
		return AddOrUpdateItem(c, p, quantity)
	})
}

// RemoveFromCart removes the entry for productID.
func (s *Store) RemoveFromCart(ctx context.Context, productID int) {
	s.apply(ctx, func(c Cart) Cart {
		return RemoveItem(c, productID)
	})
}

// UpdateQuantity sets the entry's quantity to exactly quantity; below 1
// removes the entry.
func (s *Store) UpdateQuantity(ctx context.Context, productID, quantity int) {
	s.apply(ctx, func(c Cart) Cart {
		return UpdateItemQuantity(c, productID, quantity)
	})
}

// IncrementQuantity increases the entry's quantity by 1.
func (s *Store) IncrementQuantity(ctx context.Context, productID int) {
	s.apply(ctx, func(c Cart) Cart {
		return IncrementItemQuantity(c, productID)
	})
}

// DecrementQuantity decreases the entry's quantity by 1, removing the entry
// at quantity 1.
func (s *Store) DecrementQuantity(ctx context.Context, productID int) {
	s.apply(ctx, func(c Cart) Cart {
		return DecrementItemQuantity(c, productID)
	})
}

// Clear empties the cart and removes the storage key. This is distinct from
// zeroing every quantity: the persisted representation is erased entirely.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = Cart{}
	snapshot := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	if err := s.storage.Remove(ctx, s.key); err != nil {
		s.log.WithError(err).WithField("key", s.key).Warn("failed to remove persisted cart")
	}

	notify(subs, snapshot)
}

// ItemQuantity returns the quantity of productID in the current cart, or 0.
func (s *Store) ItemQuantity(productID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ItemQuantity(s.items, productID)
}

// TotalItemsCount returns the sum of all quantities in the current cart.
func (s *Store) TotalItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TotalItemsCount(s.items)
}

// TotalPrice returns the total price of the current cart.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TotalPrice(s.items)
}

// Subscribe registers fn to run after every cart change, local or external,
// with the new snapshot. The returned function deregisters it.
func (s *Store) Subscribe(fn func(Cart)) func() {
	s.mu.Lock()
	id := s.subID
	s.subID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// apply runs a pure helper against the current cart, installs the result and
// writes it through to storage. A write failure keeps the in-memory update:
// memory and storage may diverge until the next successful write.
func (s *Store) apply(ctx context.Context, mutate func(Cart) Cart) {
	s.mu.Lock()
	s.items = mutate(s.items)
	snapshot := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	payload, err := json.Marshal(snapshot)
	if err != nil {
		s.log.WithError(err).WithField("key", s.key).Warn("failed to encode cart")
	} else if err := s.storage.Set(ctx, s.key, string(payload)); err != nil {
		s.log.WithError(err).WithField("key", s.key).Warn("failed to persist cart")
	}

	notify(subs, snapshot)
}

// onExternalChange replaces local state with a value written by another
// execution context for the same key. The latest notification is
// authoritative: unpersisted local state is discarded, no merging.
func (s *Store) onExternalChange(ev storage.Event) {
	items := Cart{}
	if ev.Value != nil {
		if err := json.Unmarshal([]byte(*ev.Value), &items); err != nil {
			s.log.WithError(err).WithField("key", s.key).Warn("ignoring malformed external cart, resetting to empty")
			items = Cart{}
		}
	}

	s.mu.Lock()
	s.items = items
	snapshot := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snapshot)
}

func (s *Store) readInitial(ctx context.Context) Cart {
	raw, err := s.storage.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return Cart{}
	}
	if err != nil {
		s.log.WithError(err).WithField("key", s.key).Warn("failed to read persisted cart, starting empty")
		return Cart{}
	}

	var items Cart
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.WithError(err).WithField("key", s.key).Warn("persisted cart is corrupt, starting empty")
		return Cart{}
	}
	return items
}

func (s *Store) snapshotLocked() Cart {
	out := make(Cart, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) subscribersLocked() []func(Cart) {
	out := make([]func(Cart), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(Cart), snapshot Cart) {
	for _, fn := range subs {
		fn(snapshot)
	}
}
