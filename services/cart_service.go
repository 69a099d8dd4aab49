package services

import (
	"encoding/json"
	"sync"

	"github.com/nicgen/buy-02/logger"
	"github.com/nicgen/buy-02/models"
	"github.com/nicgen/buy-02/storage"
	"github.com/nicgen/buy-02/stream"
)

// KeyCart is the storage key for the persisted cart items.
const KeyCart = "cart_items"

// CartService is the only stateful domain service: it holds the cart items
// in memory, persists them through the store, and publishes the full item
// list on every mutation. Items are unique by product id, insertion order
// preserved.
type CartService struct {
	store storage.Store

	mu      sync.Mutex
	items   []models.CartItem
	changes *stream.Stream[[]models.CartItem]
}

// NewCartService restores any persisted cart so a restart keeps the
// shopper's items.
func NewCartService(store storage.Store) *CartService {
	s := &CartService{store: store}
	if raw, err := store.Get(KeyCart); err == nil {
		if err := json.Unmarshal([]byte(raw), &s.items); err != nil {
			s.items = nil
		}
	}
	s.changes = stream.New(s.snapshot())
	return s
}

// Add merges a product into the cart: an existing line gains the quantity,
// a new product is appended. Quantity defaults to 1 when not positive.
func (s *CartService) Add(item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i, existing := range s.items {
		if existing.ID == item.ID {
			s.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, item)
	}
	s.commit()
}

// Remove deletes the line with the given product id. Removing an id that is
// not in the cart is a no-op.
func (s *CartService) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	removed := false
	for _, item := range s.items {
		if item.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return
	}
	s.items = kept
	s.commit()
}

// Clear empties the cart, as after a successful checkout.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return
	}
	s.items = nil
	s.commit()
}

// Items returns a copy of the current cart lines.
func (s *CartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Total recomputes the price×quantity sum over the current items.
func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Changes is the cart broadcast stream, replay-latest like the role stream.
func (s *CartService) Changes() *stream.Stream[[]models.CartItem] {
	return s.changes
}

// commit persists the items and publishes the new list. Caller holds s.mu.
func (s *CartService) commit() {
	data, err := json.Marshal(s.items)
	if err == nil {
		err = s.store.SetMany(map[string]string{KeyCart: string(data)})
	}
	if err != nil {
		logger.Error("Failed to persist cart", err)
	}
	s.changes.Publish(s.snapshot())
}

// snapshot copies the item slice so callers never alias internal state.
// Caller holds s.mu (or the service is still being constructed).
func (s *CartService) snapshot() []models.CartItem {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}
