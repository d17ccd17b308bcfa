// Package cart is the client-side shopping cart: an ordered list of
// line items with derived totals, persisted to a local JSON file so the
// cart survives restarts. It is independent of the server until
// checkout converts it into an order-creation request.
package cart

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Product is the catalog snapshot kept on a cart line. Price inside the
// snapshot is informational; the line's own Price field is the one the
// totals use.
type Product struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Brand string  `json:"brand,omitempty"`
	Image string  `json:"image,omitempty"`
}

// Item is one cart line. Two lines are the same line iff product id,
// size and color all match.
type Item struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
	Price    float64 `json:"price"`
}

func (it Item) matches(productID, size, color string) bool {
	return it.Product.ID == productID && it.Size == size && it.Color == color
}

// Store owns the cart state. All mutations go through its methods,
// recompute the totals and save as their last step.
type Store struct {
	mu          sync.Mutex
	path        string
	items       []Item
	totalItems  int
	totalAmount float64
}

// Open loads the cart persisted at path. A missing or unreadable file
// yields an empty cart, never an error.
func Open(path string) *Store {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil || json.Unmarshal(data, &s.items) != nil {
		s.items = nil
	}
	s.calculateTotals()
	return s
}

// AddItem puts quantity units of the product in the cart. A line with
// the same identity key absorbs the quantity; otherwise a new line is
// appended with the product's current price snapshot. Quantity below 1
// counts as 1.
func (s *Store) AddItem(p Product, quantity int, size, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity < 1 {
		quantity = 1
	}
	merged := false
	for i := range s.items {
		if s.items[i].matches(p.ID, size, color) {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, Item{
			Product:  p,
			Quantity: quantity,
			Size:     size,
			Color:    color,
			Price:    p.Price,
		})
	}
	s.calculateTotals()
	return s.persist()
}

// RemoveItem deletes the line with the given identity key. Removing a
// line that is not present is a no-op.
func (s *Store) RemoveItem(productID, size, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, it := range s.items {
		if !it.matches(productID, size, color) {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.calculateTotals()
	return s.persist()
}

// UpdateQuantity sets the line's quantity to the given value (absolute
// set, not a delta). Zero or negative behaves as RemoveItem. An unknown
// identity key is a no-op.
func (s *Store) UpdateQuantity(productID, size, color string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if !s.items[i].matches(productID, size, color) {
			continue
		}
		if quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = quantity
		}
		s.calculateTotals()
		return s.persist()
	}
	return nil
}

// Clear empties the cart and erases the persisted state.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.totalItems = 0
	s.totalAmount = 0
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.items...)
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalItems
}

func (s *Store) TotalAmount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalAmount
}

// ShippingCost is what checkout will charge for the cart as it stands:
// free above 999, a flat 99 otherwise. Matches the server's numbers.
func (s *Store) ShippingCost() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.totalAmount > freeShippingThreshold {
		return 0
	}
	return flatShippingFee
}

const (
	freeShippingThreshold = 999
	flatShippingFee       = 99
)

// calculateTotals recomputes the derived totals; callers hold the lock.
func (s *Store) calculateTotals() {
	s.totalItems = 0
	s.totalAmount = 0
	for _, it := range s.items {
		s.totalItems += it.Quantity
		s.totalAmount += it.Price * float64(it.Quantity)
	}
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}
