// Package cart owns the shopping cart line items. The store is the single
// source of truth; every mutation persists the full collection and returns the
// resulting snapshot for the caller to render.
package cart

import (
	"encoding/json"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/premiumstore/storefront/internal/catalog"
	"github.com/premiumstore/storefront/internal/storage"
)

const StorageKey = "premium-store-cart"

// Item is a product snapshot plus a positive quantity. At most one Item per
// product id exists in the cart; Add merges by incrementing quantity.
type Item struct {
	catalog.Product
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

type Store struct {
	backend storage.Backend
	key     string
	now     func() time.Time
}

func NewStore(backend storage.Backend) *Store {
	return &Store{backend: backend, key: StorageKey, now: time.Now}
}

// Items returns the last persisted collection. Absent or corrupt storage
// degrades silently to an empty cart.
func (s *Store) Items() []Item {
	raw, ok := s.backend.Get(s.key)
	if !ok {
		return []Item{}
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []Item{}
	}
	if items == nil {
		items = []Item{}
	}
	return items
}

// Add merges the product into the cart: existing line gains quantity 1, a new
// line starts at quantity 1. Stock gating is a caller concern; out-of-stock
// products are accepted here.
func (s *Store) Add(p catalog.Product) []Item {
	items := s.Items()
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity++
			s.save(items)
			return items
		}
	}
	items = append(items, Item{Product: p, Quantity: 1, AddedAt: s.now()})
	s.save(items)
	return items
}

// Remove deletes the line with the given product id. Absent ids are a no-op.
func (s *Store) Remove(productID int) []Item {
	items := s.Items()
	out := items[:0]
	for _, it := range items {
		if it.ID != productID {
			out = append(out, it)
		}
	}
	s.save(out)
	return out
}

// UpdateQuantity sets the line's quantity exactly; zero or negative removes
// the line. Absent ids are a no-op.
func (s *Store) UpdateQuantity(productID, quantity int) []Item {
	items := s.Items()
	for i := range items {
		if items[i].ID != productID {
			continue
		}
		if quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
		}
		break
	}
	s.save(items)
	return items
}

// Clear empties the cart by deleting the storage entry.
func (s *Store) Clear() {
	s.backend.Delete(s.key)
}

func (s *Store) save(items []Item) {
	b, err := json.Marshal(items)
	if err != nil {
		log.Printf("[cart] marshal failed: %v", err)
		return
	}
	if err := s.backend.Set(s.key, string(b)); err != nil {
		log.Printf("[cart] persist failed: %v", err)
	}
}

// Total sums unit price times quantity over the snapshot.
func Total(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		price := catalog.ParsePrice(it.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// ItemCount sums quantities, not distinct lines.
func ItemCount(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
