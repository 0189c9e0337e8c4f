// Package wishlist owns the set of saved products, unique by product id.
package wishlist

import (
	"encoding/json"
	"log"

	"github.com/premiumstore/storefront/internal/catalog"
	"github.com/premiumstore/storefront/internal/storage"
)

const StorageKey = "premium-store-wishlist"

type Store struct {
	backend storage.Backend
	key     string
}

func NewStore(backend storage.Backend) *Store {
	return &Store{backend: backend, key: StorageKey}
}

// Items returns the saved set; absent or corrupt storage degrades silently to
// an empty wishlist.
func (s *Store) Items() []catalog.Product {
	raw, ok := s.backend.Get(s.key)
	if !ok {
		return []catalog.Product{}
	}
	var items []catalog.Product
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []catalog.Product{}
	}
	if items == nil {
		items = []catalog.Product{}
	}
	return items
}

// Toggle removes the product when present (isAdded=false) and appends it when
// absent (isAdded=true). This is the mutation the catalog view uses.
func (s *Store) Toggle(p catalog.Product) (items []catalog.Product, isAdded bool) {
	items = s.Items()
	for i := range items {
		if items[i].ID == p.ID {
			items = append(items[:i], items[i+1:]...)
			s.save(items)
			return items, false
		}
	}
	items = append(items, p)
	s.save(items)
	return items, true
}

// Add appends the product if not already saved.
func (s *Store) Add(p catalog.Product) []catalog.Product {
	items := s.Items()
	for i := range items {
		if items[i].ID == p.ID {
			return items
		}
	}
	items = append(items, p)
	s.save(items)
	return items
}

// Remove drops the product; absent ids are a no-op.
func (s *Store) Remove(productID int) []catalog.Product {
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

func (s *Store) save(items []catalog.Product) {
	b, err := json.Marshal(items)
	if err != nil {
		log.Printf("[wishlist] marshal failed: %v", err)
		return
	}
	if err := s.backend.Set(s.key, string(b)); err != nil {
		log.Printf("[wishlist] persist failed: %v", err)
	}
}
