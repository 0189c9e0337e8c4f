// Package view holds the catalog view controller: it owns the filter state,
// re-fetches on filter changes, debounces search input and applies the
// client-side free-text filter to the fetched list.
package view

import (
	"context"
	"sync"
	"time"

	"github.com/premiumstore/storefront/internal/catalog"
)

// Lister is the slice of the catalog client the view needs.
type Lister interface {
	List(ctx context.Context, q catalog.Query) ([]catalog.Product, error)
}

// FilterState mirrors the controls of the catalog page.
type FilterState struct {
	Category string
	InStock  bool
	Sort     string
	Search   string
}

// Snapshot is what the view publishes after each fetch settles.
type Snapshot struct {
	Products []catalog.Product
	Err      error
	Loading  bool
}

// Catalog re-fetches immediately when category, stock or sort change and after
// a quiet period when search changes. Each fetch carries a sequence number;
// a response that lands after a newer fetch started is discarded.
type Catalog struct {
	mu       sync.Mutex
	client   Lister
	filters  FilterState
	snapshot Snapshot

	debounce      time.Duration
	debounceTimer *time.Timer

	seq     uint64 // last fetch started
	applied uint64 // last fetch whose result was published

	// fetchDone is signalled after every settled fetch; tests use it to wait
	fetchDone chan struct{}
}

func NewCatalog(client Lister, debounce time.Duration) *Catalog {
	return &Catalog{
		client:    client,
		filters:   FilterState{Category: "all"},
		debounce:  debounce,
		fetchDone: make(chan struct{}, 16),
	}
}

func (c *Catalog) Filters() FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

func (c *Catalog) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := c.snapshot
	snap.Products = append([]catalog.Product(nil), snap.Products...)
	return snap
}

// Done reports fetch completions, one receive per settled fetch (including
// discarded ones).
func (c *Catalog) Done() <-chan struct{} { return c.fetchDone }

func (c *Catalog) SetCategory(category string) {
	c.mu.Lock()
	c.filters.Category = category
	c.mu.Unlock()
	c.Fetch()
}

func (c *Catalog) SetInStock(only bool) {
	c.mu.Lock()
	c.filters.InStock = only
	c.mu.Unlock()
	c.Fetch()
}

func (c *Catalog) SetSort(sortKey string) {
	c.mu.Lock()
	c.filters.Sort = sortKey
	c.mu.Unlock()
	c.Fetch()
}

// SetSearch updates the search term and schedules a fetch once input has been
// quiescent for the debounce interval. Each call resets the timer, so only the
// most recent term is fetched.
func (c *Catalog) SetSearch(term string) {
	c.mu.Lock()
	c.filters.Search = term
	if c.debounceTimer != nil {
		c.debounceTimer.Stop()
	}
	if c.debounce <= 0 {
		c.mu.Unlock()
		c.Fetch()
		return
	}
	c.debounceTimer = time.AfterFunc(c.debounce, c.Fetch)
	c.mu.Unlock()
}

// ClearFilters resets everything to the defaults and re-fetches.
func (c *Catalog) ClearFilters() {
	c.mu.Lock()
	c.filters = FilterState{Category: "all"}
	if c.debounceTimer != nil {
		c.debounceTimer.Stop()
	}
	c.mu.Unlock()
	c.Fetch()
}

// Retry re-runs the fetch after a failure. Same full invocation, no backoff.
func (c *Catalog) Retry() { c.Fetch() }

// Fetch starts an asynchronous catalog fetch with the current filters.
func (c *Catalog) Fetch() {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	q := catalog.Query{Category: c.filters.Category, InStock: c.filters.InStock, Sort: c.filters.Sort}
	search := c.filters.Search
	c.snapshot.Loading = true
	c.mu.Unlock()

	go func() {
		products, err := c.client.List(context.Background(), q)

		c.mu.Lock()
		defer func() {
			c.mu.Unlock()
			select {
			case c.fetchDone <- struct{}{}:
			default:
			}
		}()

		// stale response: a newer fetch has been applied or is in flight
		if seq < c.seq || seq <= c.applied {
			return
		}
		c.applied = seq
		c.snapshot.Loading = false
		if err != nil {
			c.snapshot.Err = err
			c.snapshot.Products = nil
			return
		}
		c.snapshot.Err = nil
		c.snapshot.Products = catalog.Search(products, search)
	}()
}
