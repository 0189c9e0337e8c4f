package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Sort keys accepted by Query.Sort. Anything else preserves source order.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

type Query struct {
	// Category filters by case-insensitive equality; "all" or empty bypasses.
	Category string
	// InStock keeps only in-stock products when true.
	InStock bool
	Sort    string
}

type Repository interface {
	List(ctx context.Context, q Query) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
}

// MemRepo serves the built-in mock catalog. It never mutates its seed slice;
// List always returns a fresh copy.
type MemRepo struct{ products []Product }

func NewMemRepo(products []Product) *MemRepo {
	if products == nil {
		products = SeedProducts()
	}
	return &MemRepo{products: products}
}

func (r *MemRepo) List(ctx context.Context, q Query) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if !matchCategory(p, q.Category) {
			continue
		}
		if q.InStock && !p.InStock {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, q.Sort)
	return out, nil
}

func (r *MemRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range r.products {
		if r.products[i].ID == id {
			cp := r.products[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func matchCategory(p Product, category string) bool {
	if category == "" || strings.EqualFold(category, "all") {
		return true
	}
	return strings.EqualFold(p.Category, category)
}

func sortProducts(products []Product, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return ParsePrice(products[i].Price).LessThan(ParsePrice(products[j].Price))
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return ParsePrice(products[j].Price).LessThan(ParsePrice(products[i].Price))
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}

// ParsePrice converts a display price ("$1,250.50") to a decimal amount.
// An unparsable price yields zero; the stores treat that as a degraded line
// rather than an error.
func ParsePrice(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
