// Package catalog provides the product model, the in-memory catalog source and
// the filter/sort/search pipeline of the storefront.
package catalog

import "time"

type Product struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Price is kept as a display string ("$249.99", "$2,499.99") and parsed
	// on demand; ParsePrice is the single place that understands the format.
	Price          string            `json:"price"`
	OriginalPrice  string            `json:"originalPrice,omitempty"`
	Discount       int               `json:"discount,omitempty"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	InStock        bool              `json:"inStock"`
	StockCount     int               `json:"stockCount"`
	SaleTag        bool              `json:"saleTag,omitempty"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

// ListResponse is the envelope returned by GET /api/products.
// swagger:model
type ListResponse struct {
	Success   bool      `json:"success"`
	Data      []Product `json:"data"`
	Total     int       `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the envelope returned on a failed catalog query.
// swagger:model
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}
