package catalog

import "strings"

// Search applies the free-text filter the storefront runs after a fetch:
// case-insensitive substring match over title, description and brand.
// An empty term matches everything.
func Search(products []Product, term string) []Product {
	if term == "" {
		return products
	}
	needle := strings.ToLower(term)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(p.Brand), needle) {
			out = append(out, p)
		}
	}
	return out
}
