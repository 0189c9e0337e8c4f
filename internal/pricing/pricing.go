// Package pricing derives the order totals from a cart snapshot. Pure
// functions over decimals; nothing here mutates the cart.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/premiumstore/storefront/internal/cart"
)

var (
	// FreeShippingThreshold: orders strictly above this subtotal ship free.
	// A subtotal of exactly 100.00 still pays the flat fee.
	FreeShippingThreshold = decimal.NewFromInt(100)
	FlatShippingFee       = decimal.NewFromInt(15)
	TaxRate               = decimal.NewFromFloat(0.08)
)

// Summary is the monetary breakdown of a cart snapshot.
type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func Calculate(items []cart.Item) Summary {
	subtotal := cart.Total(items)

	shipping := FlatShippingFee
	if subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(TaxRate)

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// Display holds the summary formatted for rendering, two decimal places with
// a leading dollar sign.
type Display struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

func (s Summary) Display() Display {
	return Display{
		Subtotal: Format(s.Subtotal),
		Shipping: Format(s.Shipping),
		Tax:      Format(s.Tax),
		Total:    Format(s.Total),
	}
}

func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
