package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/premiumstore/storefront/internal/cart"
	"github.com/premiumstore/storefront/internal/catalog"
)

func lineItem(price string, qty int) cart.Item {
	return cart.Item{Product: catalog.Product{ID: qty, Price: price}, Quantity: qty}
}

func TestCalculate_FreeShippingBoundary(t *testing.T) {
	// exactly 100.00 still pays the flat fee; the comparison is strict >
	at := Calculate([]cart.Item{lineItem("$100.00", 1)})
	assert.Equal(t, "$15.00", Format(at.Shipping))

	above := Calculate([]cart.Item{lineItem("$100.01", 1)})
	assert.Equal(t, "$0.00", Format(above.Shipping))
}

func TestCalculate_Tax(t *testing.T) {
	s := Calculate([]cart.Item{lineItem("$50.00", 1)})
	assert.Equal(t, "$4.00", Format(s.Tax))
}

func TestCalculate_GrandTotal(t *testing.T) {
	// subtotal 50.00, shipping 15, tax 4.00
	s := Calculate([]cart.Item{lineItem("$50.00", 1)})
	d := s.Display()
	assert.Equal(t, "$50.00", d.Subtotal)
	assert.Equal(t, "$15.00", d.Shipping)
	assert.Equal(t, "$4.00", d.Tax)
	assert.Equal(t, "$69.00", d.Total)
}

func TestCalculate_EmptyCart(t *testing.T) {
	d := Calculate(nil).Display()
	assert.Equal(t, "$0.00", d.Subtotal)
	assert.Equal(t, "$15.00", d.Shipping)
	assert.Equal(t, "$0.00", d.Tax)
	assert.Equal(t, "$15.00", d.Total)
}

func TestCalculate_ThousandsSeparator(t *testing.T) {
	s := Calculate([]cart.Item{
		lineItem("$10.00", 2),
		lineItem("$1,250.50", 1),
	})
	assert.Equal(t, "$1270.50", Format(s.Subtotal))
	assert.Equal(t, "$0.00", Format(s.Shipping))
}
