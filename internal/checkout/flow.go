// Package checkout implements the three-step checkout flow: shipping, payment,
// review. Progression is gated on field presence; placing the order clears the
// cart.
package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/premiumstore/storefront/internal/cart"
	"github.com/premiumstore/storefront/internal/pricing"
)

const (
	StepShipping = 1
	StepPayment  = 2
	StepReview   = 3
)

var (
	ErrShippingIncomplete = errors.New("please fill in all shipping information")
	ErrPaymentIncomplete  = errors.New("please fill in all payment information")
	ErrAtReview           = errors.New("already at review, place the order")
	ErrNotAtReview        = errors.New("complete shipping and payment before placing the order")
	ErrProcessing         = errors.New("order is already being processed")
	ErrEmptyCart          = errors.New("cart is empty")
)

type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

type PaymentInfo struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	NameOnCard string `json:"nameOnCard"`
}

// Order is the receipt returned once the simulated submission completes.
type Order struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Items     []cart.Item     `json:"items"`
	Pricing   pricing.Display `json:"pricing"`
	Shipping  ShippingInfo    `json:"shipping"`
	CreatedAt time.Time       `json:"created_at"`
}

// Flow is the checkout state machine for one session. It reads cart snapshots
// through the store but never mutates them except to clear on success.
type Flow struct {
	mu         sync.Mutex
	cart       *cart.Store
	step       int
	shipping   ShippingInfo
	payment    PaymentInfo
	processing bool

	// simulated payment-processing delay; zero in tests
	processDelay time.Duration
}

func NewFlow(cartStore *cart.Store, processDelay time.Duration) *Flow {
	return &Flow{
		cart:         cartStore,
		step:         StepShipping,
		shipping:     ShippingInfo{Country: "US"},
		processDelay: processDelay,
	}
}

func (f *Flow) Step() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *Flow) Processing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.processing
}

func (f *Flow) SetShipping(info ShippingInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if info.Country == "" {
		info.Country = "US"
	}
	f.shipping = info
}

func (f *Flow) SetPayment(info PaymentInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payment = info
}

// Next advances one step when the current step validates. On failure the step
// is unchanged and the validation error is returned for the caller to surface.
func (f *Flow) Next() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.step {
	case StepShipping:
		if !f.shipping.valid() {
			return ErrShippingIncomplete
		}
	case StepPayment:
		if !f.payment.valid() {
			return ErrPaymentIncomplete
		}
	case StepReview:
		return ErrAtReview
	}
	f.step++
	return nil
}

// Prev steps back, floored at shipping.
func (f *Flow) Prev() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step > StepShipping {
		f.step--
	}
}

// GuardCart reports whether the caller should be redirected out of checkout.
// Evaluated whenever the cart snapshot changes during an active session.
func (f *Flow) GuardCart() bool {
	return len(f.cart.Items()) == 0 && !f.Processing()
}

// PlaceOrder runs the simulated submission, clears the cart on success and
// returns the receipt. The flow resets to the shipping step afterwards.
func (f *Flow) PlaceOrder(ctx context.Context) (*Order, error) {
	f.mu.Lock()
	if f.processing {
		f.mu.Unlock()
		return nil, ErrProcessing
	}
	items := f.cart.Items()
	if len(items) == 0 {
		f.mu.Unlock()
		return nil, ErrEmptyCart
	}
	// the review step is only reachable through validated Next calls, so
	// requiring it here keeps unvalidated orders out
	if f.step != StepReview {
		f.mu.Unlock()
		return nil, ErrNotAtReview
	}
	f.processing = true
	shipping := f.shipping
	delay := f.processDelay
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.processing = false
		f.mu.Unlock()
	}()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	order := &Order{
		ID:        uuid.NewString(),
		Status:    "confirmed",
		Items:     items,
		Pricing:   pricing.Calculate(items).Display(),
		Shipping:  shipping,
		CreatedAt: time.Now().UTC(),
	}

	f.cart.Clear()

	f.mu.Lock()
	f.step = StepShipping
	f.shipping = ShippingInfo{Country: "US"}
	f.payment = PaymentInfo{}
	f.mu.Unlock()

	return order, nil
}

func (s ShippingInfo) valid() bool {
	required := []string{s.FirstName, s.LastName, s.Email, s.Address, s.City, s.State, s.ZipCode}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func (p PaymentInfo) valid() bool {
	for _, v := range []string{p.CardNumber, p.ExpiryDate, p.CVV, p.NameOnCard} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
