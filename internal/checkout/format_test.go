package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCardNumber(t *testing.T) {
	cases := []struct{ in, want string }{
		{"4242424242424242", "4242 4242 4242 4242"},
		{"4242 4242 4242 4242", "4242 4242 4242 4242"},
		{"4242-4242", "4242 4242"},
		{"42424242424242429999", "4242 4242 4242 4242"}, // capped at 16 digits
		{"123", "123"},
		{"", ""},
		{"abc", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatCardNumber(c.in), "input %q", c.in)
	}
}

func TestFormatExpiry(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1", "1"},
		{"12", "12/"},
		{"122", "12/2"},
		{"1229", "12/29"},
		{"12/29", "12/29"},
		{"122999", "12/29"}, // capped at four digits
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatExpiry(c.in), "input %q", c.in)
	}
}
