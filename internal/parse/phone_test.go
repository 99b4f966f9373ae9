package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optimode/contactkit/internal/parse"
)

func TestDigits(t *testing.T) {
	tests := map[string]string{
		"054-123-4567":    "0541234567",
		"+972 54 1234567": "972541234567",
		"(212) 555-0100":  "2125550100",
		"abc":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, parse.Digits(in), in)
	}
}

func TestDialable(t *testing.T) {
	assert.Equal(t, "+972541234567", parse.Dialable(" +972-54-123-4567"))
	assert.Equal(t, "0541234567", parse.Dialable("054 123 4567"))
	assert.Equal(t, "0541234567", parse.Dialable("05+41234567"))
	assert.Equal(t, "00447400123456", parse.Dialable("0044 7400 123456"))
}

func TestRegion(t *testing.T) {
	assert.Equal(t, "IL", parse.Region(" il "))
}
