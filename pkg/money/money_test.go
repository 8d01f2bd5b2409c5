package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinor(t *testing.T) {
	tests := []struct {
		name    string
		display float64
		want    int64
	}{
		{name: "whole amount", display: 150, want: 15000},
		{name: "two decimals", display: 25750.50, want: 2575050},
		{name: "zero", display: 0, want: 0},
		{name: "rounds half up", display: 0.005, want: 1},
		{name: "float noise", display: 19.99, want: 1999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToMinor(tt.display))
		})
	}
}

func TestFromMinor(t *testing.T) {
	assert.Equal(t, 150.0, FromMinor(15000))
	assert.Equal(t, 0.01, FromMinor(1))
	assert.Equal(t, 0.0, FromMinor(0))
}

func TestRoundTrip(t *testing.T) {
	for _, display := range []float64{0, 0.01, 1, 99.99, 25750.50, 1000000} {
		assert.Equal(t, display, FromMinor(ToMinor(display)))
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "150.00", Format(150))
	assert.Equal(t, "25750.50", Format(25750.5))
	assert.Equal(t, "0.00", Format(0))
}
