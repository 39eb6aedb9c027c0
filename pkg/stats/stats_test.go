package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 11.0, Mean([]float64{10, 11, 12}))
	assert.Equal(t, 5.0, Mean([]float64{5}))
	assert.Zero(t, Mean(nil))
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{10.666666, 10.67},
		{10.664, 10.66},
		{42.0, 42.0},
		{0, 0},
		{-1.238, -1.24},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in))
	}
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{3, 1, 4, 1, 5})
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 5.0, max)

	min, max = MinMax(nil)
	assert.Zero(t, min)
	assert.Zero(t, max)
}
