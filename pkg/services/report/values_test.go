package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.234, 1.23},
		{0.125, 0.13},
		{-0.125, -0.13},
		{66.666666, 66.67},
		{450.0, 450.0},
		{1e18, 1e18},
		{-1e18, -1e18},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, round2(tc.in), "round2(%v)", tc.in)
	}
}
