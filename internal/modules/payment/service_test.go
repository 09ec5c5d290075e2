package payment

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulator_RejectsInvalidCardInput(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(1)), nil)
	ctx := context.Background()

	cases := []struct {
		name string
		card string
		cvv  string
	}{
		{"card too short", "123456781234567", "123"},
		{"card too long", "12345678123456789", "123"},
		{"card with letters", "123456781234567a", "123"},
		{"cvv too short", "1234567812345678", "12"},
		{"cvv too long", "1234567812345678", "1234"},
		{"cvv with letters", "1234567812345678", "12x"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// invalid input is rejected before the random draw, so it must
			// fail every time
			for i := 0; i < 20; i++ {
				assert.False(t, sim.Attempt(ctx, tc.card, tc.cvv, 7500))
			}
		})
	}
}

func TestSimulator_ApprovesRoughlyNineInTen(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(42)), nil)
	ctx := context.Background()

	const trials = 1000
	approved := 0
	for i := 0; i < trials; i++ {
		if sim.Attempt(ctx, "1234567812345678", "123", 2500) {
			approved++
		}
	}

	// binomial(1000, 0.9) stays well inside this band
	assert.Greater(t, approved, 850)
	assert.Less(t, approved, 950)
}

func TestSimulator_SeededSourceIsDeterministic(t *testing.T) {
	ctx := context.Background()

	run := func() []bool {
		sim := NewSimulator(rand.New(rand.NewSource(7)), nil)
		out := make([]bool, 0, 50)
		for i := 0; i < 50; i++ {
			out = append(out, sim.Attempt(ctx, "1234567812345678", "123", 100))
		}
		return out
	}

	assert.Equal(t, run(), run())
}
