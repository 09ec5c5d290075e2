package payment

import (
	"context"
	"math/rand"
	"regexp"
	"time"
)

var (
	cardPattern = regexp.MustCompile(`^[0-9]{16}$`)
	cvvPattern  = regexp.MustCompile(`^[0-9]{3}$`)
)

// Simulator stands in for a real payment gateway. Booking only sees the
// boolean outcome through its gateway interface, so swapping in a real
// integration does not touch booking logic.
type Simulator struct {
	rng     *rand.Rand
	loggerf func(format string, args ...interface{})
}

// NewSimulator builds a simulator on the given random source. Pass a seeded
// source in tests for deterministic outcomes; nil falls back to a
// time-seeded one.
func NewSimulator(rng *rand.Rand, loggerf func(format string, args ...interface{})) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Simulator{rng: rng, loggerf: loggerf}
}

// Attempt charges the amount against the fake card. The card number must be
// exactly 16 digits and the CVV exactly 3; anything else is rejected before
// the charge is tried. Valid input is approved nine times out of ten.
func (s *Simulator) Attempt(ctx context.Context, cardNumber, cvv string, amount float64) bool {
	if !cardPattern.MatchString(cardNumber) || !cvvPattern.MatchString(cvv) {
		s.loggerf("level=info msg=payment rejected reason=invalid_card amount=%.2f", amount)
		return false
	}
	approved := s.rng.Intn(10) != 0
	s.loggerf("level=info msg=payment attempt amount=%.2f approved=%t", amount, approved)
	return approved
}
