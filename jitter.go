package orderkey

import "math/rand"

// Jitter interface for testability (use math/rand.Rand).
type Jitter interface {
	// Uniform integer in [min, max], inclusive.
	IntnRange(min, max int) int
}

// NoJitter implements Jitter but returns 0 offset. Keys generated with it
// are identical to the ones from KeyBetween.
type NoJitter struct{}

func (NoJitter) IntnRange(min, max int) int { return 0 }

// RandJitter is a helper backed by *rand.Rand.
type RandJitter struct{ R *rand.Rand }

func (j RandJitter) IntnRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + j.R.Intn(max-min+1)
}

// KeyBetweenJitter picks a key strictly between a and b, with randomization.
// This provides collision resistance when multiple writers generate keys
// between the same (a,b) at the same time.
//
// spread is the maximum distance, in digit steps, between the chosen digit
// and the deterministic midpoint digit. A spread of 0 disables jitter.
func KeyBetweenJitter(a, b string, j Jitter, spread int) (string, error) {
	return Base62.KeyBetweenJitter(a, b, j, spread)
}

// NKeysBetweenJitter generates n keys between a and b with randomization.
// This provides collision resistance when multiple writers generate keys
// between the same (a,b) at the same time.
func NKeysBetweenJitter(a, b string, n uint, j Jitter, spread int) ([]string, error) {
	return Base62.NKeysBetweenJitter(a, b, n, j, spread)
}

// KeyBetweenJitter is the package-level KeyBetweenJitter over al.
func (al Alphabet) KeyBetweenJitter(a, b string, j Jitter, spread int) (string, error) {
	return al.keyBetween(a, b, picker{j: j, spread: spread})
}

// NKeysBetweenJitter is the package-level NKeysBetweenJitter over al.
func (al Alphabet) NKeysBetweenJitter(a, b string, n uint, j Jitter, spread int) ([]string, error) {
	return al.nKeysBetween(a, b, n, picker{j: j, spread: spread})
}
