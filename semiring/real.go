package semiring

import (
	"fmt"
	"math"
)

// Real is the probability semiring: ordinary addition and multiplication
// over float64, identities 0 and 1. It is neither idempotent nor superior,
// so neither Dijkstra nor Bellman-Ford/Johnson apply to it; use Viterbi on
// acyclic inputs or Lehmann's closure otherwise.
type Real float64

func (r Real) Zero() Real { return 0 }
func (r Real) One() Real  { return 1 }

func (r Real) Add(other Real) Real { return r + other }
func (r Real) Mul(other Real) Real { return r * other }

func (r Real) Equal(other Real) bool { return r == other }

func (r Real) Idempotent() bool { return false }
func (r Real) Superior() bool   { return false }

// Star computes 1/(1-a) for |a| < 1, the closed-form sum of the geometric
// series 1 + a + a² + .... Outside that radius the series diverges.
func (r Real) Star() (Real, error) {
	if math.Abs(float64(r)) >= 1 {
		return 0, fmt.Errorf("real(%v).star: %w", float64(r), ErrDivergentClosure)
	}
	return 1 / (1 - r), nil
}

// Inv computes 1/a; zero has no inverse.
func (r Real) Inv() (Real, error) {
	if r == 0 {
		return 0, fmt.Errorf("real(0).inv: %w", ErrNotInvertible)
	}
	return 1 / r, nil
}

func (r Real) String() string { return fmt.Sprintf("%g", float64(r)) }
