package semiring

import (
	"fmt"
	"math"
)

// Tropical is the (min, +) semiring used for shortest-distance problems:
// Add is math.Min, Mul is ordinary addition, Zero is +∞ (the identity
// under Add and the annihilator under Mul — "no path" is longer than any
// path), One is 0 (the empty path). It is both idempotent (min(a, a) = a) and superior (min(a, b) is
// always one of a or b, ordered by the usual real order), which is exactly
// what lets Dijkstra and Bellman-Ford/Johnson apply to it.
type Tropical float64

func (t Tropical) Zero() Tropical { return Tropical(math.Inf(1)) }
func (t Tropical) One() Tropical  { return 0 }

func (t Tropical) Add(other Tropical) Tropical { return Tropical(math.Min(float64(t), float64(other))) }
func (t Tropical) Mul(other Tropical) Tropical { return t + other }

func (t Tropical) Equal(other Tropical) bool { return t == other }

func (t Tropical) Idempotent() bool { return true }
func (t Tropical) Superior() bool   { return true }

// Star follows the defining fixed point star(a) = one ⊕ a ⊗ star(a), i.e.
// min(0, a + star(a)). For a ≥ 0 the minimal solution is the identity, 0:
// a self-loop that only ever lengthens a path can never beat taking it zero
// times. For a < 0 the loop strictly improves every time it is taken, so
// the sum diverges to -∞ and the closure does not converge.
func (t Tropical) Star() (Tropical, error) {
	if t < 0 {
		return 0, fmt.Errorf("tropical(%v).star: %w", float64(t), ErrDivergentClosure)
	}
	return 0, nil
}

// Inv negates the weight: a ⊗ ~a = a + (-a) = 0 = one.
func (t Tropical) Inv() (Tropical, error) { return -t, nil }

// Less is the usual real order, under which min(a, b) ∈ {a, b}.
func (t Tropical) Less(other Tropical) bool { return t < other }

func (t Tropical) String() string {
	if math.IsInf(float64(t), 1) {
		return "∞"
	}
	return fmt.Sprintf("%g", float64(t))
}
