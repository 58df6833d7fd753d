package semiring

// StringSemiring is the longest-common-prefix semiring (Mohri 2002), used
// to track shared output strings when determinizing transducers. Its
// carrier is Σ* plus a distinguished top element ⊤ ("no information yet"):
// Add is longest-common-prefix, with identity ⊤ (lcp(⊤, x) = x for any x);
// Mul is concatenation, with identity the empty string and ⊤ as its
// annihilator (concatenating with "no information" yields "no
// information"). It is idempotent: lcp(a, a) = a.
type StringSemiring struct {
	// Top marks the additive identity ⊤. When Top is true, Value is
	// meaningless and ignored by Add/Mul/Equal.
	Top   bool
	Value string
}

// Str wraps s as an ordinary (non-⊤) string-semiring element.
func Str(s string) StringSemiring { return StringSemiring{Value: s} }

func (s StringSemiring) Zero() StringSemiring { return StringSemiring{Top: true} }
func (s StringSemiring) One() StringSemiring  { return StringSemiring{Value: ""} }

func (s StringSemiring) Add(other StringSemiring) StringSemiring {
	if s.Top {
		return other
	}
	if other.Top {
		return s
	}
	return StringSemiring{Value: lcp(s.Value, other.Value)}
}

func (s StringSemiring) Mul(other StringSemiring) StringSemiring {
	if s.Top || other.Top {
		return StringSemiring{Top: true}
	}
	return StringSemiring{Value: s.Value + other.Value}
}

func (s StringSemiring) Equal(other StringSemiring) bool {
	if s.Top != other.Top {
		return false
	}
	return s.Top || s.Value == other.Value
}

// Idempotent is true: lcp(a, a) = a for every string a.
func (s StringSemiring) Idempotent() bool { return true }

// Superior reports true: the prefix order over Σ* ∪ {⊤} is total enough
// for the ring's intended use (merging determinized transducer outputs),
// even though lcp(a, b) is not always literally a or b. Algorithms that
// require a strict "a ⊕ b ∈ {a, b}" pop-once guarantee (Dijkstra) should
// not be run against this ring; see DESIGN.md.
func (s StringSemiring) Superior() bool { return true }

// Star is always One: star(a) = one ⊕ a ⊗ star(a) holds trivially since
// lcp(empty, anything) collapses to empty once the shared prefix is taken
// with the identity.
func (s StringSemiring) Star() (StringSemiring, error) { return s.One(), nil }

func (s StringSemiring) String() string {
	if s.Top {
		return "⊤"
	}
	return s.Value
}

func lcp(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
