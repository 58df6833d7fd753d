package semiring

// Boolean is the semiring of truth values under ∨ (Add) and ∧ (Mul),
// identity false and true respectively. It is both idempotent and
// superior: false ⊕ true ∈ {false, true}, ordered false < true.
type Boolean bool

func (b Boolean) Zero() Boolean { return Boolean(false) }
func (b Boolean) One() Boolean  { return Boolean(true) }

func (b Boolean) Add(other Boolean) Boolean { return b || other }
func (b Boolean) Mul(other Boolean) Boolean { return b && other }

func (b Boolean) Equal(other Boolean) bool { return b == other }

func (b Boolean) Idempotent() bool { return true }
func (b Boolean) Superior() bool   { return true }

// Star is always One: star(a) = one ⊕ a ⊗ star(a) holds for both truth
// values since one is absorbing under ∨.
func (b Boolean) Star() (Boolean, error) { return true, nil }

// Less orders false before true, the order under which a ⊕ b ∈ {a, b}.
func (b Boolean) Less(other Boolean) bool { return !bool(b) && bool(other) }

func (b Boolean) String() string {
	if b {
		return "T"
	}
	return "F"
}
