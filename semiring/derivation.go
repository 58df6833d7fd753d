package semiring

import (
	"sort"
	"strings"
)

// Derivation is the semiring of sets of derivation signatures, used by
// wcfg to track the distinct parses (not just their count or best weight)
// that produce a given nonterminal span. A signature is any caller-chosen
// string identifying one derivation (e.g. a bracketed production trace);
// Add unions two derivation sets, Mul combines every pair of signatures
// from each side by concatenation, mirroring how combining two subtrees'
// derivation sets yields every derivation of the combined tree.
type Derivation struct {
	sigs map[string]struct{}
}

// Sig builds a Derivation containing exactly the given signatures.
func Sig(signatures ...string) Derivation {
	d := Derivation{sigs: make(map[string]struct{}, len(signatures))}
	for _, s := range signatures {
		d.sigs[s] = struct{}{}
	}
	return d
}

func (d Derivation) Zero() Derivation { return Derivation{sigs: map[string]struct{}{}} }
func (d Derivation) One() Derivation  { return Sig("") }

func (d Derivation) Add(other Derivation) Derivation {
	out := make(map[string]struct{}, len(d.sigs)+len(other.sigs))
	for s := range d.sigs {
		out[s] = struct{}{}
	}
	for s := range other.sigs {
		out[s] = struct{}{}
	}
	return Derivation{sigs: out}
}

func (d Derivation) Mul(other Derivation) Derivation {
	out := make(map[string]struct{}, len(d.sigs)*len(other.sigs))
	for a := range d.sigs {
		for b := range other.sigs {
			out[a+b] = struct{}{}
		}
	}
	return Derivation{sigs: out}
}

func (d Derivation) Equal(other Derivation) bool {
	if len(d.sigs) != len(other.sigs) {
		return false
	}
	for s := range d.sigs {
		if _, ok := other.sigs[s]; !ok {
			return false
		}
	}
	return true
}

// Idempotent holds because set union of a set with itself is itself.
func (d Derivation) Idempotent() bool { return true }

// Superior does not hold in general: the union of two nonempty disjoint
// sets is neither set.
func (d Derivation) Superior() bool { return false }

// Signatures returns the derivation signatures in sorted order.
func (d Derivation) Signatures() []string {
	out := make([]string, 0, len(d.sigs))
	for s := range d.sigs {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Len reports how many distinct derivations this element carries.
func (d Derivation) Len() int { return len(d.sigs) }

func (d Derivation) String() string {
	return "{" + strings.Join(d.Signatures(), ", ") + "}"
}
