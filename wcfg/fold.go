package wcfg

import (
	"fmt"
	"sort"

	"github.com/arnouk/ratalg/semiring"
)

// Interval is an inclusive index range [From, To] over a production body,
// used by Fold to name the spans to collapse into fresh nonterminals.
type Interval struct {
	From, To int
}

// Fold replaces the production at index in g with a rewritten body: every
// interval in intervals is collapsed into a single fresh nonterminal H,
// with a new production H -> body[From:To+1], weight One added alongside,
// and the folded production's own weight set to w. Used as the inner step
// of binarization (collapsing adjacent symbols two at a time), but usable
// standalone. Intervals must be within the body's bounds, non-overlapping,
// and are processed in ascending order regardless of the order given.
func Fold[T semiring.Semiring[T]](tr *Transformer, g *Grammar[T], index int, w T, intervals []Interval) (*Grammar[T], error) {
	prods := g.Productions()
	if index < 0 || index >= len(prods) {
		return nil, fmt.Errorf("wcfg: fold: index %d: %w", index, ErrProductionNotFound)
	}
	p := prods[index]

	sorted := append([]Interval(nil), intervals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })

	prevEnd := -1
	for _, iv := range sorted {
		if iv.From < 0 || iv.To < iv.From || iv.To >= len(p.Body) {
			return nil, fmt.Errorf("wcfg: fold: interval [%d,%d]: %w", iv.From, iv.To, ErrInvalidFoldInterval)
		}
		if iv.From <= prevEnd {
			return nil, fmt.Errorf("wcfg: fold: overlapping interval at %d: %w", iv.From, ErrInvalidFoldInterval)
		}
		prevEnd = iv.To
	}

	ncfg := g.Spawn()
	for i, q := range prods {
		if i != index {
			ncfg.Add(q.Weight, q.Head, q.Body...)
		}
	}

	var z T
	one := z.One()

	heads := make([]NT, len(sorted))
	for i, iv := range sorted {
		head := tr.genNT()
		heads[i] = head
		ncfg.Add(one, head, append(Body(nil), p.Body[iv.From:iv.To+1]...)...)
	}

	var newBody Body
	start := 0
	for i, iv := range sorted {
		newBody = append(newBody, p.Body[start:iv.From]...)
		newBody = append(newBody, NTElem(heads[i]))
		start = iv.To + 1
	}
	newBody = append(newBody, p.Body[start:]...)
	ncfg.Add(w, p.Head, newBody...)

	return ncfg, nil
}
