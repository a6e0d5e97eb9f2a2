package fa

import (
	"fmt"
	"strings"
)

// Determinize builds an equivalent DFA design by subset construction over
// the rulebook alphabet. Every DFA state stands for one free-move-closed set
// of NFA states; the empty set gets no state, so the result is partial and
// a missing transition rejects. The design is not minimized.
func (d *NFADesign) Determinize(alloc *Allocator) *DFADesign {
	if alloc == nil {
		alloc = NewAllocator()
	}
	alphabet := d.rulebook.Alphabet()

	key := func(set StateSet) string {
		var b strings.Builder
		for _, st := range set.Sorted() {
			fmt.Fprintf(&b, "%d,", uint64(st))
		}
		return b.String()
	}

	initial := d.rulebook.FollowFreeMoves(NewStateSet(d.start))
	start := alloc.New()
	ids := map[string]State{key(initial): start}
	var accept []State
	if initial.Intersects(d.accept) {
		accept = append(accept, start)
	}

	var rules []Rule
	queue := []StateSet{initial}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		from := ids[key(cur)]
		for _, sym := range alphabet {
			moved := d.rulebook.NextStates(cur, sym)
			if moved.Len() == 0 {
				continue
			}
			closed := d.rulebook.FollowFreeMoves(moved)
			k := key(closed)
			to, seen := ids[k]
			if !seen {
				to = alloc.New()
				ids[k] = to
				if closed.Intersects(d.accept) {
					accept = append(accept, to)
				}
				queue = append(queue, closed)
			}
			rules = append(rules, NewRule(from, sym, to))
		}
	}
	return NewDFADesign(start, accept, NewRulebook(rules...))
}
