package fa

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrFreeMove reports a free move in a rulebook that must not have one.
	ErrFreeMove = errors.New("free move in deterministic rulebook")
	// ErrNondeterministic reports two rules for the same state and symbol.
	ErrNondeterministic = errors.New("more than one rule for state and symbol")
)

// Rulebook is an immutable, ordered collection of rules.
type Rulebook struct {
	rules []Rule
}

// NewRulebook copies rules, so later changes to the caller's slice are not
// observed.
func NewRulebook(rules ...Rule) *Rulebook {
	return &Rulebook{rules: append([]Rule(nil), rules...)}
}

func (rb *Rulebook) Rules() []Rule { return append([]Rule(nil), rb.rules...) }

func (rb *Rulebook) Len() int { return len(rb.rules) }

// RulesFor returns every rule leaving state on symbol, in rulebook order.
func (rb *Rulebook) RulesFor(state State, symbol rune) []Rule {
	var out []Rule
	for _, r := range rb.rules {
		if r.AppliesTo(state, symbol) {
			out = append(out, r)
		}
	}
	return out
}

// RuleFor returns the first rule leaving state on symbol.
func (rb *Rulebook) RuleFor(state State, symbol rune) (Rule, bool) {
	for _, r := range rb.rules {
		if r.AppliesTo(state, symbol) {
			return r, true
		}
	}
	return Rule{}, false
}

func (rb *Rulebook) HasFreeMoves(state State) bool {
	_, ok := rb.RuleFor(state, FreeMove)
	return ok
}

// NextStates is the set of states reachable from any member of states by
// exactly one rule on symbol.
func (rb *Rulebook) NextStates(states StateSet, symbol rune) StateSet {
	next := NewStateSet()
	for _, r := range rb.rules {
		if r.Symbol == symbol && states.Contains(r.From) {
			next.Add(r.Follow())
		}
	}
	return next
}

// FollowFreeMoves returns the smallest superset of states closed under free
// moves. The set only grows and the rulebook names finitely many states, so
// the loop terminates.
func (rb *Rulebook) FollowFreeMoves(states StateSet) StateSet {
	closed := states.Clone()
	for {
		more := rb.NextStates(closed, FreeMove)
		if more.SubsetOf(closed) {
			return closed
		}
		closed = closed.Union(more)
	}
}

// States returns every state mentioned by a rule, ascending.
func (rb *Rulebook) States() []State {
	set := NewStateSet()
	for _, r := range rb.rules {
		set.Add(r.From)
		set.Add(r.To)
	}
	return set.Sorted()
}

// Alphabet returns the distinct input symbols, ascending, without FreeMove.
func (rb *Rulebook) Alphabet() []rune {
	seen := map[rune]struct{}{}
	for _, r := range rb.rules {
		if !r.IsFreeMove() {
			seen[r.Symbol] = struct{}{}
		}
	}
	out := make([]rune, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CheckDeterministic reports the first rule that breaks the at-most-one
// rule per (state, symbol) contract of a DFA rulebook.
func (rb *Rulebook) CheckDeterministic() error {
	type key struct {
		state  State
		symbol rune
	}
	seen := make(map[key]Rule, len(rb.rules))
	for _, r := range rb.rules {
		if r.IsFreeMove() {
			return fmt.Errorf("%w: %v", ErrFreeMove, r)
		}
		k := key{r.From, r.Symbol}
		if prev, ok := seen[k]; ok {
			return fmt.Errorf("%w: %v and %v", ErrNondeterministic, prev, r)
		}
		seen[k] = r
	}
	return nil
}
