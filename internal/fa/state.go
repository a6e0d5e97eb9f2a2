package fa

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// State is an opaque automaton state. Two states are equal only when they
// are the same token.
type State uint64

func (s State) String() string { return fmt.Sprintf("q%d", uint64(s)) }

// Allocator hands out fresh states. The zero value is ready to use and is
// safe for concurrent use.
type Allocator struct {
	last atomic.Uint64
}

func NewAllocator() *Allocator { return &Allocator{} }

// New returns a state that a has never returned before.
func (a *Allocator) New() State { return State(a.last.Add(1)) }

// StateSet is an unordered set of states.
type StateSet map[State]struct{}

func NewStateSet(states ...State) StateSet {
	set := make(StateSet, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}

func (s StateSet) Add(state State) { s[state] = struct{}{} }

func (s StateSet) Contains(state State) bool {
	_, ok := s[state]
	return ok
}

func (s StateSet) Len() int { return len(s) }

func (s StateSet) Clone() StateSet {
	out := make(StateSet, len(s))
	for st := range s {
		out[st] = struct{}{}
	}
	return out
}

// Union returns a new set; neither operand is modified.
func (s StateSet) Union(other StateSet) StateSet {
	out := make(StateSet, len(s)+len(other))
	for st := range s {
		out[st] = struct{}{}
	}
	for st := range other {
		out[st] = struct{}{}
	}
	return out
}

func (s StateSet) SubsetOf(other StateSet) bool {
	if len(s) > len(other) {
		return false
	}
	for st := range s {
		if !other.Contains(st) {
			return false
		}
	}
	return true
}

func (s StateSet) Equal(other StateSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

func (s StateSet) Intersects(other StateSet) bool {
	small, big := s, other
	if len(small) > len(big) {
		small, big = big, small
	}
	for st := range small {
		if big.Contains(st) {
			return true
		}
	}
	return false
}

// Sorted returns the members in ascending order.
func (s StateSet) Sorted() []State {
	out := make([]State, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s StateSet) String() string {
	parts := make([]string, 0, len(s))
	for _, st := range s.Sorted() {
		parts = append(parts, st.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
