package fa

// NFA is a running nondeterministic automaton. The current set is kept
// closed under free moves and is only visible through CurrentStates.
type NFA struct {
	current  StateSet
	accept   StateSet
	rulebook *Rulebook
}

// NewNFA starts an NFA in the free-move closure of current.
func NewNFA(current StateSet, accept StateSet, rulebook *Rulebook) *NFA {
	return &NFA{
		current:  rulebook.FollowFreeMoves(current),
		accept:   accept,
		rulebook: rulebook,
	}
}

// CurrentStates returns a copy of the free-move closure of the current set.
func (n *NFA) CurrentStates() StateSet {
	return n.rulebook.FollowFreeMoves(n.current)
}

// Accepting reports whether any current state is an accept state.
func (n *NFA) Accepting() bool {
	return n.CurrentStates().Intersects(n.accept)
}

func (n *NFA) ReadCharacter(symbol rune) {
	next := n.rulebook.NextStates(n.CurrentStates(), symbol)
	n.current = n.rulebook.FollowFreeMoves(next)
}

// ReadString consumes the whole input even after the current set empties.
func (n *NFA) ReadString(input string) {
	for _, r := range input {
		n.ReadCharacter(r)
	}
}
