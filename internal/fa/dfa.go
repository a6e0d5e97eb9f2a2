package fa

// DFA is a running deterministic automaton. Only the current state changes
// while it reads input.
type DFA struct {
	current  State
	dead     bool
	accept   StateSet
	rulebook *Rulebook
}

// NewDFA starts a DFA in current.
func NewDFA(current State, accept StateSet, rulebook *Rulebook) *DFA {
	return &DFA{current: current, accept: accept, rulebook: rulebook}
}

func (d *DFA) CurrentState() State { return d.current }

func (d *DFA) Accepting() bool {
	return !d.dead && d.accept.Contains(d.current)
}

// ReadCharacter follows the first rule for the current state and symbol.
// Without one the automaton is dead and rejects from then on.
func (d *DFA) ReadCharacter(symbol rune) {
	if d.dead {
		return
	}
	r, ok := d.rulebook.RuleFor(d.current, symbol)
	if !ok {
		d.dead = true
		return
	}
	d.current = r.Follow()
}

// ReadString consumes the whole input, one rune at a time.
func (d *DFA) ReadString(input string) {
	for _, r := range input {
		d.ReadCharacter(r)
	}
}
