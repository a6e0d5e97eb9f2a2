package fa

// Design is an immutable automaton blueprint. Accepts builds a fresh
// automaton for every call, so one Design can serve concurrent callers.
type Design interface {
	Start() State
	AcceptStates() []State
	Rulebook() *Rulebook
	Accepts(input string) bool
}

type blueprint struct {
	start    State
	accept   StateSet
	rulebook *Rulebook
}

func newBlueprint(start State, accept []State, rulebook *Rulebook) blueprint {
	if rulebook == nil {
		rulebook = NewRulebook()
	}
	return blueprint{start: start, accept: NewStateSet(accept...), rulebook: rulebook}
}

func (b blueprint) Start() State { return b.start }

// AcceptStates returns the accept states in ascending order.
func (b blueprint) AcceptStates() []State { return b.accept.Sorted() }

func (b blueprint) Rulebook() *Rulebook { return b.rulebook }

// States returns the start state, the accept states and every state named
// by a rule, ascending.
func (b blueprint) States() []State {
	set := NewStateSet(b.start)
	for st := range b.accept {
		set.Add(st)
	}
	for _, st := range b.rulebook.States() {
		set.Add(st)
	}
	return set.Sorted()
}

// DFADesign describes a DFA. Designs are immutable and safe to share.
type DFADesign struct {
	blueprint
}

// NewDFADesign returns a design; a nil rulebook has no rules.
func NewDFADesign(start State, accept []State, rulebook *Rulebook) *DFADesign {
	return &DFADesign{blueprint: newBlueprint(start, accept, rulebook)}
}

// ToDFA returns a fresh DFA in the start state.
func (d *DFADesign) ToDFA() *DFA {
	return NewDFA(d.start, d.accept, d.rulebook)
}

// Accepts runs a fresh DFA over input.
func (d *DFADesign) Accepts(input string) bool {
	dfa := d.ToDFA()
	dfa.ReadString(input)
	return dfa.Accepting()
}

// NFADesign describes an NFA. Designs are immutable and safe to share.
type NFADesign struct {
	blueprint
}

// NewNFADesign returns a design; a nil rulebook has no rules.
func NewNFADesign(start State, accept []State, rulebook *Rulebook) *NFADesign {
	return &NFADesign{blueprint: newBlueprint(start, accept, rulebook)}
}

// ToNFA returns a fresh NFA in the closure of the start state.
func (d *NFADesign) ToNFA() *NFA {
	return NewNFA(NewStateSet(d.start), d.accept, d.rulebook)
}

// Accepts runs a fresh NFA over input.
func (d *NFADesign) Accepts(input string) bool {
	nfa := d.ToNFA()
	nfa.ReadString(input)
	return nfa.Accepting()
}

var (
	_ Design = (*DFADesign)(nil)
	_ Design = (*NFADesign)(nil)
)
