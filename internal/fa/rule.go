package fa

import "fmt"

// FreeMove is the symbol of a transition that consumes no input. No real
// rune is negative, so it never collides with an input symbol.
const FreeMove rune = -1

// Rule is a single transition from one state to another on a symbol.
type Rule struct {
	From   State
	Symbol rune
	To     State
}

// NewRule returns the transition from --symbol--> to.
func NewRule(from State, symbol rune, to State) Rule {
	return Rule{From: from, Symbol: symbol, To: to}
}

// NewFreeMove returns a transition that consumes no input.
func NewFreeMove(from, to State) Rule {
	return Rule{From: from, Symbol: FreeMove, To: to}
}

// AppliesTo reports whether r leaves state on symbol.
func (r Rule) AppliesTo(state State, symbol rune) bool {
	return r.From == state && r.Symbol == symbol
}

// Follow returns the state r leads to.
func (r Rule) Follow() State { return r.To }

func (r Rule) IsFreeMove() bool { return r.Symbol == FreeMove }

func (r Rule) String() string {
	return fmt.Sprintf("%v --%s--> %v", r.From, symbolLabel(r.Symbol), r.To)
}

func symbolLabel(symbol rune) string {
	if symbol == FreeMove {
		return "ε"
	}
	return string(symbol)
}
