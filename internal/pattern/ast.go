// Package pattern implements regular patterns built from literals,
// concatenation, alternation and Kleene star, compiled to NFA designs by
// Thompson construction.
package pattern

// Precedence ranks used when rendering. Higher binds tighter.
const (
	precAlternate   = 0
	precConcatenate = 1
	precRepeat      = 2
	precAtom        = 3
)

// Pattern is one of Empty, Literal, Concatenate, Alternate or Repeat. The
// set is closed: the unexported method keeps other packages from adding
// variants.
type Pattern interface {
	// String renders the pattern with the fewest parentheses.
	String() string
	Precedence() int
	Matches(input string) bool
	pattern()
}

// Empty matches only the empty string.
type Empty struct{}

// Literal matches exactly one rune.
type Literal struct {
	Char rune
}

// Concatenate matches First followed by Second.
type Concatenate struct {
	First, Second Pattern
}

// Alternate matches First or Second.
type Alternate struct {
	First, Second Pattern
}

// Repeat matches zero or more repetitions of Inner.
type Repeat struct {
	Inner Pattern
}

func (Empty) Precedence() int       { return precAtom }
func (Literal) Precedence() int     { return precAtom }
func (Concatenate) Precedence() int { return precConcatenate }
func (Alternate) Precedence() int   { return precAlternate }
func (Repeat) Precedence() int      { return precRepeat }

func (p Empty) Matches(input string) bool       { return Matches(p, input) }
func (p Literal) Matches(input string) bool     { return Matches(p, input) }
func (p Concatenate) Matches(input string) bool { return Matches(p, input) }
func (p Alternate) Matches(input string) bool   { return Matches(p, input) }
func (p Repeat) Matches(input string) bool      { return Matches(p, input) }

func (Empty) pattern()       {}
func (Literal) pattern()     {}
func (Concatenate) pattern() {}
func (Alternate) pattern()   {}
func (Repeat) pattern()      {}

// Lit returns a Literal for r.
func Lit(r rune) Pattern { return Literal{Char: r} }

// Concat chains patterns left to right, nesting to the right. Zero patterns
// give Empty.
func Concat(ps ...Pattern) Pattern {
	switch len(ps) {
	case 0:
		return Empty{}
	case 1:
		return ps[0]
	}
	return Concatenate{First: ps[0], Second: Concat(ps[1:]...)}
}

// Choose alternates between patterns, nesting to the right. Zero patterns
// give Empty.
func Choose(ps ...Pattern) Pattern {
	switch len(ps) {
	case 0:
		return Empty{}
	case 1:
		return ps[0]
	}
	return Alternate{First: ps[0], Second: Choose(ps[1:]...)}
}

// Star wraps p in a Repeat.
func Star(p Pattern) Pattern { return Repeat{Inner: p} }
