package pattern

import "strings"

// metachars must be escaped for a rendered Literal to parse back.
const metachars = `|()*\`

func (Empty) String() string { return "" }

func (p Literal) String() string {
	if strings.ContainsRune(metachars, p.Char) {
		return `\` + string(p.Char)
	}
	return string(p.Char)
}

func (p Concatenate) String() string {
	return bracket(p.First, precConcatenate) + bracket(p.Second, precConcatenate)
}

func (p Alternate) String() string {
	return bracket(p.First, precAlternate) + "|" + bracket(p.Second, precAlternate)
}

// A repeated Empty renders as "()*"; a bare "*" would not parse and would
// bind to whatever precedes it.
func (p Repeat) String() string {
	if _, ok := p.Inner.(Empty); ok {
		return "()*"
	}
	return bracket(p.Inner, precRepeat) + "*"
}

// bracket renders p, parenthesized when it binds looser than its parent.
func bracket(p Pattern, outer int) string {
	if p.Precedence() < outer {
		return "(" + p.String() + ")"
	}
	return p.String()
}

// Inspect renders p between slashes, the way patterns are usually quoted.
func Inspect(p Pattern) string { return "/" + p.String() + "/" }
