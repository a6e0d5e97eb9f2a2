package pattern

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar, loosest first. Both binary operators nest to the right.
//
//	choice := branch ('|' branch)*
//	branch := repeat*
//	repeat := atom '*'*
//	atom   := '(' choice ')' | Char | Escaped
type choiceExpr struct {
	Branches []*branchExpr `parser:"@@ ( '|' @@ )*"`
}

type branchExpr struct {
	Terms []*repeatExpr `parser:"@@*"`
}

type repeatExpr struct {
	Atom  *atomExpr `parser:"@@"`
	Stars []string  `parser:"@'*'*"`
}

type atomExpr struct {
	Group   *choiceExpr `parser:"  '(' @@ ')'"`
	Escaped *string     `parser:"| @Escaped"`
	Char    *string     `parser:"| @Char"`
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escaped", Pattern: `\\.`},
	{Name: "Punct", Pattern: `[|()*]`},
	{Name: "Char", Pattern: `[^|()*\\]`},
})

var parser = participle.MustBuild[choiceExpr](participle.Lexer(patternLexer))

// Parse reads pattern text such as "(a(|b))*". Any rune other than
// | ( ) * \ is a literal; a backslash makes the next rune literal.
func Parse(text string) (Pattern, error) {
	expr, err := parser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("parse pattern %q: %w", text, err)
	}
	return expr.toPattern(), nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Pattern {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

func (c *choiceExpr) toPattern() Pattern {
	ps := make([]Pattern, len(c.Branches))
	for i, b := range c.Branches {
		ps[i] = b.toPattern()
	}
	return Choose(ps...)
}

func (b *branchExpr) toPattern() Pattern {
	ps := make([]Pattern, len(b.Terms))
	for i, t := range b.Terms {
		ps[i] = t.toPattern()
	}
	return Concat(ps...)
}

func (r *repeatExpr) toPattern() Pattern {
	p := r.Atom.toPattern()
	for range r.Stars {
		p = Star(p)
	}
	return p
}

func (a *atomExpr) toPattern() Pattern {
	switch {
	case a.Group != nil:
		return a.Group.toPattern()
	case a.Escaped != nil:
		return Lit([]rune(*a.Escaped)[1])
	default:
		return Lit([]rune(*a.Char)[0])
	}
}
