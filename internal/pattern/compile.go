package pattern

import (
	"fmt"

	"automata/internal/fa"
)

// fragment is a partly linked automaton: a start state, its accept states
// and the rules between them.
type fragment struct {
	start  fa.State
	accept []fa.State
	rules  []fa.Rule
}

// Build compiles p into an NFA design. Every state introduced along the way
// comes from alloc, so designs built from one allocator never share states.
func Build(p Pattern, alloc *fa.Allocator) *fa.NFADesign {
	if alloc == nil {
		alloc = fa.NewAllocator()
	}
	frag := buildFragment(p, alloc)
	return fa.NewNFADesign(frag.start, frag.accept, fa.NewRulebook(frag.rules...))
}

// Matches reports whether p matches the whole of input.
func Matches(p Pattern, input string) bool {
	return Build(p, fa.NewAllocator()).Accepts(input)
}

func buildFragment(p Pattern, alloc *fa.Allocator) fragment {
	switch node := p.(type) {
	case Empty:
		s := alloc.New()
		return fragment{start: s, accept: []fa.State{s}}
	case Literal:
		if node.Char < 0 {
			panic(fmt.Sprintf("pattern: invalid literal %d", node.Char))
		}
		s0 := alloc.New()
		s1 := alloc.New()
		return fragment{
			start:  s0,
			accept: []fa.State{s1},
			rules:  []fa.Rule{fa.NewRule(s0, node.Char, s1)},
		}
	case Concatenate:
		f1 := buildFragment(node.First, alloc)
		f2 := buildFragment(node.Second, alloc)
		rules := joinRules(f1.rules, f2.rules)
		for _, a := range f1.accept {
			rules = append(rules, fa.NewFreeMove(a, f2.start))
		}
		return fragment{start: f1.start, accept: f2.accept, rules: rules}
	case Alternate:
		f1 := buildFragment(node.First, alloc)
		f2 := buildFragment(node.Second, alloc)
		s := alloc.New()
		rules := joinRules(f1.rules, f2.rules)
		rules = append(rules, fa.NewFreeMove(s, f1.start), fa.NewFreeMove(s, f2.start))
		accept := append(append([]fa.State(nil), f1.accept...), f2.accept...)
		return fragment{start: s, accept: accept, rules: rules}
	case Repeat:
		f := buildFragment(node.Inner, alloc)
		s := alloc.New()
		rules := joinRules(f.rules, nil)
		for _, a := range f.accept {
			rules = append(rules, fa.NewFreeMove(a, f.start))
		}
		rules = append(rules, fa.NewFreeMove(s, f.start))
		accept := append(append([]fa.State(nil), f.accept...), s)
		return fragment{start: s, accept: accept, rules: rules}
	case nil:
		panic("pattern: nil pattern")
	default:
		panic(fmt.Sprintf("pattern: unknown pattern node %T", p))
	}
}

func joinRules(a, b []fa.Rule) []fa.Rule {
	out := make([]fa.Rule, 0, len(a)+len(b)+2)
	out = append(out, a...)
	return append(out, b...)
}
