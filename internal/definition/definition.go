// Package definition reads hand-written automata: a start state, accept
// states and a rule table, with states named by strings.
package definition

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"automata/internal/fa"
)

// Kind selects the automaton a definition builds.
type Kind string

const (
	KindDFA Kind = "dfa"
	KindNFA Kind = "nfa"
)

var (
	ErrUnknownKind   = errors.New("unknown automaton kind")
	ErrBadSymbol     = errors.New("symbol must be exactly one character")
	ErrMissingStart  = errors.New("start state is required")
	ErrMissingState  = errors.New("rule must name both states")
	ErrUnknownFormat = errors.New("unknown definition format")
)

// RuleDef is one transition. An empty On is a free move.
type RuleDef struct {
	From string `yaml:"from" toml:"from"`
	On   string `yaml:"on,omitempty" toml:"on,omitempty"`
	To   string `yaml:"to" toml:"to"`
}

// Definition is an automaton with named states, as read from a file.
type Definition struct {
	Kind   Kind      `yaml:"kind" toml:"kind"`
	Start  string    `yaml:"start" toml:"start"`
	Accept []string  `yaml:"accept" toml:"accept"`
	Rules  []RuleDef `yaml:"rules" toml:"rules"`
}

// Machine is a built definition. Names maps every state back to the name
// it had in the definition.
type Machine struct {
	Kind   Kind
	Design fa.Design
	Names  map[fa.State]string
}

// Name returns the definition name of s, or s.String() for an unknown state.
func (m *Machine) Name(s fa.State) string {
	if n, ok := m.Names[s]; ok {
		return n
	}
	return s.String()
}

// Validate checks the definition without building it.
func (d *Definition) Validate() error {
	switch d.Kind {
	case KindDFA, KindNFA:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}
	if d.Start == "" {
		return ErrMissingStart
	}
	for i, r := range d.Rules {
		if r.From == "" || r.To == "" {
			return fmt.Errorf("rule %d: %w", i+1, ErrMissingState)
		}
		if r.On != "" && utf8.RuneCountInString(r.On) != 1 {
			return fmt.Errorf("rule %d (%s -> %s): %w: %q", i+1, r.From, r.To, ErrBadSymbol, r.On)
		}
	}
	return nil
}

// Build validates d and turns it into a design. State names are mapped to
// fresh states from alloc in order of first appearance, so builds are
// reproducible. A DFA definition must have no free moves and at most one
// rule per state and symbol.
func (d *Definition) Build(alloc *fa.Allocator) (*Machine, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if alloc == nil {
		alloc = fa.NewAllocator()
	}

	states := map[string]fa.State{}
	names := map[fa.State]string{}
	state := func(name string) fa.State {
		if s, ok := states[name]; ok {
			return s
		}
		s := alloc.New()
		states[name] = s
		names[s] = name
		return s
	}

	start := state(d.Start)
	accept := make([]fa.State, 0, len(d.Accept))
	for _, name := range d.Accept {
		accept = append(accept, state(name))
	}
	rules := make([]fa.Rule, 0, len(d.Rules))
	for _, r := range d.Rules {
		from, to := state(r.From), state(r.To)
		if r.On == "" {
			rules = append(rules, fa.NewFreeMove(from, to))
			continue
		}
		sym, _ := utf8.DecodeRuneInString(r.On)
		rules = append(rules, fa.NewRule(from, sym, to))
	}
	rulebook := fa.NewRulebook(rules...)

	m := &Machine{Kind: d.Kind, Names: names}
	switch d.Kind {
	case KindDFA:
		if err := rulebook.CheckDeterministic(); err != nil {
			return nil, fmt.Errorf("dfa definition: %w", err)
		}
		m.Design = fa.NewDFADesign(start, accept, rulebook)
	case KindNFA:
		m.Design = fa.NewNFADesign(start, accept, rulebook)
	}
	return m, nil
}

// StateNames returns every state name, sorted.
func (d *Definition) StateNames() []string {
	seen := map[string]struct{}{d.Start: {}}
	for _, a := range d.Accept {
		seen[a] = struct{}{}
	}
	for _, r := range d.Rules {
		seen[r.From] = struct{}{}
		seen[r.To] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
