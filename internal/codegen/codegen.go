// Package codegen emits Go source for deterministic automaton designs.
package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"io"

	"github.com/dave/jennifer/jen"

	"automata/internal/fa"
)

// Names used in generated code.
const (
	InputName  = "input"
	StateName  = "state"
	SymbolName = "r"
)

// ErrInvalidName reports a package or function name the generated file
// could not compile with.
var ErrInvalidName = errors.New("invalid name")

// Options controls the generated file. Package defaults to "main" and Func
// to "Match".
type Options struct {
	Package string
	Func    string
	// Source is quoted in the function comment when set.
	Source string
}

func (o Options) withDefaults() (Options, error) {
	if o.Package == "" {
		o.Package = "main"
	}
	if o.Func == "" {
		o.Func = "Match"
	}
	if !token.IsIdentifier(o.Package) || o.Package == "_" {
		return o, fmt.Errorf("%w: package %q", ErrInvalidName, o.Package)
	}
	if !token.IsIdentifier(o.Func) || o.Func == "_" || o.Func == "init" {
		return o, fmt.Errorf("%w: function %q", ErrInvalidName, o.Func)
	}
	if types.Universe.Lookup(o.Func) != nil {
		return o, fmt.Errorf("%w: function %q shadows a predeclared identifier", ErrInvalidName, o.Func)
	}
	if o.Package == "main" && o.Func == "main" {
		return o, fmt.Errorf("%w: function main in package main", ErrInvalidName)
	}
	return o, nil
}

// Generate writes a Go file holding one func(string) bool that runs d.
// States are renumbered densely from 0, the start state first, so output is
// independent of how d's states were allocated.
func Generate(w io.Writer, d *fa.DFADesign, opts Options) error {
	opts, err := opts.withDefaults()
	if err != nil {
		return err
	}
	f := buildFile(d, opts)
	if err := f.Render(w); err != nil {
		return fmt.Errorf("failed to render generated code: %w", err)
	}
	return nil
}

// buildFile assembles the jennifer file Generate renders.
func buildFile(d *fa.DFADesign, opts Options) *jen.File {
	index := numberStates(d)
	rulebook := d.Rulebook()

	f := jen.NewFile(opts.Package)
	f.HeaderComment("Code generated by automata gen. DO NOT EDIT.")

	var stateCases []jen.Code
	for _, st := range orderedStates(index) {
		var symbolCases []jen.Code
		for _, sym := range rulebook.Alphabet() {
			r, ok := rulebook.RuleFor(st, sym)
			if !ok {
				continue
			}
			symbolCases = append(symbolCases,
				jen.Case(jen.LitRune(sym)).Block(
					jen.Id(StateName).Op("=").Lit(index[r.Follow()]),
				),
			)
		}
		symbolCases = append(symbolCases, jen.Default().Block(jen.Return(jen.False())))
		stateCases = append(stateCases,
			jen.Case(jen.Lit(index[st])).Block(
				jen.Switch(jen.Id(SymbolName)).Block(symbolCases...),
			),
		)
	}
	stateCases = append(stateCases, jen.Default().Block(jen.Return(jen.False())))

	var accepting []jen.Code
	for _, st := range d.AcceptStates() {
		accepting = append(accepting, jen.Lit(index[st]))
	}

	body := []jen.Code{
		jen.Id(StateName).Op(":=").Lit(0),
		jen.For(jen.List(jen.Id("_"), jen.Id(SymbolName)).Op(":=").Range().Id(InputName)).Block(
			jen.Switch(jen.Id(StateName)).Block(stateCases...),
		),
	}
	if len(accepting) == 0 {
		body = append(body, jen.Return(jen.False()))
	} else {
		body = append(body,
			jen.Switch(jen.Id(StateName)).Block(
				jen.Case(accepting...).Block(jen.Return(jen.True())),
			),
			jen.Return(jen.False()),
		)
	}

	comment := fmt.Sprintf("%s reports whether the automaton accepts the whole of %s.", opts.Func, InputName)
	if opts.Source != "" {
		comment = fmt.Sprintf("%s reports whether %s matches %s in full.", opts.Func, InputName, opts.Source)
	}
	f.Comment(comment)
	f.Func().Id(opts.Func).Params(jen.Id(InputName).String()).Bool().Block(body...)
	return f
}

// numberStates gives the start state 0 and the other states 1.. in
// ascending order.
func numberStates(d *fa.DFADesign) map[fa.State]int {
	index := map[fa.State]int{d.Start(): 0}
	for _, st := range d.States() {
		if _, ok := index[st]; !ok {
			index[st] = len(index)
		}
	}
	return index
}

func orderedStates(index map[fa.State]int) []fa.State {
	out := make([]fa.State, len(index))
	for st, i := range index {
		out[i] = st
	}
	return out
}
