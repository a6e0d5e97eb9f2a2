package fa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// DOTOptions controls WriteDOT. The zero value draws left to right and
// labels states with State.String.
type DOTOptions struct {
	RankDir string
	Name    func(State) string
}

// WriteDOT prints a Graphviz description of d to w. Nodes and edges come
// out in a stable order.
func WriteDOT(w io.Writer, d Design, opts DOTOptions) error {
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = "LR"
	}
	name := opts.Name
	if name == nil {
		name = State.String
	}

	accept := NewStateSet(d.AcceptStates()...)
	states := NewStateSet(d.Start())
	for st := range accept {
		states.Add(st)
	}
	for _, st := range d.Rulebook().States() {
		states.Add(st)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintf(bw, "    rankdir=%s;\n", rankdir)
	for _, st := range states.Sorted() {
		shape := "circle"
		if accept.Contains(st) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    n%d [shape=%s, label=%s];\n", uint64(st), shape, strconv.Quote(name(st)))
	}
	for _, r := range d.Rulebook().Rules() {
		fmt.Fprintf(bw, "    n%d -> n%d [label=%s];\n", uint64(r.From), uint64(r.To), strconv.Quote(symbolLabel(r.Symbol)))
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> n%d;\n", uint64(d.Start()))
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
