package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	acceptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	rejectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// printVerdicts writes one "accept"/"reject" line per input.
func printVerdicts(w io.Writer, inputs []string, results []bool) {
	for i, input := range inputs {
		verdict := rejectStyle.Render("reject")
		if results[i] {
			verdict = acceptStyle.Render("accept")
		}
		fmt.Fprintf(w, "%s  %s\n", verdict, strconv.Quote(input))
	}
}

// countAccepted reports how many results are true.
func countAccepted(results []bool) int {
	n := 0
	for _, ok := range results {
		if ok {
			n++
		}
	}
	return n
}
