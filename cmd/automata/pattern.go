package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"automata/internal/fa"
	"automata/internal/logging"
	"automata/internal/pattern"
)

// matchDesign returns the design inputs are matched against under the
// configured engine.
func (a *app) matchDesign(nfa *fa.NFADesign, engine string) fa.Design {
	if engine == "" {
		engine = a.cfg.Match.Engine
	}
	if engine == "dfa" {
		return nfa.Determinize(nil)
	}
	return nfa
}

func newMatchCmd(a *app) *cobra.Command {
	var engine string
	cmd := &cobra.Command{
		Use:   "match PATTERN INPUT...",
		Short: "Report which inputs a pattern matches in full",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if engine != "" && engine != "nfa" && engine != "dfa" {
				return fmt.Errorf("unknown engine %q (want nfa or dfa)", engine)
			}
			re, err := pattern.Compile(args[0])
			if err != nil {
				return err
			}
			inputs := args[1:]
			design := a.matchDesign(re.Design(), engine)

			logger := logging.GetLogger("cmd.match")
			logger.Info().
				Str("pattern", re.String()).
				Int("inputs", len(inputs)).
				Int("workers", a.cfg.Match.Workers).
				Msg("Matching")
			defer logging.LogDuration(logger, time.Now(), "match")

			results, err := fa.AcceptsAll(cmd.Context(), design, inputs, a.cfg.Match.Workers)
			if err != nil {
				return err
			}
			printVerdicts(cmd.OutOrStdout(), inputs, results)
			return nil
		},
	}
	cmd.Flags().StringVar(&engine, "engine", "", "matching engine: nfa or dfa (default from config)")
	return cmd
}

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find PATTERN TEXT",
		Short: "List the leftmost-longest non-empty matches of a pattern in text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := pattern.Compile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			matches := re.FindAll(args[1])
			for _, m := range matches {
				fmt.Fprintf(out, "%s  %s\n", dimStyle.Render(fmt.Sprintf("%d-%d", m.Start, m.End)), strconv.Quote(m.Text))
			}
			if len(matches) == 0 {
				fmt.Fprintln(out, dimStyle.Render("no matches"))
			}
			return nil
		},
	}
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render PATTERN",
		Short: "Print a pattern in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pattern.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pattern.Inspect(p))
			return nil
		},
	}
}
