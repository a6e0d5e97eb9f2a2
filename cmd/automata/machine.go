package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"automata/internal/codegen"
	"automata/internal/definition"
	"automata/internal/fa"
	"automata/internal/logging"
	"automata/internal/pattern"
)

// source is an automaton named on the command line, either a pattern or a
// definition file.
type source struct {
	label  string
	design fa.Design
	name   func(fa.State) string
}

// loadSource reads the definition at file when it is set and otherwise
// compiles args[0] as a pattern.
func loadSource(file string, args []string) (*source, error) {
	if file != "" {
		def, err := definition.Load(file)
		if err != nil {
			return nil, err
		}
		m, err := def.Build(nil)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		return &source{label: file, design: m.Design, name: m.Name}, nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("need a PATTERN argument or --file")
	}
	re, err := pattern.Compile(args[0])
	if err != nil {
		return nil, err
	}
	return &source{label: re.String(), design: re.Design()}, nil
}

// deterministic returns a DFA design for src, determinizing NFAs. Names
// do not survive determinization.
func (src *source) deterministic() *fa.DFADesign {
	switch d := src.design.(type) {
	case *fa.DFADesign:
		return d
	case *fa.NFADesign:
		src.name = nil
		return d.Determinize(nil)
	}
	panic(fmt.Sprintf("unsupported design %T", src.design))
}

// openOutput returns stdout for "" or "-" and a created file otherwise.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", path, err)
	}
	return f, f.Close, nil
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE INPUT...",
		Short: "Run the automaton in a definition file over inputs",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(args[0], nil)
			if err != nil {
				return err
			}
			inputs := args[1:]
			logger := logging.GetLogger("cmd.run")
			start := time.Now()
			results, err := fa.AcceptsAll(cmd.Context(), src.design, inputs, a.cfg.Match.Workers)
			if err != nil {
				return err
			}
			logging.LogDuration(logger, start, "run")
			logger.Info().
				Str("file", args[0]).
				Int("inputs", len(inputs)).
				Int("accepted", countAccepted(results)).
				Msg("Run finished")
			printVerdicts(cmd.OutOrStdout(), inputs, results)
			return nil
		},
	}
}

func newDotCmd(a *app) *cobra.Command {
	var (
		file    string
		out     string
		rankdir string
		dfa     bool
	)
	cmd := &cobra.Command{
		Use:   "dot [PATTERN]",
		Short: "Write a Graphviz DOT graph of an automaton",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(file, args)
			if err != nil {
				return err
			}
			design := src.design
			if dfa {
				design = src.deterministic()
			}
			if rankdir == "" {
				rankdir = a.cfg.Dot.RankDir
			}
			w, closeOut, err := openOutput(cmd, out)
			if err != nil {
				return err
			}
			if err := fa.WriteDOT(w, design, fa.DOTOptions{RankDir: rankdir, Name: src.name}); err != nil {
				_ = closeOut()
				return fmt.Errorf("write dot: %w", err)
			}
			return closeOut()
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "definition file instead of a pattern")
	cmd.Flags().StringVarP(&out, "output", "o", "-", "output file")
	cmd.Flags().StringVar(&rankdir, "rankdir", "", "graph direction (default from config)")
	cmd.Flags().BoolVar(&dfa, "dfa", false, "determinize before drawing")
	return cmd
}

func newGenCmd(a *app) *cobra.Command {
	var (
		file string
		out  string
		opts codegen.Options
	)
	cmd := &cobra.Command{
		Use:   "gen [PATTERN]",
		Short: "Generate a Go matcher function for an automaton",
		Long: `gen writes a Go file with a func(input string) bool that runs the
automaton as a state switch. Nondeterministic automata are determinized first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(file, args)
			if err != nil {
				return err
			}
			if opts.Package == "" {
				opts.Package = a.cfg.Gen.Package
			}
			if opts.Func == "" {
				opts.Func = a.cfg.Gen.Func
			}
			opts.Source = src.label
			w, closeOut, err := openOutput(cmd, out)
			if err != nil {
				return err
			}
			if err := codegen.Generate(w, src.deterministic(), opts); err != nil {
				_ = closeOut()
				return err
			}
			return closeOut()
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "definition file instead of a pattern")
	cmd.Flags().StringVarP(&out, "output", "o", "-", "output file")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package name (default from config)")
	cmd.Flags().StringVar(&opts.Func, "func", "", "function name (default from config)")
	return cmd
}

func newConvertCmd() *cobra.Command {
	var (
		to  string
		out string
	)
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Rewrite a definition file in another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := definition.Load(args[0])
			if err != nil {
				return err
			}
			data, err := definition.Marshal(definition.Format(to), def)
			if err != nil {
				return err
			}
			w, closeOut, err := openOutput(cmd, out)
			if err != nil {
				return err
			}
			if _, err := w.Write(data); err != nil {
				_ = closeOut()
				return err
			}
			return closeOut()
		},
	}
	cmd.Flags().StringVar(&to, "to", string(definition.FormatYAML), "target format: fa, yaml or toml")
	cmd.Flags().StringVarP(&out, "output", "o", "-", "output file")
	return cmd
}
