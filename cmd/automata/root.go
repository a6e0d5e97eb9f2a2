package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"automata/internal/config"
	"automata/internal/logging"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	verbosity  int
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "automata",
		Short: "Simulate finite automata and compile regular patterns",
		Long: `automata runs deterministic and nondeterministic finite automata and
compiles regular patterns (literals, concatenation, | and *) into NFAs.

Automata can be given as a pattern or as a definition file in .fa, .yaml
or .toml form.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.verbosity > cfg.Log.Verbosity {
				cfg.Log.Verbosity = a.verbosity
			}
			a.cfg = cfg
			logging.SetupLogger(logging.Options{
				Verbosity: cfg.Log.Verbosity,
				File:      cfg.Log.File,
				Out:       cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/automata/config.toml)")

	root.AddCommand(
		newMatchCmd(a),
		newFindCmd(),
		newRenderCmd(),
		newRunCmd(a),
		newDotCmd(a),
		newGenCmd(a),
		newConvertCmd(),
		newVersionCmd(),
	)
	return root
}
