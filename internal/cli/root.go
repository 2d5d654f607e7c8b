package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the hillclimb command.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		cfg     *Config
		logger  *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "hillclimb",
		Short: "Fewest steps up a heightmap",
		Long: `hillclimb reads a heightmap of letters 'a' (lowest) to 'z' (highest) with one
start 'S' and one summit 'E', and reports the fewest steps to the summit.
A step moves up, down, left or right, may descend any amount, and may climb
at most one letter.

Part 1 starts from 'S'. Part 2 starts from the best of every lowest cell.

Example:
  hillclimb -i input.txt
  hillclimb --mode multi --output table < input.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger = newLogger(cfg.Verbose, cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default ./"+DefaultConfigFile+" if present)")
	flags.StringP("input", "i", StdinInput, "File to read, use '-' for standard input")
	flags.StringP("mode", "m", ModeBoth, "search mode: single, multi or both")
	flags.StringP("output", "o", OutputText, "output format: text or table")
	flags.Int("max-steps", 0, "give up beyond this many steps (0 means no limit)")
	flags.Bool("time", false, "print the total runtime")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
