// Package cli implements the eplgen command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/go-epl/logger"
)

// Version is reported by `eplgen --version`.
var Version = "dev"

type globalFlags struct {
	LogLevel string
	Console  bool
}

// NewRootCmd creates the eplgen command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "eplgen",
		Short: "Render EPL2 label print jobs from YAML or TOML descriptions",
		Long: `eplgen turns label descriptions into EPL2 print jobs.

A description holds the page setup (width, length/gap, print speed, density,
copies) and a list of elements (text, barcode, box, qrcode, character_set).
The rendered job is written to stdout, ready to be sent to a printer.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, ok := logger.ParseLevel(flags.LogLevel)
			if !ok {
				return fmt.Errorf("invalid log level %q", flags.LogLevel)
			}

			logger.SetDefault(logger.NewSlog(logger.Options{
				Output:  cmd.ErrOrStderr(),
				Level:   level,
				Console: flags.Console,
			}))

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flags.Console, "console", false, "Write human readable logs instead of JSON")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newEnumsCmd())

	return rootCmd
}

// Execute runs the eplgen command with the process arguments.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return err
	}

	return nil
}
