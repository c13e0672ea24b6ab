package cli

import (
	"github.com/spf13/cobra"
)

const version = "v1.0.0"

// NewRootCmd assembles the fxcalc command tree.
func NewRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "fxcalc",
		Short:         "Exchange rate and overnight rollover calculator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config.yaml", "Path to config file")

	rootCmd.AddCommand(
		serveCmd(&configFile),
		rateCmd(),
		rolloverCmd(),
	)
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
