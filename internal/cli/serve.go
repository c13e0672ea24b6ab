package cli

import (
	"fxcalc/internal/app"

	"github.com/spf13/cobra"
)

func serveCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the interest rate reload scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(*configFile)
		},
	}
}
