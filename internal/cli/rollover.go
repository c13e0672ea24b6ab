package cli

import (
	"fmt"
	"strconv"
	"time"

	"fxcalc/internal/adapters/oecd"
	"fxcalc/internal/rate"

	"github.com/spf13/cobra"
)

func rolloverCmd() *cobra.Command {
	var ratesFile string

	cmd := &cobra.Command{
		Use:     "rollover SYMBOL DATE",
		Short:   "Compute the overnight rollover rate of a symbol on a date",
		Example: "  fxcalc rollover AUDUSD 2018-02-01 --rates-file data/short-term-interest.sample.csv",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse(time.DateOnly, args[1])
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[1])
			}

			svc := rate.NewService(oecd.NewFileSource(ratesFile), nil)
			if _, err = svc.LoadInterestRates(cmd.Context()); err != nil {
				return err
			}

			view, err := svc.OvernightRate(args[0], date)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(view.Rate, 'g', -1, 64))
			return err
		},
	}

	cmd.Flags().StringVar(&ratesFile, "rates-file", "data/short-term-interest.sample.csv", "OECD short-term interest rate CSV")
	return cmd
}
