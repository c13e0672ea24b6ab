package cli

import (
	"fmt"
	"strings"

	"fxcalc/internal/domain"
	"fxcalc/internal/rate"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func rateCmd() *cobra.Command {
	var (
		from, to, priceType string
		bid, ask            map[string]string
	)

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Resolve an exchange rate from bid/ask quotes",
		Example: `  fxcalc rate --from JPY --to AUD --price-type bid \
    --bid USD/JPY=110.100,AUD/USD=0.80000 --ask USD/JPY=110.130,AUD/USD=0.80010`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := domain.ParsePriceType(priceType)
			if err != nil {
				return err
			}
			bidQuotes, err := parseQuotes(bid)
			if err != nil {
				return err
			}
			askQuotes, err := parseQuotes(ask)
			if err != nil {
				return err
			}

			from = strings.ToUpper(strings.TrimSpace(from))
			to = strings.ToUpper(strings.TrimSpace(to))
			quotes := domain.NewQuoteSnapshot(bidQuotes, askQuotes)
			validator := rate.NewValidator()
			if err = validator.ValidateCodes(from, to); err != nil {
				return err
			}
			if err = validator.ValidateQuotes(quotes); err != nil {
				return err
			}

			view := rate.NewService(nil, nil).ExchangeRate(domain.Currency(from), domain.Currency(to), pt, quotes)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), view.Rate.String())
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Currency to convert from")
	cmd.Flags().StringVar(&to, "to", "", "Currency to convert to")
	cmd.Flags().StringVar(&priceType, "price-type", "mid", "bid, ask or mid")
	cmd.Flags().StringToStringVar(&bid, "bid", nil, "Bid quotes as BASE/QUOTE=rate")
	cmd.Flags().StringToStringVar(&ask, "ask", nil, "Ask quotes as BASE/QUOTE=rate")
	return cmd
}

func parseQuotes(raw map[string]string) (map[string]decimal.Decimal, error) {
	quotes := make(map[string]decimal.Decimal, len(raw))
	for key, value := range raw {
		d, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("invalid quote %s=%s: %w", key, value, err)
		}
		quotes[key] = d
	}
	return quotes, nil
}
