package main

import (
	"fmt"
	"os"

	"fxcalc/internal/cli"
)

// @title fxcalc API
// @version 1.0
// @description Exchange rate resolution from quote snapshots and overnight rollover rates from reference short-term interest rates.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := cli.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
