package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/starrtours/pricingcal/app"
	"github.com/starrtours/pricingcal/config"
)

var (
	flagYear     int
	flagSummary  string
	flagDispatch string
	flagOut      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the pricing calendar for the configured year",
	RunE:  generate,
}

func init() {
	generateCmd.Flags().IntVar(&flagYear, "year", 0, "target year (overrides config)")
	generateCmd.Flags().StringVar(&flagSummary, "summary", "", "capacity summary file (overrides config)")
	generateCmd.Flags().StringVar(&flagDispatch, "dispatch", "", "dispatch report file (overrides config)")
	generateCmd.Flags().StringVar(&flagOut, "out", "", "output file (overrides config)")
	rootCmd.AddCommand(generateCmd)
}

func generate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagYear != 0 {
		cfg.Inputs.Year = flagYear
	}
	if flagSummary != "" {
		cfg.Inputs.SummaryPath = flagSummary
	}
	if flagDispatch != "" {
		cfg.Inputs.DispatchPath = flagDispatch
	}
	if flagOut != "" {
		cfg.Output.Path = flagOut
	}
	if err := cfg.Inputs.Validate(); err != nil {
		return err
	}
	return app.New(cfg).Run(ctx)
}
