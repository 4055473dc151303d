package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "pricingcal",
	Short: "Coach pricing calendar generator",
	Long: `pricingcal derives a daily pricing band for every day of a target year
from a monthly capacity summary and a per-trip dispatch report.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
