package main

import (
	"os"

	"github.com/starrtours/pricingcal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
