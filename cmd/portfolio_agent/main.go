// Package main implements the portfolio_agent CLI tool for schema-locked portfolio composition.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_agent",
	Short: "Portfolio Composer CLI",
	Long:  "Portfolio Composer converts normalized content records into a deterministic, schema-locked portfolio document consumed by native mobile renderers.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
