package main

import (
	"fmt"
	"os"

	"rental-marketplace/internal/pkg/config"

	"github.com/spf13/cobra"
)

func main() {
	config.LoadDotEnv()

	rootCmd := &cobra.Command{
		Use:           "rentalctl",
		Short:         "Operator tooling for the rental marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		migrateCmd(),
		seedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
