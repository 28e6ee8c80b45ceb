package main

import (
	"os"

	"github.com/spf13/cobra"

	"salesdaily/internal/interfaces/cli/migrate"
	"salesdaily/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "salesdaily",
		Short: "Sales daily report service",
		Long:  `Sales daily report service with built-in HTTP server and database migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
