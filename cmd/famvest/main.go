package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/famvest-inc/famvest/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "famvest",
		Short: "famvest - stock purchase payment service",
		Long:  `famvest serves the invest screens of the app: instrument catalog, stock purchases, and the FamPay payment flow behind them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
