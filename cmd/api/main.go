package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "moneycheck",
		Short: "Personal finance self-assessment service",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newDiagnoseCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
