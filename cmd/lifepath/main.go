package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lifepath",
		Short: "Life questionnaire and pulse-check backend",
		Long: `lifepath serves the adaptive life questionnaire: the question
catalog, conditional follow-up flow, session persistence for guests and
accounts, pulse-check scoring, habit grading, and shareable results.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}
