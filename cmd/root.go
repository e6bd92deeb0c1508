package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "wait-trivia",
	Short:        "Trivia in your terminal",
	Long:         "Wait Trivia: answer multiple-choice questions from The Trivia API while you wait.",
	Args:         cobra.NoArgs,
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}
