package main

import (
	"fmt"
	"github.com/myrjola/casefile/cmd/cli/check"
	"github.com/spf13/cobra"
	"os"
)

func init() {
	rootCmd.AddGroup(check.Group)
	rootCmd.AddCommand(check.Check)
}

var rootCmd = &cobra.Command{
	Use:  "casefile-cli",
	Long: `Command line utilities for case authors https://github.com/myrjola/casefile`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
