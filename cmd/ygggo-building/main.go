// Package main is the entry point for the ygggo-building CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yggai/ygggo_building"
	"github.com/yggai/ygggo_building/cmd/ygggo-building/commands"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts := &commands.Options{}

	rootCmd := &cobra.Command{
		Use:           "ygggo-building",
		Short:         "Save building entities and check database settings",
		Version:       ygggo_building.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Load()
		},
	}
	opts.Bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(commands.NewProbeCommand(opts))
	rootCmd.AddCommand(commands.NewSaveCommand(opts))
	rootCmd.AddCommand(commands.NewIDCommand())

	return rootCmd.Execute()
}
