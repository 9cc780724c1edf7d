package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhermans/dirmimic/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "dirmimic",
		Short: "Record and replicate directory states using file identification",
		Long: `dirmimic records the contents of a directory tree as a portable inventory
of file identities and locations, then reconciles a reorganized target
directory against that inventory using the minimal set of move, copy and
delete operations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewInventoryCommand())
	rootCmd.AddCommand(cli.NewMirrorCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}
