package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "bootstate",
	Short:         "Inspect bootable system deployments",
	Long:          `bootstate is a CLI tool for read-only introspection of the bootable deployments tracked by rpm-ostree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
