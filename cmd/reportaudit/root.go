package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "reportaudit",
		Short:         "reportaudit checks report documents for accessibility problems",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newAnalyzeCmd(flags))
	cmd.AddCommand(newChecksCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
