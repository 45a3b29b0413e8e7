package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/reportaudit/internal/config"
	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

func newChecksCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "checks",
		Short: "List the available checks in run order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return inputError(err)
				}
				cfg = loaded
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CHECK\tDESCRIPTION\tENABLED")
			for _, check := range model.CheckTypes() {
				enabled := "no"
				if cfg.Enabled(check) {
					enabled = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", check, check.Title(), enabled)
			}
			if err := w.Flush(); err != nil {
				return runtimeError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nContrast level: %s\n", cfg.ContrastLevel())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a settings file")

	return cmd
}
