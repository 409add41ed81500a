package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "default\tAdaptive palette for light and dark terminals")
			fmt.Fprintln(out, "dark\tDeep surface colors tuned for dark terminals")
			fmt.Fprintln(out, "light\tAlias of the adaptive default")
			return nil
		},
	}
}
