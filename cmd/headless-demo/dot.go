package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comalice/headless"
	"github.com/comalice/headless/internal/production"
)

func newDotCmd() *cobra.Command {
	var mode string
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "dot <widget>",
		Short:     "Print a widget chart as Graphviz DOT",
		Long:      "Print a widget chart as Graphviz DOT.\nWidgets: " + strings.Join(headless.ChartKinds(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: headless.ChartKinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, ok := headless.ChartFor(args[0])
			if !ok {
				return fmt.Errorf("unknown widget %q (want one of %s)", args[0], strings.Join(headless.ChartKinds(), ", "))
			}
			v := &production.DOTVisualizer{}
			if asJSON {
				data, err := v.ExportJSON(chart)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), v.ExportDOT(chart, mode))
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Highlight this mode")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the chart as JSON instead")

	return cmd
}
