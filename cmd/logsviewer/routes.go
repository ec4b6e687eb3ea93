package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/logsviewer/logsviewer/app"
	"github.com/logsviewer/logsviewer/pkg/routes"
)

func routesCmd() *cobra.Command {
	var menu bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Long: `Print the flattened route table in match order, or the navigation
menu with --menu. The table is validated with the configured
duplicate path policy.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			table, err := app.Routes(routes.WithDuplicatePolicy(cfg.DuplicatePolicy()))
			if err != nil {
				return err
			}

			if menu {
				printMenu(cmd.OutOrStdout(), table.Menu(), 0)
				return nil
			}
			return printTable(cmd.OutOrStdout(), table)
		},
	}

	cmd.Flags().BoolVarP(&menu, "menu", "m", false, "Print the navigation menu instead")

	return cmd
}

func printTable(w io.Writer, table *routes.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tEXACT\tLABEL\tTITLE")
	for _, e := range table.Flatten() {
		label := e.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\t%s\n", e.Path, e.Exact, label, e.Title)
	}
	return tw.Flush()
}

func printMenu(w io.Writer, items []routes.MenuItem, depth int) {
	for _, item := range items {
		indent := fmt.Sprintf("%*s", depth*2, "")
		if item.IsSection() {
			fmt.Fprintf(w, "%s%s/\n", indent, item.Label)
			printMenu(w, item.Children, depth+1)
			continue
		}
		fmt.Fprintf(w, "%s%s  %s\n", indent, item.Label, item.Path)
	}
}
