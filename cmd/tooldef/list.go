package main

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list MANIFEST...",
		Short: "Show the generated tools as a table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := a.definitions(args)
			if err != nil {
				return err
			}
			data := make([][]string, 0, len(defs))
			for _, d := range defs {
				p := d.Function.Parameters
				data = append(data, []string{
					d.Function.Name,
					d.Function.Description,
					strings.Join(p.Names(), ", "),
					strings.Join(p.Required, ", "),
				})
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Name", "Description", "Parameters", "Required")
			if err := table.Bulk(data); err != nil {
				return err
			}
			return table.Render()
		},
	}
}
