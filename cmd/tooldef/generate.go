package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/skosovsky/tooldef"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		check  bool
		indent bool
	)
	cmd := &cobra.Command{
		Use:   "generate MANIFEST...",
		Short: "Print the tool definitions of the given manifests as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := a.definitions(args)
			if err != nil {
				return err
			}
			if check {
				if err := tooldef.Check(defs...); err != nil {
					return err
				}
				a.logger.Info("definitions checked", "count", len(defs))
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			if indent {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(defs)
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "compile every parameters schema as JSON Schema before printing")
	cmd.Flags().BoolVar(&indent, "indent", true, "indent the JSON output")
	return cmd
}
