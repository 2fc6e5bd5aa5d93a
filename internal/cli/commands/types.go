package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/workspace/internal/cli/config"
	"github.com/leapstack-labs/workspace/pkg/registry"
	"github.com/spf13/cobra"
)

// NewTypesCommand creates the types command.
func NewTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the declaration types that can be parsed",
		Example: `  # List declaration types
  ws types

  # As JSON
  ws types --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			types := registry.ListTypes()

			if cmdCtx.Cfg.OutputFormat == config.OutputJSON {
				enc := json.NewEncoder(cmdCtx.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(types)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmdCtx.Out)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Type", "Declaration"})
			for _, name := range types {
				t.AppendRow(table.Row{name, fmt.Sprintf("%s('<name>'):", name)})
			}
			t.Render()
			return nil
		},
	}
}
