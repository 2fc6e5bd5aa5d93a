package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/workspace/internal/cli/config"
	"github.com/leapstack-labs/workspace/internal/loader"
	"github.com/leapstack-labs/workspace/pkg/core"
	"github.com/leapstack-labs/workspace/pkg/registry"
	"github.com/leapstack-labs/workspace/pkg/types/workspace"
	"github.com/spf13/cobra"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Parse a workspace document and show its definitions",
		Long: `Parse a workspace document and show every definition it declares.

Each top-level key of the document is a declaration such as workspace('app').
A document may declare at most one workspace.

The file defaults to workspace_file from the config (workspace.yml).`,
		Example: `  # Inspect ./workspace.yml
  ws inspect

  # Inspect another file as JSON
  ws inspect path/to/workspace.yml --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			path := cmdCtx.Cfg.WorkspaceFile
			if len(args) == 1 {
				path = args[0]
			}
			return runInspect(cmdCtx, path)
		},
	}
	return cmd
}

func runInspect(cmdCtx *CommandContext, path string) error {
	records, err := loader.Load(path, cmdCtx.Cfg.ScopeValue(), cmdCtx.Logger)
	if err != nil {
		return err
	}

	session := registry.NewSession(cmdCtx.Logger)
	defs, err := session.CreateAll(records)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	views := make([]definitionView, 0, len(defs))
	for _, def := range defs {
		views = append(views, newDefinitionView(def))
	}

	if cmdCtx.Cfg.OutputFormat == config.OutputJSON {
		return inspectJSON(cmdCtx.Out, views)
	}
	return inspectText(cmdCtx.Out, views)
}

// definitionView is the rendered form of a definition.
// Absent optional attributes stay nil and encode as null.
type definitionView struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	HarnessName *string `json:"harnessName"`
	Path        string  `json:"path"`
	Overlay     *string `json:"overlay"`
	Scope       string  `json:"scope"`
}

func newDefinitionView(def core.Definition) definitionView {
	v := definitionView{
		Type:  def.Type(),
		Name:  def.Name(),
		Path:  def.Path(),
		Scope: string(def.Scope()),
	}
	if ws, ok := def.(*workspace.Definition); ok {
		v.Description = optional(ws.Description())
		v.HarnessName = optional(ws.HarnessName())
		v.Overlay = optional(ws.Overlay())
	}
	return v
}

func optional(s string, ok bool) *string {
	if !ok {
		return nil
	}
	return &s
}

func inspectJSON(w io.Writer, views []definitionView) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}

func inspectText(w io.Writer, views []definitionView) error {
	if len(views) == 0 {
		_, _ = fmt.Fprintln(w, "No definitions found.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Type", "Name", "Description", "Harness", "Overlay", "Scope", "Path"})
	for _, v := range views {
		t.AppendRow(table.Row{v.Type, v.Name, orDash(v.Description), orDash(v.HarnessName), orDash(v.Overlay), v.Scope, v.Path})
	}
	t.Render()
	return nil
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
