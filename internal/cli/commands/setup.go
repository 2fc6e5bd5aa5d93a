package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/leapstack-labs/workspace/internal/cli/config"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Out    io.Writer
}

// NewCommandContext collects the config and logger stored by the root command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return &CommandContext{
		Cfg:    config.GetConfig(ctx),
		Logger: config.GetLogger(ctx),
		Out:    cmd.OutOrStdout(),
	}
}
