package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"playlistgen/internal/logging"
	"playlistgen/internal/playlist"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the playlist file (same as running with no command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, ctx, dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the generated document instead of writing it")
	return cmd
}

func runBuild(cmd *cobra.Command, ctx *commandContext, dryRun bool) error {
	builder, logger, logs, err := ctx.newBuilder(cmd)
	if err != nil {
		return err
	}
	defer logs.Close()
	cfg, _ := ctx.ensureConfig()
	out := cmd.OutOrStdout()

	if dryRun {
		tracks, err := builder.Build(cmd.Context())
		if err != nil {
			return err
		}
		data, err := playlist.Render(cfg.Playlist.Variable, tracks)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s\n", data); err != nil {
			return err
		}
		logger.Debug("dry run, nothing written", logging.Int(logging.FieldCount, len(tracks)))
		return nil
	}

	result, err := builder.Run(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Generated %s (%s)\n", result.OutputPath, plural(result.Count, "track"))
	return nil
}
