package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/helixml/rangepairs"
	"github.com/helixml/rangepairs/internal/config"
	"github.com/helixml/rangepairs/internal/log"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rangepairs <input-file>",
		Short: "Count assignment pairs whose ranges nest or overlap",
		Long: `Read a file of range pairs, one per line (e.g. "2-4,6-8"), and print how many
pairs have one range fully containing the other (part 1) and how many pairs
overlap at all (part 2).

Environment variables (also read from .env in the current directory):
  LOG_LEVEL   Diagnostic log level: DEBUG, INFO, WARN, ERROR (default: WARN)
  LOG_FORMAT  Diagnostic log format: pretty, json (default: pretty)
  NO_COLOR    Disable ANSI colours in pretty logs`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
		},
	}
	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := log.NewLoggerWithWriter(stderr, cfg).Slog()
	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	logger.LogAttrs(ctx, slog.LevelDebug, "starting rangepairs", attrs...)

	client := rangepairs.New(rangepairs.WithLogger(logger))
	report, err := client.AnalyzeFile(ctx, path)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "Part 1 solution = %d\nPart 2 solution = %d\n", report.Contained(), report.Overlapping())
	return err
}
