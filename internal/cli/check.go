package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/sheetwatch/internal/clock"
	"github.com/leapstack-labs/sheetwatch/internal/milestone"
	"github.com/leapstack-labs/sheetwatch/internal/notify"
	"github.com/leapstack-labs/sheetwatch/internal/report"
	"github.com/leapstack-labs/sheetwatch/internal/sheet"
	"github.com/spf13/cobra"
)

// runCheck performs the single run: fetch the sheet, detect the milestone
// schema, evaluate past-due milestones, print the summary, deliver it.
// The summary is always printed before delivery is attempted, so a failed
// delivery still leaves the report visible on stdout.
func runCheck(cmd *cobra.Command) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)
	ctx := cmd.Context()

	today, err := clock.Today(cfg.Timezone)
	if err != nil {
		return err
	}
	logger.Debug("resolved today", "timezone", cfg.Timezone, "date", today.Format("2006-01-02"))

	client := sheet.NewClient(sheet.Config{
		Token:   cfg.Token,
		BaseURL: cfg.APIURL,
		Logger:  logger,
	})
	doc, err := client.FetchSheet(ctx, cfg.SheetID)
	if err != nil {
		return err
	}

	cols := milestone.BuildColumnMap(doc.Columns)
	schemas, err := milestone.DetectSchemas(cols)
	if err != nil {
		return err
	}
	logger.Debug("detected milestone columns", "count", len(schemas))

	results := milestone.FindPastDue(doc, today, schemas, cols)
	summary := report.Format(results)

	fmt.Fprintln(cmd.OutOrStdout(), summary)

	slack := notify.NewSlack(notify.Config{URL: cfg.WebhookURL, Logger: logger})
	if err := slack.Send(ctx, summary); err != nil {
		return fmt.Errorf("delivering summary: %w", err)
	}

	return nil
}

// newLogger returns the CLI logger: debug-level text on stderr when verbose,
// discard otherwise.
func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
