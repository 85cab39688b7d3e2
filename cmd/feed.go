package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/rkhatta1/TheVersusProject/internal/formatter"
	"github.com/rkhatta1/TheVersusProject/internal/models"
	"github.com/rkhatta1/TheVersusProject/internal/shared"
	"github.com/urfave/cli/v3"
)

// FeedRun triggers the backend aggregation job and replaces the working feed
// with the resulting batch.
func (r *Runner) FeedRun(ctx context.Context, cmd *cli.Command) error {
	timeLimit := int(cmd.Int("time-limit"))
	if err := r.controller.SetTimeLimit(timeLimit); err != nil {
		return err
	}

	r.logger.Info("running the main loop", "time_limit", timeLimit)
	r.writePlain("Running the main loop (last %d hours)...\n", timeLimit)

	outcome, err := r.controller.StartAggregation(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrAggregationInFlight) {
			return err
		}
		return fmt.Errorf("aggregation failed: %w", err)
	}

	if outcome.Halted {
		r.writePlainln("Process halted: %s", outcome.Notice)
		return nil
	}
	if outcome.Notice != "" {
		r.writePlainln("%s", outcome.Notice)
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(outcome.Items, true)
	}

	r.writePlainln("✓ Aggregation complete: %d items", len(outcome.Items))
	return r.writePlain("%s", formatter.ExportToText(outcome.Items))
}

// FeedHalt sends the advisory halt signal to the backend.
func (r *Runner) FeedHalt(ctx context.Context, cmd *cli.Command) error {
	ack, err := r.controller.HaltAggregation(ctx)
	if err != nil {
		return fmt.Errorf("failed to send halt signal: %w", err)
	}

	return r.writePlain("✓ Halt signal sent: %s\n", ack)
}

// FeedProcess submits a single article URL and prepends the result to the feed.
func (r *Runner) FeedProcess(ctx context.Context, cmd *cli.Command) error {
	raw := cmd.StringArg("url")
	if raw == "" {
		return fmt.Errorf("%w: url", shared.ErrMissingArgument)
	}
	if parsed, err := url.Parse(raw); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: %q is not a valid URL", shared.ErrInvalidInput, raw)
	}

	r.logger.Info("processing article URL", "url", raw)

	outcome, err := r.controller.IngestURL(ctx, raw)
	if err != nil {
		return fmt.Errorf("failed to process URL: %w", err)
	}

	if outcome.Duplicate {
		return r.writePlain("%s\n", outcome.Message)
	}

	r.writePlain("✓ Article processed: %s\n", outcome.Item.Headline)
	return nil
}

// FeedShow prints the cached working feed in the requested format.
func (r *Runner) FeedShow(ctx context.Context, cmd *cli.Command) error {
	items := r.controller.Items()
	if len(items) == 0 {
		return r.writePlain("The working feed is empty. Try 'versus feed run'.\n")
	}

	switch cmd.String("format") {
	case "json":
		return r.writeJSON(items, true)
	case "markdown":
		return r.writePlain("%s", formatter.ExportToMarkdown("The Versus Project", items))
	case "csv":
		data, err := formatter.ExportToCSV(items)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	case "text":
		return r.writePlain("%s", formatter.ExportToText(items))
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidInput, cmd.String("format"))
	}
}

// FeedSave persists the feed item with the given headline.
func (r *Runner) FeedSave(ctx context.Context, cmd *cli.Command) error {
	headline := cmd.StringArg("headline")
	if headline == "" {
		return fmt.Errorf("%w: headline", shared.ErrMissingArgument)
	}

	item, ok := r.findFeedItem(headline)
	if !ok {
		return fmt.Errorf("%w: no feed item with headline %q", shared.ErrInvalidInput, headline)
	}

	if err := r.controller.SaveItem(ctx, item); err != nil {
		if errors.Is(err, shared.ErrAlreadySaved) {
			return r.writePlain("Already saved: %s\n", item.Headline)
		}
		return fmt.Errorf("failed to save caption: %w", err)
	}

	return r.writePlain("✓ Caption saved: %s\n", item.Headline)
}

// FeedTrash removes the feed item with the given headline from the local view.
func (r *Runner) FeedTrash(ctx context.Context, cmd *cli.Command) error {
	headline := cmd.StringArg("headline")
	if headline == "" {
		return fmt.Errorf("%w: headline", shared.ErrMissingArgument)
	}

	removed := r.controller.TrashItem(models.NewsItem{Headline: headline})
	if removed == 0 {
		return r.writePlain("No feed item with headline %q\n", headline)
	}

	return r.writePlain("✓ Trashed %d item(s)\n", removed)
}

func (r *Runner) findFeedItem(headline string) (models.NewsItem, bool) {
	for _, item := range r.controller.Items() {
		if item.Headline == headline {
			return item, true
		}
	}
	return models.NewsItem{}, false
}
