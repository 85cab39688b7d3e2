package main

import (
	"context"
	"fmt"

	"github.com/rkhatta1/TheVersusProject/internal/formatter"
	"github.com/urfave/cli/v3"
)

// CaptionsList fetches and prints the server-side saved captions.
func (r *Runner) CaptionsList(ctx context.Context, cmd *cli.Command) error {
	items, err := r.controller.LoadPersistedItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch saved captions: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(items, true)
	}

	if len(items) == 0 {
		return r.writePlain("No saved captions.\n")
	}

	return r.writePlain("%s", formatter.ExportToText(items))
}

// CaptionsDelete deletes a saved caption by ID.
func (r *Runner) CaptionsDelete(ctx context.Context, cmd *cli.Command) error {
	id := int(cmd.Int("id"))

	if err := r.controller.DeletePersistedItem(ctx, id); err != nil {
		return fmt.Errorf("failed to delete caption %d: %w", id, err)
	}

	return r.writePlain("✓ Caption %d deleted\n", id)
}
