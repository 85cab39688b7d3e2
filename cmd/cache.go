package main

import (
	"context"
	"fmt"

	"github.com/rkhatta1/TheVersusProject/internal/repositories"
	"github.com/urfave/cli/v3"
)

// CacheShow lists stored cache partitions and the current partition's size.
func (r *Runner) CacheShow(ctx context.Context, cmd *cli.Command) error {
	if r.cache == nil {
		return fmt.Errorf("feed cache unavailable; run 'versus setup' first")
	}

	keys, err := r.cache.Keys()
	if err != nil {
		return fmt.Errorf("failed to inspect cache: %w", err)
	}

	if len(keys) == 0 {
		return r.writePlain("Feed cache is empty.\n")
	}

	current := repositories.CacheKey(r.controller.Identity())
	for _, key := range keys {
		marker := " "
		if key == current {
			marker = "*"
		}
		label := key
		if key != repositories.GuestCacheKey {
			// Don't echo bearer tokens to the terminal.
			label = "news_<token>"
		}
		r.writePlain("%s %s (%d items)\n", marker, label, len(r.cache.Read(key)))
	}

	return nil
}

// CacheClear drops the current identity's cache partition (or the guest one).
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	if r.cache == nil {
		return fmt.Errorf("feed cache unavailable; run 'versus setup' first")
	}

	key := repositories.CacheKey(r.controller.Identity())
	if cmd.Bool("guest") {
		key = repositories.GuestCacheKey
	}

	if err := r.cache.Clear(key); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	return r.writePlain("✓ Cache partition cleared\n")
}
