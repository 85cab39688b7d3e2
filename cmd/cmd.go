// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand initializes the feed cache database and config file.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize config file and feed cache database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.BoolFlag{
				Name:  "rollback",
				Usage: "Roll back the most recent cache migration",
			},
		},
		Action: r.Setup,
	}
}

// feedCommand handles working-feed operations
func feedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "feed",
		Aliases: []string{"f"},
		Usage:   "Aggregate, ingest and curate the working feed",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run the main loop (long-running backend aggregation)",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "time-limit",
						Aliases: []string{"t"},
						Usage:   "Look-back window in hours (1,3,6,9,12,15,18,21,24)",
						Value:   24,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.FeedRun,
			},
			{
				Name:   "halt",
				Usage:  "Send the halt signal to a running aggregation",
				Action: r.FeedHalt,
			},
			{
				Name:  "process",
				Usage: "Process a single article URL into the feed",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "url",
					},
				},
				Action: r.FeedProcess,
			},
			{
				Name:  "show",
				Usage: "Show the cached working feed",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: text, markdown, csv or json",
						Value:   "text",
					},
				},
				Action: r.FeedShow,
			},
			{
				Name:  "save",
				Usage: "Save a feed item to the server-side captions store",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "headline",
					},
				},
				Action: r.FeedSave,
			},
			{
				Name:  "trash",
				Usage: "Remove a feed item from the working view (local only)",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "headline",
					},
				},
				Action: r.FeedTrash,
			},
		},
	}
}

// captionsCommand handles the server-side saved captions store
func captionsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "captions",
		Aliases: []string{"cap"},
		Usage:   "Browse and curate saved captions",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List saved captions",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CaptionsList,
			},
			{
				Name:  "delete",
				Usage: "Delete a saved caption by ID",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Caption ID to delete",
						Required: true,
					},
				},
				Action: r.CaptionsDelete,
			},
		},
	}
}

// authCommand handles identity operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authenticate with the Versus backend",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in and store the bearer token locally",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create an account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "logout",
				Usage:  "Discard the stored token and clear the guest feed cache",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the current identity",
				Action: r.AuthStatus,
			},
		},
	}
}

// cacheCommand inspects the local feed cache
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect and manage the local feed cache",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show stored cache partitions",
				Action: r.CacheShow,
			},
			{
				Name:  "clear",
				Usage: "Clear the current identity's cache partition",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "guest",
						Usage: "Clear the guest partition instead",
					},
				},
				Action: r.CacheClear,
			},
		},
	}
}

// tuiCommand launches the interactive terminal UI
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive feed UI",
		Action: r.TUI,
	}
}
