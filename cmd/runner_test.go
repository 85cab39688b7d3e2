package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rkhatta1/TheVersusProject/internal/models"
	"github.com/rkhatta1/TheVersusProject/internal/services"
	"github.com/rkhatta1/TheVersusProject/internal/session"
	"github.com/rkhatta1/TheVersusProject/internal/shared"
	tu "github.com/rkhatta1/TheVersusProject/internal/testing"
)

func newTestRunner(t *testing.T, feed *tu.MockFeedService, captions *tu.MockCaptionService) (*Runner, *bytes.Buffer) {
	t.Helper()

	if feed == nil {
		feed = &tu.MockFeedService{}
	}
	if captions == nil {
		captions = &tu.MockCaptionService{}
	}

	controller := session.NewController(session.Opts{
		Feed:     feed,
		Captions: captions,
		Cache:    tu.NewMemoryCache(),
	})

	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Feed:       feed,
		Captions:   captions,
		Controller: controller,
		Output:     output,
	})

	return runner, output
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("With All Dependencies Provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			feed := &tu.MockFeedService{}
			captions := &tu.MockCaptionService{}

			runner := NewRunner(RunnerOpts{
				Config:   config,
				Logger:   logger,
				Output:   output,
				Feed:     feed,
				Captions: captions,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.feed != feed {
				t.Error("expected feed service to be set")
			}
			if runner.captions != captions {
				t.Error("expected caption service to be set")
			}
		})

		t.Run("With Nil Config Uses Defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("With Nil Logger Uses Default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner, _ := newTestRunner(t, nil, nil)
		commands := runner.register()

		if len(commands) != 6 {
			t.Fatalf("expected 6 top-level commands, got %d", len(commands))
		}

		names := map[string]bool{}
		for _, cmd := range commands {
			names[cmd.Name] = true
		}
		for _, want := range []string{"setup", "auth", "feed", "captions", "cache", "tui"} {
			if !names[want] {
				t.Errorf("expected %q command to be registered", want)
			}
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("Pretty Output", func(t *testing.T) {
			runner, output := newTestRunner(t, nil, nil)

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !strings.Contains(output.String(), "\"key\": \"value\"") {
				t.Errorf("expected indented JSON, got %q", output.String())
			}
		})

		t.Run("Write Failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})
			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err == nil {
				t.Error("expected error from failing writer")
			}
		})

		t.Run("Marshal Failure", func(t *testing.T) {
			runner, _ := newTestRunner(t, nil, nil)
			if err := runner.writeJSON(make(chan int), false); err == nil {
				t.Error("expected error for unmarshalable value")
			}
		})
	})
}

func TestFeedActions(t *testing.T) {
	ctx := context.Background()

	t.Run("FeedHalt", func(t *testing.T) {
		feed := &tu.MockFeedService{}
		runner, output := newTestRunner(t, feed, nil)

		if err := runner.FeedHalt(ctx, nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if feed.HaltCalls != 1 {
			t.Errorf("expected one halt call, got %d", feed.HaltCalls)
		}
		if !strings.Contains(output.String(), "Halt signal sent.") {
			t.Errorf("expected ack in output, got %q", output.String())
		}
	})

	t.Run("FeedShow Empty Feed", func(t *testing.T) {
		runner, output := newTestRunner(t, nil, nil)

		cmd := feedCommand(runner).Commands[3]
		if cmd.Name != "show" {
			t.Fatalf("expected show subcommand, got %q", cmd.Name)
		}
		if err := cmd.Run(ctx, []string{"show"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "feed is empty") {
			t.Errorf("expected empty-feed notice, got %q", output.String())
		}
	})

	t.Run("FeedRun Replaces Feed", func(t *testing.T) {
		feed := &tu.MockFeedService{
			FetchFunc: func(ctx context.Context, token string, timeLimit int) (*services.FeedResult, error) {
				return &services.FeedResult{Posts: []models.NewsItem{
					{Headline: "Story", Summary: "sum", SourceCaption: "sc", VersusCaption: "vc"},
				}}, nil
			},
		}
		runner, output := newTestRunner(t, feed, nil)

		cmd := feedCommand(runner).Commands[0]
		if cmd.Name != "run" {
			t.Fatalf("expected run subcommand, got %q", cmd.Name)
		}
		if err := cmd.Run(ctx, []string{"run", "--time-limit", "6"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Aggregation complete: 1 items") {
			t.Errorf("expected completion line, got %q", output.String())
		}
		if len(runner.controller.Items()) != 1 {
			t.Error("expected working feed populated")
		}
	})

	t.Run("FeedRun Rejects Bad Time Limit", func(t *testing.T) {
		runner, _ := newTestRunner(t, nil, nil)

		cmd := feedCommand(runner).Commands[0]
		if err := cmd.Run(ctx, []string{"run", "--time-limit", "5"}); err == nil {
			t.Error("expected error for invalid time limit")
		}
	})
}

func TestCaptionActions(t *testing.T) {
	ctx := context.Background()

	t.Run("CaptionsList Empty", func(t *testing.T) {
		captions := &tu.MockCaptionService{}
		runner, output := newTestRunner(t, nil, captions)

		cmd := captionsCommand(runner).Commands[0]
		if cmd.Name != "list" {
			t.Fatalf("expected list subcommand, got %q", cmd.Name)
		}
		if err := cmd.Run(ctx, []string{"list"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "No saved captions") {
			t.Errorf("expected empty notice, got %q", output.String())
		}
	})

	t.Run("CaptionsDelete", func(t *testing.T) {
		captions := &tu.MockCaptionService{}
		runner, output := newTestRunner(t, nil, captions)

		cmd := captionsCommand(runner).Commands[1]
		if cmd.Name != "delete" {
			t.Fatalf("expected delete subcommand, got %q", cmd.Name)
		}
		if err := cmd.Run(ctx, []string{"delete", "--id", "7"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if captions.DeleteCalls != 1 {
			t.Errorf("expected one delete call, got %d", captions.DeleteCalls)
		}
		if !strings.Contains(output.String(), "Caption 7 deleted") {
			t.Errorf("expected confirmation, got %q", output.String())
		}
	})
}

func TestTokenFile(t *testing.T) {
	t.Run("Write Read Clear Round Trip", func(t *testing.T) {
		config := shared.DefaultConfig()
		config.Auth.TokenPath = t.TempDir() + "/nested/token"

		if err := writeToken(config, "tok-123"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		token, err := readToken(config)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if token != "tok-123" {
			t.Errorf("unexpected token: %q", token)
		}

		if err := clearToken(config); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := readToken(config); err == nil {
			t.Error("expected error after clearing token")
		}
	})

	t.Run("Clear Of Absent File Is A No-Op", func(t *testing.T) {
		config := shared.DefaultConfig()
		config.Auth.TokenPath = t.TempDir() + "/absent"

		if err := clearToken(config); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}
