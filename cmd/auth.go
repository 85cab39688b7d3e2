package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rkhatta1/TheVersusProject/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin exchanges credentials for a bearer token and stores it locally.
//
// The session controller switches to the new identity immediately, which
// reloads the working feed from that identity's cache partition.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	password := cmd.String("password")

	r.logger.Info("logging in", "username", username)

	token, err := r.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := writeToken(r.config, token); err != nil {
		r.logger.Warnf("failed to store token: %v", err)
	}

	r.controller.SetIdentity(token)

	return r.writePlain("✓ Logged in as %s\n", username)
}

// AuthRegister creates an account.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	password := cmd.String("password")

	if err := r.auth.Register(ctx, username, password); err != nil {
		return err
	}

	return r.writePlain("✓ Account created. Run 'versus auth login' to sign in.\n")
}

// AuthLogout discards the stored token and resets the session to guest.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := clearToken(r.config); err != nil {
		r.logger.Warnf("failed to remove token file: %v", err)
	}

	r.controller.Logout()

	return r.writePlain("✓ Logged out\n")
}

// AuthStatus reports whether a stored identity is present.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if r.controller.Identity() == "" {
		return r.writePlain("Not authenticated (guest session)\n")
	}
	return r.writePlain("✓ Authenticated\n")
}

// tokenPath resolves the configured token file location, expanding a leading ~.
func tokenPath(config *shared.Config) string {
	path := config.Auth.TokenPath
	if path == "" {
		path = "~/.versus/token"
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}

// readToken loads the stored bearer token, if any.
func readToken(config *shared.Config) (string, error) {
	data, err := os.ReadFile(tokenPath(config))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// writeToken stores the bearer token with owner-only permissions.
func writeToken(config *shared.Config, token string) error {
	path := tokenPath(config)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// clearToken removes the stored bearer token.
func clearToken(config *shared.Config) error {
	err := os.Remove(tokenPath(config))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
