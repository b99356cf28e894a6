package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/app"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/config"
)

// withApp builds the composition context for a command and tears it down when
// the command finishes.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg := config.Load()

	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	return fn(cmd.Context(), a)
}
