package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/docsight/docsight/internal/config"
	"github.com/docsight/docsight/internal/documents"
	"github.com/docsight/docsight/internal/gateway"
	"github.com/docsight/docsight/internal/session"
	"github.com/docsight/docsight/pkg/logging"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "docsight",
	Short:         "Client for the document analysis service",
	Long:          "docsight uploads documents to the analysis service, tracks them through processing, and retrieves their insights.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml")

	rootCmd.AddCommand(
		registerCmd(),
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		uploadCmd(),
		listCmd(),
		showCmd(),
		deleteCmd(),
		recentCmd(),
		statsCmd(),
		processCmd(),
		statusCmd(),
		insightsCmd(),
	)
}

// app bundles the wired subsystems every command needs.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	gw      *gateway.Client
	session *session.Session
	cache   *documents.Cache
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.New(&cfg.Logging)
	gw := gateway.New(cfg.Client.BaseURL, cfg.Client.TimeoutDuration(), logger)

	return &app{
		cfg:     cfg,
		logger:  logger,
		gw:      gw,
		session: session.New(gw, cfg.Session.TokenPath, logger),
		cache:   documents.NewCache(gw, logger),
	}, nil
}

// requireAuth restores the persisted session, forcing logout when the
// profile check fails. Authenticated commands call it before any API work.
func (a *app) requireAuth(ctx context.Context) (*gateway.User, error) {
	user, err := a.session.Restore(ctx)
	if err != nil {
		return nil, fmt.Errorf("not authenticated (run 'docsight login'): %w", err)
	}
	return user, nil
}
