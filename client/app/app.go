// Package app assembles the client shell: configuration, logging, the
// session store, the identity client and the auth controller, ready for a
// UI to drive.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"ecoally/client/auth"
	"ecoally/client/config"
	"ecoally/client/gamify"
	"ecoally/client/identity"
	"ecoally/client/log"
	"ecoally/client/nav"
	"ecoally/client/session"
)

type App struct {
	Config   *config.Config
	Log      zerolog.Logger
	Tokens   session.Store
	Counters *gamify.Sync
	Nav      *nav.Navigator
	Identity identity.Service
	Auth     *auth.Controller
}

// New builds the client from configuration. The caller runs Start before
// rendering anything.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := log.New(cfg.Env)
	tokens := session.NewFileStore(cfg.TokenPath)
	counters := gamify.New()
	navigator := nav.New()
	svc := identity.NewClient(cfg.APIBaseURL, tokens)

	return &App{
		Config:   cfg,
		Log:      logger,
		Tokens:   tokens,
		Counters: counters,
		Nav:      navigator,
		Identity: svc,
		Auth:     auth.New(svc, tokens, counters, navigator, logger),
	}, nil
}

// Start runs the one-time session restore. Initial render is gated on its
// completion so no user action can race it.
func (a *App) Start(ctx context.Context) {
	a.Auth.Restore(ctx)
}
