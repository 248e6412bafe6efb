// Package cli is the interactive terminal surface of the TaskManager client.
// It wires the gateway, the durable session store and the application
// services together and drives them from a small command loop.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/taskmanhq/taskman-cli/internal/client/client"
	"github.com/taskmanhq/taskman-cli/internal/client/config"
	"github.com/taskmanhq/taskman-cli/internal/client/nav"
	"github.com/taskmanhq/taskman-cli/internal/client/notify"
	"github.com/taskmanhq/taskman-cli/internal/client/services"
	"github.com/taskmanhq/taskman-cli/internal/client/session"
	"github.com/taskmanhq/taskman-cli/internal/logging"
)

type App struct {
	config     *config.Config
	log        logging.Logger
	db         *sql.DB
	gateway    client.Client
	controller *services.SessionController
	prefs      *services.PreferencesPanel
	notifier   notify.Notifier
	navigator  *nav.ScreenNavigator
	reader     *bufio.Reader
}

// NewApp builds the full application: logger, local database (with schema
// migrations), HTTP gateway and services.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewZerologLogger(os.Stderr, cfg.LogLevel, cfg.LogPretty)

	db, err := session.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	gateway := client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout)
	notifier := notify.NewConsoleNotifier(os.Stdout)
	navigator := nav.NewScreenNavigator(os.Stdout)
	store := session.NewStore(db)
	controller := services.NewSessionController(gateway, store, notifier, navigator, log)

	return &App{
		config:     cfg,
		log:        log,
		db:         db,
		gateway:    gateway,
		controller: controller,
		prefs:      services.NewPreferencesPanel(notifier),
		notifier:   notifier,
		navigator:  navigator,
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session and enters the command loop.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.controller.Restore(ctx); err != nil {
		return err
	}
	if sess := a.controller.Current(); sess != nil {
		a.log.Info(ctx, "session restored", "email", sess.User.Email)
		a.navigator.Go(nav.DestinationHome)
	}

	a.Root(ctx)
	return nil
}

// Close releases the gateway and the local database.
func (a *App) Close() {
	_ = a.gateway.Close()
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.controller.Current() != nil
}
