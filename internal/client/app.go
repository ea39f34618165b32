package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-mail-sync/internal/config"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/service"
	"github.com/MKhiriev/go-mail-sync/internal/transport"
	"github.com/MKhiriev/go-mail-sync/internal/workers"
	"github.com/MKhiriev/go-mail-sync/models"
)

// App is the headless client runtime: it logs in, keeps the sync engine
// running, and blocks until the process is asked to stop.
type App struct {
	services *service.ClientServices
	poll     *workers.SyncPollWorker
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, push *transport.Transport, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	if push == nil {
		return nil, errors.New("push transport is required")
	}

	poll := workers.NewSyncPollWorker(services.SyncService, push, workersCfg.SyncInterval, log)

	return &App{
		services: services,
		poll:     poll,
		logger:   log,
	}, nil
}

// Run starts the sync engine and blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	creds := models.Credentials{
		Email:    os.Getenv("MAILSYNC_EMAIL"),
		Password: os.Getenv("MAILSYNC_PASSWORD"),
	}
	if creds.Email == "" || creds.Password == "" {
		return errors.New("MAILSYNC_EMAIL and MAILSYNC_PASSWORD must be set")
	}

	if _, err := a.services.AuthService.Login(ctx, creds); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer a.services.AuthService.Logout()

	unsubscribeState := a.services.SyncService.Subscribe(a.logStateChange)
	defer unsubscribeState()
	unsubscribeNotes := a.services.SyncService.SubscribeNotifications(a.logNotification)
	defer unsubscribeNotes()

	workers.New(a.poll).Run()
	defer a.poll.Stop()

	a.logger.Info().Str("func", "App.Run").Msg("mail sync client running, press Ctrl+C to stop")
	<-ctx.Done()
	a.logger.Info().Str("func", "App.Run").Msg("shutting down")

	return nil
}

func (a *App) logStateChange(state models.SyncState) {
	event := a.logger.Debug().
		Str("func", "App.logStateChange").
		Str("connection", string(state.ConnectionStatus)).
		Bool("syncing", state.IsSyncing).
		Int("pending", state.PendingChanges)
	if state.LastSync != nil {
		event = event.Time("last_sync", *state.LastSync)
	}
	if state.LastSyncError != "" {
		event = event.Str("last_sync_error", state.LastSyncError)
	}
	event.Msg("sync state changed")
}

func (a *App) logNotification(frame models.Frame) {
	a.logger.Info().
		Str("func", "App.logNotification").
		Str("type", string(frame.Type)).
		Msg("server notification")
}
