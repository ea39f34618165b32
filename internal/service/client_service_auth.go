package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mail-sync/internal/adapter"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	sync    ClientSyncService
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, syncService ClientSyncService, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter: serverAdapter,
		sync:    syncService,
		logger:  log,
	}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	token, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Token{}, fmt.Errorf("login: %w", err)
	}

	if err = a.sync.Initialize(ctx, token); err != nil {
		return models.Token{}, fmt.Errorf("initialize sync engine: %w", err)
	}

	a.logger.Info().Str("func", "clientAuthService.Login").Msg("logged in, sync engine running")

	return token, nil
}

func (a *clientAuthService) Logout() {
	a.sync.Shutdown()
	a.logger.Info().Str("func", "clientAuthService.Logout").Msg("logged out, sync engine stopped")
}
