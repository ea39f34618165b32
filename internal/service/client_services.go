package service

import (
	"context"

	"github.com/MKhiriev/go-mail-sync/internal/adapter"
	"github.com/MKhiriev/go-mail-sync/internal/config"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/store"
)

type ClientServices struct {
	SyncService ClientSyncService
	MailService ClientMailService
	AuthService ClientAuthService
}

func NewClientServices(cfg config.ClientSync, storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, push PushTransport, log *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(cfg, storages, serverAdapter, push, log)

	pendingChanged := func() {
		if concrete, ok := syncSvc.(*clientSyncService); ok {
			concrete.refreshPendingCount(context.Background())
		}
	}

	return &ClientServices{
		SyncService: syncSvc,
		MailService: NewClientMailService(storages, serverAdapter, push, pendingChanged, log),
		AuthService: NewClientAuthService(serverAdapter, syncSvc, log),
	}
}
