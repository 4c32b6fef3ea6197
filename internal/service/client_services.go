package service

import (
	"time"

	"github.com/MKhiriev/signpost/internal/adapter"
	"github.com/MKhiriev/signpost/internal/config"
	"github.com/MKhiriev/signpost/internal/crypto"
	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/internal/store"
)

type ClientServices struct {
	CredentialService   CredentialService
	PolicyResolver      PolicyResolver
	AnnouncementService AnnouncementService
}

func NewClientServices(storages *store.ClientStorages, serviceAdapter adapter.ServiceAdapter, appCfg config.ClientApp, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		CredentialService:   NewCredentialService(storages.CredentialRepository, crypto.NewSealer(appCfg.StoreKey), logger),
		PolicyResolver:      NewPolicyResolver(serviceAdapter, logger),
		AnnouncementService: NewAnnouncementService(serviceAdapter, appCfg.FailureGranularity, time.Now, logger),
	}
}
