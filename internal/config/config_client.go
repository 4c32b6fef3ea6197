package config

import (
	"fmt"
	"strings"
	"time"
)

// FailureGranularity controls how much of the service's failure detail the
// set and delete operations surface.
type FailureGranularity string

const (
	// GranularityDistinct surfaces authorization and not-found failures
	// separately, using the service's own message when it sends one.
	GranularityDistinct FailureGranularity = "distinct"
	// GranularityConflated reports every set/delete failure with one generic
	// message.
	GranularityConflated FailureGranularity = "conflated"
)

// ClientApp holds client behaviour settings.
type ClientApp struct {
	// StoreKey seals the persisted secret at rest when non-empty.
	StoreKey string
	// FailureGranularity selects set/delete failure reporting.
	FailureGranularity FailureGranularity
	// MasterPassword pre-fills the session master password.
	MasterPassword string
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogFile is the interactive client log destination.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the service base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for one outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration. flags holds
// the values parsed from the command line, see [FlagsConfig].
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			StoreKey:           cfg.App.StoreKey,
			FailureGranularity: FailureGranularity(strings.ToLower(strings.TrimSpace(cfg.App.FailureGranularity))),
			MasterPassword:     cfg.App.MasterPassword,
			LogLevel:           cfg.App.LogLevel,
			LogFile:            cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	return clientCfg, clientCfg.validate()
}
