// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container populated by every
// source before merging.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client behaviour settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local credential store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote announcement service settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flag: -c / --config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client-level settings.
type App struct {
	// StoreKey seals the persisted secret at rest when non-empty.
	// Env: APP_STORE_KEY
	StoreKey string `env:"STORE_KEY"`

	// FailureGranularity selects how set/delete failures are reported:
	// "distinct" or "conflated".
	// Env: APP_FAILURE_GRANULARITY
	FailureGranularity string `env:"FAILURE_GRANULARITY"`

	// MasterPassword pre-fills the master password for non-interactive use.
	// Env: APP_MASTER_PASSWORD
	MasterPassword string `env:"MASTER_PASSWORD"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the interactive client writes its logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for the announcement service transport.
type Adapter struct {
	// HTTPAddress is the service base URL, including any path prefix
	// (e.g. "https://signpost.example/api").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single round trip (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges configuration from defaults, the
// optional JSON file, environment variables and the given flag values.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
