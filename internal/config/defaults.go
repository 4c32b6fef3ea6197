// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultHTTPAddress    = "http://localhost:5000"
	defaultRequestTimeout = 10 * time.Second
	defaultDBFile         = "signpost.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			FailureGranularity: string(GranularityDistinct),
			LogLevel:           "info",
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN()},
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}

// defaultDSN places the database in the user config directory, or in the
// working directory when that cannot be resolved.
func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return defaultDBFile
	}
	return filepath.Join(dir, "signpost", defaultDBFile)
}
