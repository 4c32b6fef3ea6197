// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front end: a header with the
// session credentials and three tabs bound to the view-mode coordinator.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/signpost/internal/coordinator"
	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/internal/service"
	"github.com/MKhiriev/signpost/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	coord     *coordinator.Coordinator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, coord *coordinator.Coordinator, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, coord: coord, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the operator quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.coord, t.buildInfo, clipboard.WriteAll, t.logger)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
