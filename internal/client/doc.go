// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the service adapter, the local credential store, the services and
// the view-mode coordinator into one process lifecycle shared by the
// interactive TUI and the one-shot commands.
package client
