package tui

import (
	"github.com/MKhiriev/signpost/internal/coordinator"
	"github.com/MKhiriev/signpost/models"
)

type policyResolvedMsg struct {
	policy models.InstancePolicy
}

type secretLoadedMsg struct {
	secret string
	found  bool
	err    error
}

type secretSavedMsg struct {
	secret string
	err    error
}

type actionDoneMsg struct {
	result coordinator.Result
}
