package service

import "github.com/MKhiriev/signpost/models"

// SetOutcome is the result of a set.
type SetOutcome = models.Outcome

// DeleteOutcome is the result of a delete. OK is the confirmation signal.
type DeleteOutcome = models.Outcome
