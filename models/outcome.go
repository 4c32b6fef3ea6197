package models

import "fmt"

// Status is the overall result of a set or delete.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailed
)

func (s Status) String() string {
	if s == StatusSuccess {
		return "success"
	}
	return "failed"
}

// FailureKind classifies why a set or delete failed.
type FailureKind int

const (
	KindNone FailureKind = iota
	// KindValidation means the request was never sent.
	KindValidation
	// KindTransport means no response was received.
	KindTransport
	// KindAuthorization means the service rejected the credentials.
	KindAuthorization
	// KindNotFound means the service reported no such key.
	KindNotFound
	// KindService covers every other non-success response.
	KindService
)

func (k FailureKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not found"
	case KindService:
		return "service"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Outcome is what a mutating operation reports to the UI. It never carries a
// panic or an unhandled error; Err is kept for logging and errors.Is.
type Outcome struct {
	Status  Status
	Kind    FailureKind
	Message string
	Err     error
}

// OK reports whether the operation succeeded.
func (o Outcome) OK() bool {
	return o.Status == StatusSuccess
}

// Succeeded returns a successful outcome carrying msg.
func Succeeded(msg string) Outcome {
	return Outcome{Status: StatusSuccess, Kind: KindNone, Message: msg}
}
