// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package expiry converts the operator's absolute expiration instant into the
// relative TTL the announcement service expects.
//
// A zero [time.Time] is the empty directive and means "never expires". It is
// sent as [NoExpiry], never as 0, because a TTL of 0 would mean "already
// expired".
package expiry

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// NoExpiry is the relative-seconds sentinel for "never expires".
const NoExpiry int64 = -1

// Layouts accepted by [ParseDirective], tried in order. The first four are
// zone-less and interpreted in the caller's location.
var directiveLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

var (
	// ErrInvalidDirective means the input matched no accepted layout.
	ErrInvalidDirective = errors.New("invalid expiry date-time")
	// ErrNotInFuture means the directive is at or before now.
	ErrNotInFuture = errors.New("expiry must be in the future")
)

// Calculator turns directives into relative seconds against its clock.
type Calculator struct {
	now func() time.Time
}

// NewCalculator returns a Calculator reading the given clock. A nil clock
// means [time.Now].
func NewCalculator(now func() time.Time) *Calculator {
	if now == nil {
		now = time.Now
	}
	return &Calculator{now: now}
}

// Now returns the calculator's current instant.
func (c *Calculator) Now() time.Time {
	return c.now()
}

// ToRelativeSeconds returns [NoExpiry] for the empty directive, otherwise
// floor(directive - now) in whole seconds. Zero and negative results are
// returned as computed; rejecting past instants is [ValidateFuture]'s job.
func (c *Calculator) ToRelativeSeconds(directive time.Time) int64 {
	if directive.IsZero() {
		return NoExpiry
	}
	return floorSeconds(directive.Sub(c.now()))
}

func floorSeconds(d time.Duration) int64 {
	return int64(math.Floor(d.Seconds()))
}

// ParseDirective parses operator input in datetime-local shape
// ("2006-01-02T15:04", optionally with seconds, "T" or a space as separator)
// interpreted in loc, or RFC 3339 with its own offset. Blank input is the
// empty directive.
func ParseDirective(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range directiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DDTHH:MM)", ErrInvalidDirective, s)
}

// ValidateFuture accepts the empty directive and any instant at least one
// whole second after now. Anything closer would floor to a TTL of 0, which
// the service reads as already expired.
func ValidateFuture(directive, now time.Time) error {
	if directive.IsZero() {
		return nil
	}
	if floorSeconds(directive.Sub(now)) < 1 {
		return fmt.Errorf("%w: %s is not after %s", ErrNotInFuture,
			directive.Format("2006-01-02 15:04:05"), now.In(directive.Location()).Format("2006-01-02 15:04:05"))
	}
	return nil
}

// Format renders a directive the way [ParseDirective] reads it back, or ""
// for the empty directive.
func Format(directive time.Time) string {
	if directive.IsZero() {
		return ""
	}
	return directive.Format(directiveLayouts[0])
}
