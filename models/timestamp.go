// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Timestamp is a service-assigned instant. The service is not strict about the
// format, so Raw always keeps what was received and Time is set only when the
// value could be parsed (RFC 3339, RFC 1123, or unix seconds).
type Timestamp struct {
	Time time.Time
	Raw  string
}

// IsEmpty reports whether nothing usable was received.
func (t Timestamp) IsEmpty() bool {
	return t.Time.IsZero() && t.Raw == ""
}

// String returns the parsed instant in RFC 3339, or the raw value.
func (t Timestamp) String() string {
	if !t.Time.IsZero() {
		return t.Time.Format(time.RFC3339)
	}
	return t.Raw
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	if b[0] != '"' {
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		t.Raw = n.String()
		if secs, err := n.Int64(); err == nil {
			t.Time = time.Unix(secs, 0).UTC()
		} else if f, err := n.Float64(); err == nil {
			t.Time = time.Unix(0, int64(f*float64(time.Second))).UTC()
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t.Raw = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, t.Raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	if secs, err := strconv.ParseInt(t.Raw, 10, 64); err == nil {
		t.Time = time.Unix(secs, 0).UTC()
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
