package utils

import (
	"fmt"

	"github.com/MKhiriev/signpost/models"
	"github.com/dustin/go-humanize"
)

// DescribeTimestamp renders ts as "2026-10-20 18:00 UTC (in 3 hours)". When ts
// is nil or empty, absent is returned. Unparsed values are shown raw.
func DescribeTimestamp(ts *models.Timestamp, absent string) string {
	if ts == nil || ts.IsEmpty() {
		return absent
	}
	if ts.Time.IsZero() {
		return ts.Raw
	}
	return fmt.Sprintf("%s (%s)", ts.Time.Format("2006-01-02 15:04 MST"), humanize.Time(ts.Time))
}

// DescribePublic renders the record's public flag, or absent when the
// service did not send one.
func DescribePublic(public *bool, absent string) string {
	switch {
	case public == nil:
		return absent
	case *public:
		return "yes"
	default:
		return "no"
	}
}
