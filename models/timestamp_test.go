// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncement_Decode(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantContent string
		wantExpiry  bool
		wantCreated time.Time
	}{
		{
			name:        "content only",
			body:        `{"content":"Sale!"}`,
			wantContent: "Sale!",
		},
		{
			name:        "rfc3339 timestamps",
			body:        `{"content":"x","created_at":"2026-10-18T10:00:00Z","expires_at":"2026-10-19T10:00:00Z"}`,
			wantContent: "x",
			wantExpiry:  true,
			wantCreated: time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC),
		},
		{
			name:        "unix seconds",
			body:        `{"content":"x","created_at":1760781600}`,
			wantContent: "x",
			wantCreated: time.Unix(1760781600, 0).UTC(),
		},
		{
			name:        "null expiry",
			body:        `{"content":"x","expires_at":null}`,
			wantContent: "x",
		},
		{
			name:        "extra fields ignored",
			body:        `{"content":"x","secret":"s1","public":true}`,
			wantContent: "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Announcement
			require.NoError(t, json.Unmarshal([]byte(tt.body), &a))
			assert.Equal(t, tt.wantContent, a.Content)
			assert.Equal(t, tt.wantExpiry, a.HasExpiry())
			if !tt.wantCreated.IsZero() {
				require.NotNil(t, a.CreatedAt)
				assert.True(t, tt.wantCreated.Equal(a.CreatedAt.Time))
			}
		})
	}
}

func TestTimestamp_KeepsUnparsedRaw(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"next tuesday"`), &ts))
	assert.True(t, ts.Time.IsZero())
	assert.Equal(t, "next tuesday", ts.String())
	assert.False(t, ts.IsEmpty())
}

func TestInstancePolicy(t *testing.T) {
	assert.Equal(t, "public", PolicyPublic.String())
	assert.Equal(t, "private", PolicyPrivate.String())
	assert.False(t, PolicyPublic.RequiresMasterPassword())
	assert.True(t, PolicyPrivate.RequiresMasterPassword())
}

func TestAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", " ")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "N/A", AppBuildInfo{}.BuildVersion())
}
