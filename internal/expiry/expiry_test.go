package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func fixed(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestToRelativeSeconds_EmptyIsSentinel(t *testing.T) {
	for _, now := range []time.Time{base, base.Add(-100 * 365 * 24 * time.Hour), time.Unix(0, 0)} {
		got := NewCalculator(fixed(now)).ToRelativeSeconds(time.Time{})
		assert.Equal(t, NoExpiry, got)
		assert.NotZero(t, got)
	}
}

func TestToRelativeSeconds_OneHour(t *testing.T) {
	c := NewCalculator(nil)
	got := c.ToRelativeSeconds(time.Now().Add(time.Hour))
	assert.GreaterOrEqual(t, got, int64(3599))
	assert.LessOrEqual(t, got, int64(3600))
}

func TestToRelativeSeconds_Floors(t *testing.T) {
	tests := []struct {
		name      string
		directive time.Time
		want      int64
	}{
		{name: "exact hour", directive: base.Add(time.Hour), want: 3600},
		{name: "sub-second remainder dropped", directive: base.Add(time.Hour - 300*time.Millisecond), want: 3599},
		{name: "now", directive: base, want: 0},
		{name: "half second past", directive: base.Add(-500 * time.Millisecond), want: -1},
		{name: "a minute past", directive: base.Add(-time.Minute), want: -60},
	}

	c := NewCalculator(fixed(base))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ToRelativeSeconds(tt.directive))
		})
	}
}

func TestToRelativeSeconds_ReadsClockAtCall(t *testing.T) {
	now := base
	c := NewCalculator(func() time.Time { return now })
	directive := base.Add(time.Hour)

	assert.Equal(t, int64(3600), c.ToRelativeSeconds(directive))
	now = now.Add(10 * time.Minute)
	assert.Equal(t, int64(3000), c.ToRelativeSeconds(directive))
}

func TestParseDirective(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "", want: time.Time{}},
		{in: "   ", want: time.Time{}},
		{in: "2026-10-20T18:00", want: time.Date(2026, 10, 20, 18, 0, 0, 0, loc)},
		{in: "2026-10-20T18:00:30", want: time.Date(2026, 10, 20, 18, 0, 30, 0, loc)},
		{in: "2026-10-20 18:00", want: time.Date(2026, 10, 20, 18, 0, 0, 0, loc)},
		{in: "2026-10-20T18:00:00Z", want: time.Date(2026, 10, 20, 18, 0, 0, 0, time.UTC)},
		{in: "tomorrow", wantErr: true},
		{in: "2026-13-01T00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirective(tt.in, loc)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDirective)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestValidateFuture(t *testing.T) {
	assert.NoError(t, ValidateFuture(time.Time{}, base))
	assert.NoError(t, ValidateFuture(base.Add(time.Second), base))
	assert.ErrorIs(t, ValidateFuture(base, base), ErrNotInFuture)
	assert.ErrorIs(t, ValidateFuture(base.Add(-time.Hour), base), ErrNotInFuture)
}

func TestValidateFuture_SubSecondIsRejected(t *testing.T) {
	c := NewCalculator(func() time.Time { return base })

	for _, d := range []time.Duration{time.Nanosecond, 500 * time.Millisecond, time.Second - time.Nanosecond} {
		directive := base.Add(d)
		assert.Zero(t, c.ToRelativeSeconds(directive), "%s floors to 0", d)
		assert.ErrorIs(t, ValidateFuture(directive, base), ErrNotInFuture, "%s ahead", d)
	}

	assert.NoError(t, ValidateFuture(base.Add(time.Second), base))
	assert.EqualValues(t, 1, c.ToRelativeSeconds(base.Add(time.Second)))
}

func TestFormat(t *testing.T) {
	assert.Empty(t, Format(time.Time{}))

	d := time.Date(2026, 10, 20, 18, 0, 0, 0, time.UTC)
	s := Format(d)
	assert.Equal(t, "2026-10-20T18:00", s)

	back, err := ParseDirective(s, time.UTC)
	require.NoError(t, err)
	assert.True(t, d.Equal(back))
}
