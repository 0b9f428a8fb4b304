package errorkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewBacking(t *testing.T) {
	b := NewBacking("invalidFormat", SourceInput, WithTimestamp(42), WithReason("bad email"))

	require.Equal(t, "invalidFormat", b.Type())
	require.Equal(t, SourceInput, b.Source())

	ts, ok := b.Timestamp()
	require.True(t, ok)
	require.Equal(t, int64(42), ts)

	reason, ok := b.Reason()
	require.True(t, ok)
	require.Equal(t, "bad email", reason)
}

func TestNewBacking_DefaultsAbsent(t *testing.T) {
	b := NewBacking("generic", SourceGeneric)

	ts, ok := b.Timestamp()
	require.False(t, ok)
	require.Zero(t, ts)

	reason, ok := b.Reason()
	require.False(t, ok)
	require.Empty(t, reason)
}

func TestNewBacking_ZeroValuesArePresent(t *testing.T) {
	b := NewBacking("generic", SourceGeneric, WithTimestamp(0), WithReason(""))

	_, ok := b.Timestamp()
	require.True(t, ok)

	_, ok = b.Reason()
	require.True(t, ok)

	require.NotEqual(t, NewBacking("generic", SourceGeneric), b)
}

func TestNewBacking_NilOptionIgnored(t *testing.T) {
	b := NewBacking("generic", SourceGeneric, nil, WithReason("r"))

	reason, ok := b.Reason()
	require.True(t, ok)
	require.Equal(t, "r", reason)
}

func TestNewBacking_LastOptionWins(t *testing.T) {
	b := NewBacking("generic", SourceGeneric, WithReason("first"), WithReason("second"))

	reason, _ := b.Reason()
	require.Equal(t, "second", reason)
}

func TestWithTime(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	b := NewBacking("generic", SourceGeneric, WithTime(now))

	ts, ok := b.Timestamp()
	require.True(t, ok)
	require.Equal(t, now.UnixMilli(), ts)
}

func TestWithReasonf(t *testing.T) {
	b := NewBacking("generic", SourceGeneric, WithReasonf("field %s too long: %d", "name", 300))

	reason, _ := b.Reason()
	require.Equal(t, "field name too long: 300", reason)
}

func TestBacking_Equal(t *testing.T) {
	base := NewBacking("generic", SourceGeneric, WithTimestamp(1), WithReason("r"))

	tests := []struct {
		name  string
		other Backing[TestSource]
		want  bool
	}{
		{"identical", NewBacking("generic", SourceGeneric, WithTimestamp(1), WithReason("r")), true},
		{"option order", NewBacking("generic", SourceGeneric, WithReason("r"), WithTimestamp(1)), true},
		{"different type", NewBacking("other", SourceGeneric, WithTimestamp(1), WithReason("r")), false},
		{"different source", NewBacking("generic", SourceInput, WithTimestamp(1), WithReason("r")), false},
		{"different timestamp", NewBacking("generic", SourceGeneric, WithTimestamp(2), WithReason("r")), false},
		{"different reason", NewBacking("generic", SourceGeneric, WithTimestamp(1), WithReason("x")), false},
		{"missing timestamp", NewBacking("generic", SourceGeneric, WithReason("r")), false},
		{"missing reason", NewBacking("generic", SourceGeneric, WithTimestamp(1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, base.Equal(tt.other))
			require.Equal(t, tt.want, base == tt.other)
		})
	}
}
