package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUntil(t *testing.T) {
	now := time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)
	target := time.Date(2026, 5, 23, 11, 0, 0, 0, time.UTC)

	r := Until(target, now)

	require.Equal(t, Remaining{Days: 3, Hours: 1, Minutes: 0, Seconds: 0}, r)
	require.False(t, r.Zero())
}

func TestUntilSubDayParts(t *testing.T) {
	now := time.Date(2026, 5, 23, 10, 58, 30, 0, time.UTC)
	target := time.Date(2026, 5, 23, 11, 0, 0, 0, time.UTC)

	require.Equal(t, Remaining{Minutes: 1, Seconds: 30}, Until(target, now))
}

func TestUntilClampsAfterEvent(t *testing.T) {
	target := time.Date(2026, 5, 23, 11, 0, 0, 0, time.UTC)

	r := Until(target, target.Add(time.Hour))

	require.True(t, r.Zero())
	require.Equal(t, Remaining{}, r)
}

func TestUntilExactMoment(t *testing.T) {
	target := time.Date(2026, 5, 23, 11, 0, 0, 0, time.UTC)

	require.True(t, Until(target, target).Zero())
}
