package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	require.Equal(t, "250 EGP", FormatPrice(250))
	require.Equal(t, "99.50 EGP", FormatPrice(99.5))
	require.Equal(t, "0 EGP", FormatPrice(0))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "Saturday, March 14, 2026", FormatDate(d))
	require.Equal(t, "TBA", FormatDate(time.Time{}))
}

func TestJoinInts(t *testing.T) {
	require.Equal(t, "1, 2, 5", JoinInts([]int{1, 2, 5}))
	require.Equal(t, "", JoinInts(nil))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc", Truncate("abc", 5))
	require.Equal(t, "ab…", Truncate("abcdef", 3))
	require.Equal(t, "", Truncate("abc", 0))
}
