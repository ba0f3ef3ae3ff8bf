package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eventx-studio/eventx-cli/analytics"
	"github.com/eventx-studio/eventx-cli/api"
)

func TestRows(t *testing.T) {
	rows := analytics.AgeRows([]api.AgeBucket{
		{Age: "18-24", Count: 12, Percentage: 30},
		{Age: "25-34", Count: 28, Percentage: 70},
	})
	require.Equal(t, []analytics.Row{
		{Label: "18-24", Count: 12, Percentage: 30},
		{Label: "25-34", Count: 28, Percentage: 70},
	}, rows)
}

func TestBarWidth(t *testing.T) {
	require.Equal(t, 0, analytics.BarWidth(0, 40))
	require.Equal(t, 40, analytics.BarWidth(100, 40))
	require.Equal(t, 20, analytics.BarWidth(50, 40))
	// Tiny but non-zero buckets stay visible.
	require.Equal(t, 1, analytics.BarWidth(0.5, 40))
	// Server-side rounding can push past 100.
	require.Equal(t, 40, analytics.BarWidth(120, 40))
	require.Equal(t, 0, analytics.BarWidth(50, 0))
}
