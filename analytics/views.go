// Package analytics shapes the backend's pre-aggregated dashboard
// numbers for terminal display. Nothing here computes statistics: the
// counts and percentages arrive summarized from the analytics
// endpoints and are only scaled into bar widths.
package analytics

import "github.com/eventx-studio/eventx-cli/api"

// Row is one bucket of a distribution, normalized from the per-
// attribute response shapes so the chart renderer handles them all
// alike.
type Row struct {
	Label      string
	Count      int
	Percentage float64
}

// AgeRows converts the backend's age distribution.
func AgeRows(buckets []api.AgeBucket) []Row {
	rows := make([]Row, len(buckets))
	for i, b := range buckets {
		rows[i] = Row{Label: b.Age, Count: b.Count, Percentage: b.Percentage}
	}
	return rows
}

// GenderRows converts the backend's gender distribution.
func GenderRows(buckets []api.GenderBucket) []Row {
	rows := make([]Row, len(buckets))
	for i, b := range buckets {
		rows[i] = Row{Label: b.Gender, Count: b.Count, Percentage: b.Percentage}
	}
	return rows
}

// InterestRows converts the backend's interests distribution.
func InterestRows(buckets []api.InterestBucket) []Row {
	rows := make([]Row, len(buckets))
	for i, b := range buckets {
		rows[i] = Row{Label: b.Interest, Count: b.Count, Percentage: b.Percentage}
	}
	return rows
}

// LocationRows converts the backend's location distribution.
func LocationRows(buckets []api.LocationBucket) []Row {
	rows := make([]Row, len(buckets))
	for i, b := range buckets {
		rows[i] = Row{Label: b.Location, Count: b.Count, Percentage: b.Percentage}
	}
	return rows
}

// BarWidth scales a row's percentage to a character width for the
// terminal bar chart. A non-zero percentage always gets at least one
// cell so small buckets stay visible.
func BarWidth(percentage float64, max int) int {
	if max <= 0 || percentage <= 0 {
		return 0
	}
	width := int(percentage / 100 * float64(max))
	if width < 1 {
		return 1
	}
	if width > max {
		return max
	}
	return width
}
