package utils

import (
	"strconv"
	"strings"
	"time"
)

// FormatPrice renders a price in Egyptian pounds the way the event
// listings display it. Whole amounts drop the decimals.
func FormatPrice(amount float64) string {
	if amount == float64(int64(amount)) {
		return strconv.FormatInt(int64(amount), 10) + " EGP"
	}
	return strconv.FormatFloat(amount, 'f', 2, 64) + " EGP"
}

// FormatDate renders an event date in the long form used across the
// listing and ticket views, e.g. "Monday, January 2, 2026".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "TBA"
	}
	return t.Format("Monday, January 2, 2006")
}

// JoinInts renders a list of seat numbers as "1, 2, 5".
func JoinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// Truncate shortens s to at most n runes, appending an ellipsis when
// anything was cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
