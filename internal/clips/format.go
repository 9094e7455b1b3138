package clips

import (
	"fmt"
	"strconv"
)

const (
	kb = 1024
	mb = 1024 * kb
	gb = 1024 * mb
)

// FormatBytes renders a byte count as B, KB, MB or GB.
func FormatBytes(bytes int64) string {
	switch {
	case bytes < kb:
		return strconv.FormatInt(bytes, 10) + " B"
	case bytes < mb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/kb)
	case bytes < gb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/mb)
	default:
		return fmt.Sprintf("%.2f GB", float64(bytes)/gb)
	}
}

// Ratio returns part-to-whole as a percentage: from / to * 100.
// A zero denominator yields 0.
func Ratio(from, to int64) float64 {
	if to == 0 {
		return 0
	}
	return float64(from) / float64(to) * 100
}

// FormatRatio renders a percentage with two decimals.
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio)
}
