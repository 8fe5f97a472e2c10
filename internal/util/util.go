package util

import (
	"fmt"
	"math"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDistance formats meters the way a rider reads them (e.g., "850 m", "1.2 km").
func FormatDistance(meters float64) string {
	if meters < 0 || math.IsNaN(meters) {
		return "unknown"
	}

	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}

	return fmt.Sprintf("%.1f km", meters/1000)
}
