package utils

import (
	"fmt"
	"time"
)

// FormatTrackDuration formats a video duration as a track label, e.g. "3:45"
// or "1:23:45". An unknown (non-positive) duration becomes "Unknown".
func FormatTrackDuration(d time.Duration) string {
	if d <= 0 {
		return "Unknown"
	}
	totalSeconds := int(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
