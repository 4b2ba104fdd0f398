package util

import "fmt"

// ClockTimestamp formats a second offset as H:MM:SS, the way scene ranges
// are rendered ("1:23:45"). Hours are not zero-padded.
func ClockTimestamp(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	remaining := seconds % 3600

	return fmt.Sprintf("%d:%02d:%02d", hours, remaining/60, remaining%60)
}
