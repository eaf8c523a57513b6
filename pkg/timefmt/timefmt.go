package timefmt

import (
	"fmt"
	"time"
)

// HMS renders a duration as HH:MM:SS. Hours are not wrapped into days, so a
// thirty-hour itinerary renders as "30:00:00".
func HMS(d time.Duration) string {
	seconds := int(d.Seconds())

	negative := seconds < 0
	if negative {
		seconds = -seconds
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60

	result := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	if negative {
		result = "-" + result
	}

	return result
}
