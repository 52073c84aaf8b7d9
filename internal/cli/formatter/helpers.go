package formatter

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatDuration converts a duration into human-friendly whole minutes.
// Sub-minute remainders are dropped; negative durations clamp to zero.
func FormatDuration(d time.Duration) string {
	min := int(d.Minutes())
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// Clock renders a wall-clock time in the prompt-friendly 9:30am form.
func Clock(t time.Time) string {
	return t.Format("3:04pm")
}

// Recency renders how long ago (or ahead) a moment is, e.g. "25 minutes ago".
func Recency(t time.Time) string {
	return humanize.Time(t)
}
