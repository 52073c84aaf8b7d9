package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// clockFlag is a pflag.Value holding a wall-clock time in the 9:30am form.
type clockFlag struct {
	value time.Time
	set   bool
}

var _ pflag.Value = (*clockFlag)(nil)

func (f *clockFlag) String() string {
	if !f.set {
		return ""
	}
	return f.value.Format("3:04pm")
}

func (f *clockFlag) Set(s string) error {
	parsed, err := time.Parse("3:04pm", strings.ToLower(s))
	if err != nil {
		return fmt.Errorf("invalid time %q: use HH:MMam or HH:MMpm", s)
	}
	f.value = parsed
	f.set = true
	return nil
}

func (f *clockFlag) Type() string { return "time" }

// dateFlag is a pflag.Value holding a calendar date in the MM-DD-YY form.
type dateFlag struct {
	value time.Time
	set   bool
}

var _ pflag.Value = (*dateFlag)(nil)

func (f *dateFlag) String() string {
	if !f.set {
		return ""
	}
	return f.value.Format("01-02-06")
}

func (f *dateFlag) Set(s string) error {
	parsed, err := time.Parse("01-02-06", s)
	if err != nil {
		return fmt.Errorf("invalid date %q: use MM-DD-YY", s)
	}
	f.value = parsed
	f.set = true
	return nil
}

func (f *dateFlag) Type() string { return "date" }

// mergeMoment combines the optional time and date flags into one moment.
// With neither flag the current moment is used, truncated to the minute;
// with only one flag the missing half is filled from the current moment.
func mergeMoment(now time.Time, clock clockFlag, date dateFlag) time.Time {
	switch {
	case !clock.set && !date.set:
		return now.Truncate(time.Minute)
	case !clock.set:
		y, m, d := date.value.Date()
		return time.Date(y, m, d, now.Hour(), now.Minute(), 0, 0, now.Location())
	case !date.set:
		y, m, d := now.Date()
		return time.Date(y, m, d, clock.value.Hour(), clock.value.Minute(), 0, 0, now.Location())
	default:
		y, m, d := date.value.Date()
		return time.Date(y, m, d, clock.value.Hour(), clock.value.Minute(), 0, 0, now.Location())
	}
}
