package importer

import (
	"encoding/json"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/alexanderramin/pomo/internal/domain"
)

// Three persisted layouts exist in the wild:
//
//	canonical:  {"date": "...", "activities": {"<name>": [actions]}}
//	wrapped:    {"date": "...", "activities": {"activities": {"<name>": [actions]}}}
//	flat:       {"<name>": [actions]}
//
// Normalize converts any of them to the canonical domain.DayLog. The flat
// layout carries no date, so the caller supplies the date taken from the
// file name.

type wrappedActivities struct {
	Activities map[string]domain.ActivityLog `json:"activities"`
}

type rawDayLog struct {
	Date       string          `json:"date"`
	Activities json.RawMessage `json:"activities"`
}

// Normalize parses one persisted day-log document in any known layout.
// The changed result reports whether the document needs rewriting to match
// the canonical layout.
func Normalize(data []byte, fallbackDate string) (day *domain.DayLog, changed bool, err error) {
	var raw rawDayLog
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("parsing day log: %w", err)
	}

	if raw.Date == "" {
		// Flat layout: the whole document is the activity map.
		var activities map[string]domain.ActivityLog
		if err := sonic.Unmarshal(data, &activities); err != nil {
			return nil, false, fmt.Errorf("parsing flat day log: %w", err)
		}
		return &domain.DayLog{Date: fallbackDate, Activities: activities}, true, nil
	}

	if len(raw.Activities) == 0 {
		// A day file written before any approved action has a date only.
		return &domain.DayLog{Date: raw.Date, Activities: map[string]domain.ActivityLog{}}, false, nil
	}

	var activities map[string]domain.ActivityLog
	if err := sonic.Unmarshal(raw.Activities, &activities); err == nil {
		if activities == nil {
			activities = map[string]domain.ActivityLog{}
		}
		return &domain.DayLog{Date: raw.Date, Activities: activities}, false, nil
	}

	// Wrapped layout: one extra "activities" nesting level.
	var wrapped wrappedActivities
	if err := sonic.Unmarshal(raw.Activities, &wrapped); err != nil || wrapped.Activities == nil {
		return nil, false, fmt.Errorf("day log for %s has an unrecognized activities layout", raw.Date)
	}
	return &domain.DayLog{Date: raw.Date, Activities: wrapped.Activities}, true, nil
}
