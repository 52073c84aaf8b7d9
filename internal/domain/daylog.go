package domain

import (
	"errors"
	"sort"
	"time"
)

// DateLayout is the canonical calendar-date form used for day keys and
// persisted file names.
const DateLayout = "2006-01-02"

var (
	// ErrSessionRunning signals a start against an activity whose log
	// already ends on an unmatched start.
	ErrSessionRunning = errors.New("a session is already in progress")

	// ErrNoActiveSession signals a stop against an activity with no
	// unmatched start.
	ErrNoActiveSession = errors.New("no active session for this activity")

	// ErrDuplicateAction signals a candidate identical to the last
	// recorded action for the activity.
	ErrDuplicateAction = errors.New("action duplicates the last recorded action")
)

type SessionState string

const (
	StateAbsent  SessionState = "absent"
	StateStopped SessionState = "stopped"
	StateRunning SessionState = "running"
)

// DayLog holds every activity's action log for one calendar date.
type DayLog struct {
	Date       string                 `json:"date"`
	Activities map[string]ActivityLog `json:"activities"`
}

// NewDayLog returns an empty day log for the given date.
func NewDayLog(date time.Time) *DayLog {
	return &DayLog{
		Date:       date.Format(DateLayout),
		Activities: map[string]ActivityLog{},
	}
}

// State derives the session state for an activity from the last element of
// its log. A missing activity is Absent; for transition purposes Absent and
// Stopped behave identically.
func (d *DayLog) State(activity string) SessionState {
	log, ok := d.Activities[activity]
	if !ok || len(log) == 0 {
		return StateAbsent
	}
	if log.Running() {
		return StateRunning
	}
	return StateStopped
}

// ValidateAppend checks whether the candidate action may be appended to the
// activity's log. It rejects duplicates of the last recorded action and
// transitions that would break the start/stop alternation.
func (d *DayLog) ValidateAppend(activity string, candidate Action) error {
	if last, ok := d.Activities[activity].Last(); ok && last.Equal(candidate) {
		return ErrDuplicateAction
	}
	switch candidate.Kind {
	case ActionStart:
		if d.State(activity) == StateRunning {
			return ErrSessionRunning
		}
	case ActionStop:
		if d.State(activity) != StateRunning {
			return ErrNoActiveSession
		}
	}
	return nil
}

// Append records the action for the activity. Callers validate first.
func (d *DayLog) Append(activity string, a Action) {
	if d.Activities == nil {
		d.Activities = map[string]ActivityLog{}
	}
	d.Activities[activity] = append(d.Activities[activity], a)
}

// ActivityNames returns the logged activity names in deterministic order.
func (d *DayLog) ActivityNames() []string {
	names := make([]string, 0, len(d.Activities))
	for name := range d.Activities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
