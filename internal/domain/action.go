package domain

import "time"

type ActionKind string

const (
	ActionStart ActionKind = "start"
	ActionStop  ActionKind = "stop"
)

// Action is one timestamped start or stop event for an activity.
// Actions are immutable once appended to a log.
type Action struct {
	Kind ActionKind `json:"action"`
	Time time.Time  `json:"time"`
}

// Equal reports whether two actions have the same kind and the same instant.
func (a Action) Equal(other Action) bool {
	return a.Kind == other.Kind && a.Time.Equal(other.Time)
}

// ActivityLog is the ordered action sequence for one activity within a day.
// Under correct use actions strictly alternate start, stop, start, stop, ...
// beginning with start; the sequence may end on an unmatched start (a session
// still in progress) but never holds two consecutive actions of the same kind.
// Appends are gated on that invariant; a log edited by hand is not repaired.
type ActivityLog []Action

// Last returns the most recent action, if any.
func (l ActivityLog) Last() (Action, bool) {
	if len(l) == 0 {
		return Action{}, false
	}
	return l[len(l)-1], true
}

// Running reports whether the log ends on an unmatched start.
func (l ActivityLog) Running() bool {
	last, ok := l.Last()
	return ok && last.Kind == ActionStart
}
