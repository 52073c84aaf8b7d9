package domain

import "time"

// RecapRow aggregates one activity's sessions for a day.
type RecapRow struct {
	Activity         string
	TotalTime        time.Duration
	FinishedSessions int
	OngoingSessions  int
}

// Recap pairs each activity's actions into sessions and sums their durations.
// Consecutive actions form pairs (actions[2i], actions[2i+1]); an odd trailing
// start counts as one ongoing session measured up to now. The pairing trusts
// the alternation invariant and does not inspect action kinds, so a log that
// was edited by hand produces a misleading total rather than an error.
func (d *DayLog) Recap(now time.Time) []RecapRow {
	rows := make([]RecapRow, 0, len(d.Activities))
	for _, activity := range d.ActivityNames() {
		actions := d.Activities[activity]
		row := RecapRow{
			Activity:         activity,
			FinishedSessions: len(actions) / 2,
			OngoingSessions:  len(actions) % 2,
		}
		for i := 0; i < row.FinishedSessions; i++ {
			row.TotalTime += actions[2*i+1].Time.Sub(actions[2*i].Time)
		}
		if row.OngoingSessions > 0 {
			row.TotalTime += now.Sub(actions[len(actions)-1].Time)
		}
		rows = append(rows, row)
	}
	return rows
}
