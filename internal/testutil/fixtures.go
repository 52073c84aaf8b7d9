package testutil

import (
	"context"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
)

// ScriptedConfirmer answers confirmation prompts from a fixed script and
// records every description it was asked about. Answers past the end of the
// script decline.
type ScriptedConfirmer struct {
	Answers      []bool
	Descriptions []string
}

func (c *ScriptedConfirmer) Confirm(description string) (bool, error) {
	c.Descriptions = append(c.Descriptions, description)
	if len(c.Descriptions) > len(c.Answers) {
		return false, nil
	}
	return c.Answers[len(c.Descriptions)-1], nil
}

// ApproveAll is a Confirmer that approves every pending action.
type ApproveAll struct{}

func (ApproveAll) Confirm(string) (bool, error) { return true, nil }

// DeclineAll is a Confirmer that declines every pending action.
type DeclineAll struct{}

func (DeclineAll) Confirm(string) (bool, error) { return false, nil }

// FailingDayLogRepo injects storage failures at precise points, enabling
// error-path tests without unreadable fixtures on disk.
type FailingDayLogRepo struct {
	LoadErr error
	SaveErr error
	Day     *domain.DayLog
}

func (r *FailingDayLogRepo) Load(ctx context.Context, date time.Time) (*domain.DayLog, error) {
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	if r.Day != nil {
		return r.Day, nil
	}
	return domain.NewDayLog(date), nil
}

func (r *FailingDayLogRepo) Save(ctx context.Context, day *domain.DayLog) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Day = day
	return nil
}

// DayLogWith builds a day log holding one activity's actions, alternating
// start/stop beginning with start, at the given times.
func DayLogWith(date time.Time, activity string, times ...time.Time) *domain.DayLog {
	day := domain.NewDayLog(date)
	for i, at := range times {
		kind := domain.ActionStart
		if i%2 == 1 {
			kind = domain.ActionStop
		}
		day.Append(activity, domain.Action{Kind: kind, Time: at})
	}
	return day
}
