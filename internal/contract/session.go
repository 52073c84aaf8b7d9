package contract

import "github.com/alexanderramin/pomo/internal/domain"

// MutationOutcome classifies how a start or stop command ended. Only
// OutcomeApplied changed persisted state; every other outcome left the day
// log exactly as it was.
type MutationOutcome string

const (
	OutcomeApplied        MutationOutcome = "applied"
	OutcomeRefused        MutationOutcome = "refused"
	OutcomeDuplicate      MutationOutcome = "duplicate"
	OutcomeAlreadyRunning MutationOutcome = "already_running"
	OutcomeNotRunning     MutationOutcome = "not_running"
)

// Applied reports whether the mutation reached storage.
func (o MutationOutcome) Applied() bool { return o == OutcomeApplied }

// MutationResult describes the fate of one candidate action.
type MutationResult struct {
	Date     string
	Activity string
	Action   domain.Action
	Outcome  MutationOutcome
}

// ShowResponse carries an activity's full ordered action log for display.
// Found is false when the activity has no entry for the day.
type ShowResponse struct {
	Date     string
	Activity string
	Actions  domain.ActivityLog
	Found    bool
}

// RecapResponse carries the aggregated rows for one day, ordered by
// activity name.
type RecapResponse struct {
	Date string
	Rows []domain.RecapRow
}
