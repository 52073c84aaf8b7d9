package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pomo/internal/contract"
)

type SessionService interface {
	// Start begins a session for the activity at the given moment. A
	// session already in progress, a duplicate of the last recorded
	// action, or a declined confirmation all leave storage untouched and
	// are reported through the result's outcome.
	Start(ctx context.Context, activity string, at time.Time) (*contract.MutationResult, error)

	// Stop ends the activity's in-progress session at the given moment,
	// under the same gating as Start.
	Stop(ctx context.Context, activity string, at time.Time) (*contract.MutationResult, error)

	// Show returns the activity's full action log for the date of the
	// given moment. Read-only.
	Show(ctx context.Context, activity string, at time.Time) (*contract.ShowResponse, error)

	// Recap aggregates every activity of the day into per-activity
	// totals, measuring any unfinished session up to the given moment.
	Recap(ctx context.Context, at time.Time) (*contract.RecapResponse, error)
}

// Confirmer approves or declines a pending mutation before it reaches
// storage. Implementations may block on user input.
type Confirmer interface {
	Confirm(description string) (bool, error)
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(description string) (bool, error)

func (f ConfirmerFunc) Confirm(description string) (bool, error) { return f(description) }
