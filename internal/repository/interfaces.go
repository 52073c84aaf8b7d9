package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
)

type DayLogRepo interface {
	// Load returns the persisted log for the date, or a fresh empty log
	// when none exists yet. It fails only on unreadable or malformed
	// storage.
	Load(ctx context.Context, date time.Time) (*domain.DayLog, error)

	// Save writes the full day log to the location keyed by its date,
	// replacing any prior content.
	Save(ctx context.Context, day *domain.DayLog) error
}
