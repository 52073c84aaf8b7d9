package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/pomo/internal/contract"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events. It is the only event
// sink the engine writes to; nothing in the service layer touches a global
// logger.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes use-case events to the provided writer.
// Events for mutations that were skipped or declined log at warn level,
// failures at error, everything else at info.
func NewLogUseCaseObserver(w io.Writer, level slog.Level) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "session_use_case", attrs...)
		return
	}
	if outcome, ok := event.Fields["outcome"].(string); ok {
		switch contract.MutationOutcome(outcome) {
		case contract.OutcomeDuplicate, contract.OutcomeAlreadyRunning, contract.OutcomeNotRunning, contract.OutcomeRefused:
			o.logger.WarnContext(ctx, "session_use_case", attrs...)
			return
		}
	}
	o.logger.InfoContext(ctx, "session_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
