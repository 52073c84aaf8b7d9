package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pomo/internal/contract"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/repository"
)

type sessionService struct {
	days     repository.DayLogRepo
	confirm  Confirmer
	observer UseCaseObserver
}

func NewSessionService(days repository.DayLogRepo, confirm Confirmer, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		days:     days,
		confirm:  confirm,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) Start(ctx context.Context, activity string, at time.Time) (*contract.MutationResult, error) {
	return s.mutate(ctx, "session_start", activity, domain.Action{Kind: domain.ActionStart, Time: at})
}

func (s *sessionService) Stop(ctx context.Context, activity string, at time.Time) (*contract.MutationResult, error) {
	return s.mutate(ctx, "session_stop", activity, domain.Action{Kind: domain.ActionStop, Time: at})
}

// mutate runs the shared append pipeline: validate the transition, ask the
// confirmation gate, and only then append and persist the whole day log.
// A duplicate of the last recorded action always skips the append and never
// reaches the gate.
func (s *sessionService) mutate(ctx context.Context, useCase, activity string, candidate domain.Action) (*contract.MutationResult, error) {
	started := time.Now()

	day, err := s.days.Load(ctx, candidate.Time)
	if err != nil {
		s.observe(ctx, useCase, started, err, nil)
		return nil, err
	}

	res := &contract.MutationResult{
		Date:     day.Date,
		Activity: activity,
		Action:   candidate,
	}

	if err := day.ValidateAppend(activity, candidate); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateAction):
			res.Outcome = contract.OutcomeDuplicate
		case errors.Is(err, domain.ErrSessionRunning):
			res.Outcome = contract.OutcomeAlreadyRunning
		case errors.Is(err, domain.ErrNoActiveSession):
			res.Outcome = contract.OutcomeNotRunning
		default:
			s.observe(ctx, useCase, started, err, res)
			return nil, err
		}
		s.observe(ctx, useCase, started, nil, res)
		return res, nil
	}

	approved, err := s.confirm.Confirm(describeAction(activity, candidate))
	if err != nil {
		err = fmt.Errorf("confirming %s for %s: %w", candidate.Kind, activity, err)
		s.observe(ctx, useCase, started, err, res)
		return nil, err
	}
	if !approved {
		res.Outcome = contract.OutcomeRefused
		s.observe(ctx, useCase, started, nil, res)
		return res, nil
	}

	day.Append(activity, candidate)
	if err := s.days.Save(ctx, day); err != nil {
		s.observe(ctx, useCase, started, err, res)
		return nil, err
	}

	res.Outcome = contract.OutcomeApplied
	s.observe(ctx, useCase, started, nil, res)
	return res, nil
}

func (s *sessionService) Show(ctx context.Context, activity string, at time.Time) (*contract.ShowResponse, error) {
	started := time.Now()

	day, err := s.days.Load(ctx, at)
	if err != nil {
		s.observe(ctx, "session_show", started, err, nil)
		return nil, err
	}

	resp := &contract.ShowResponse{
		Date:     day.Date,
		Activity: activity,
	}
	if log, ok := day.Activities[activity]; ok {
		resp.Actions = append(domain.ActivityLog(nil), log...)
		resp.Found = true
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "session_show",
		Duration:  time.Since(started),
		Success:   true,
		StartedAt: started,
		Fields:    map[string]any{"activity": activity, "found": resp.Found},
	})
	return resp, nil
}

func (s *sessionService) Recap(ctx context.Context, at time.Time) (*contract.RecapResponse, error) {
	started := time.Now()

	day, err := s.days.Load(ctx, at)
	if err != nil {
		s.observe(ctx, "session_recap", started, err, nil)
		return nil, err
	}

	resp := &contract.RecapResponse{
		Date: day.Date,
		Rows: day.Recap(at),
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "session_recap",
		Duration:  time.Since(started),
		Success:   true,
		StartedAt: started,
		Fields:    map[string]any{"activities": len(resp.Rows)},
	})
	return resp, nil
}

func (s *sessionService) observe(ctx context.Context, name string, started time.Time, err error, res *contract.MutationResult) {
	event := UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields:    map[string]any{},
	}
	if res != nil {
		event.Fields["activity"] = res.Activity
		event.Fields["outcome"] = string(res.Outcome)
	}
	s.observer.ObserveUseCase(ctx, event)
}

func describeAction(activity string, a domain.Action) string {
	return fmt.Sprintf("Record %s for %q at %s?", a.Kind, activity, a.Time.Format("3:04pm on Jan 2, 2006"))
}
