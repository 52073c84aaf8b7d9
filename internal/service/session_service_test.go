package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pomo/internal/contract"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/repository"
	"github.com/alexanderramin/pomo/internal/testutil"
)

func clock(t *testing.T, hhmm string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", "2024-03-11 "+hhmm)
	require.NoError(t, err)
	return parsed
}

func newTestService(t *testing.T, confirm Confirmer) (SessionService, *repository.JSONDayLogRepo) {
	t.Helper()
	repo := repository.NewJSONDayLogRepo(t.TempDir())
	return NewSessionService(repo, confirm), repo
}

func TestStartStop_AlternatingSequencePersistedExactly(t *testing.T) {
	svc, repo := newTestService(t, testutil.ApproveAll{})
	ctx := context.Background()

	times := []string{"09:00", "09:25", "10:00", "10:30"}
	for i, hhmm := range times {
		var res *contract.MutationResult
		var err error
		if i%2 == 0 {
			res, err = svc.Start(ctx, "reading", clock(t, hhmm))
		} else {
			res, err = svc.Stop(ctx, "reading", clock(t, hhmm))
		}
		require.NoError(t, err)
		assert.Equal(t, contract.OutcomeApplied, res.Outcome)
	}

	day, err := repo.Load(ctx, clock(t, "09:00"))
	require.NoError(t, err)
	actions := day.Activities["reading"]
	require.Len(t, actions, 4)
	for i, a := range actions {
		wantKind := domain.ActionStart
		if i%2 == 1 {
			wantKind = domain.ActionStop
		}
		assert.Equal(t, wantKind, a.Kind)
		assert.True(t, a.Time.Equal(clock(t, times[i])))
	}
}

func TestStart_TwiceAtSameInstantKeepsOneEntry(t *testing.T) {
	svc, repo := newTestService(t, testutil.ApproveAll{})
	ctx := context.Background()
	at := clock(t, "09:00")

	first, err := svc.Start(ctx, "reading", at)
	require.NoError(t, err)
	assert.Equal(t, contract.OutcomeApplied, first.Outcome)

	second, err := svc.Start(ctx, "reading", at)
	require.NoError(t, err)
	assert.Equal(t, contract.OutcomeDuplicate, second.Outcome)

	day, err := repo.Load(ctx, at)
	require.NoError(t, err)
	assert.Len(t, day.Activities["reading"], 1)
}

func TestStart_WhileRunningIsRejectedWithoutPrompt(t *testing.T) {
	confirm := &testutil.ScriptedConfirmer{Answers: []bool{true}}
	svc, repo := newTestService(t, confirm)
	ctx := context.Background()

	_, err := svc.Start(ctx, "reading", clock(t, "09:00"))
	require.NoError(t, err)

	res, err := svc.Start(ctx, "reading", clock(t, "09:30"))
	require.NoError(t, err)
	assert.Equal(t, contract.OutcomeAlreadyRunning, res.Outcome)
	assert.Len(t, confirm.Descriptions, 1, "rejected transition must not prompt")

	day, err := repo.Load(ctx, clock(t, "09:00"))
	require.NoError(t, err)
	assert.Len(t, day.Activities["reading"], 1)
}

func TestStop_WithoutActiveSessionLeavesDayUntouched(t *testing.T) {
	svc, repo := newTestService(t, testutil.ApproveAll{})
	ctx := context.Background()

	res, err := svc.Stop(ctx, "reading", clock(t, "09:30"))
	require.NoError(t, err)
	assert.Equal(t, contract.OutcomeNotRunning, res.Outcome)

	day, err := repo.Load(ctx, clock(t, "09:30"))
	require.NoError(t, err)
	assert.Empty(t, day.Activities)
}

func TestStop_AfterStoppedSessionIsRejected(t *testing.T) {
	svc, _ := newTestService(t, testutil.ApproveAll{})
	ctx := context.Background()

	_, err := svc.Start(ctx, "reading", clock(t, "09:00"))
	require.NoError(t, err)
	_, err = svc.Stop(ctx, "reading", clock(t, "09:25"))
	require.NoError(t, err)

	res, err := svc.Stop(ctx, "reading", clock(t, "09:30"))
	require.NoError(t, err)
	assert.Equal(t, contract.OutcomeNotRunning, res.Outcome)
}

func TestMutation_DeclinedConfirmationLeavesFileByteIdentical(t *testing.T) {
	repo := repository.NewJSONDayLogRepo(t.TempDir())
	ctx := context.Background()

	seed := NewSessionService(repo, testutil.ApproveAll{})
	_, err := seed.Start(ctx, "reading", clock(t, "09:00"))
	require.NoError(t, err)
	_, err = seed.Stop(ctx, "reading", clock(t, "09:25"))
	require.NoError(t, err)

	before, err := os.ReadFile(repo.Path(clock(t, "09:00")))
	require.NoError(t, err)

	svc := NewSessionService(repo, testutil.DeclineAll{})
	res, err := svc.Start(ctx, "reading", clock(t, "10:00"))
	require.NoError(t, err)
	assert.Equal(t, contract.OutcomeRefused, res.Outcome)

	after, err := os.ReadFile(repo.Path(clock(t, "09:00")))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMutation_ConfirmationDescriptionNamesActivityAndKind(t *testing.T) {
	confirm := &testutil.ScriptedConfirmer{Answers: []bool{true}}
	svc, _ := newTestService(t, confirm)

	_, err := svc.Start(context.Background(), "reading", clock(t, "09:00"))
	require.NoError(t, err)

	require.Len(t, confirm.Descriptions, 1)
	assert.Contains(t, confirm.Descriptions[0], "start")
	assert.Contains(t, confirm.Descriptions[0], "reading")
}

func TestMutation_StorageFailurePropagates(t *testing.T) {
	boom := errors.New("disk full")
	repo := &testutil.FailingDayLogRepo{SaveErr: boom}
	svc := NewSessionService(repo, testutil.ApproveAll{})

	_, err := svc.Start(context.Background(), "reading", clock(t, "09:00"))
	assert.ErrorIs(t, err, boom)
}

func TestMutation_UnreadableStorageFailsBeforePrompt(t *testing.T) {
	boom := errors.New("corrupt day log")
	repo := &testutil.FailingDayLogRepo{LoadErr: boom}
	confirm := &testutil.ScriptedConfirmer{Answers: []bool{true}}
	svc := NewSessionService(repo, confirm)

	_, err := svc.Start(context.Background(), "reading", clock(t, "09:00"))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, confirm.Descriptions)
}

func TestShow_ReturnsOrderedLogWithoutMutating(t *testing.T) {
	date := clock(t, "09:00")
	repo := &testutil.FailingDayLogRepo{Day: testutil.DayLogWith(date, "reading", clock(t, "09:00"), clock(t, "09:25"))}
	svc := NewSessionService(repo, testutil.DeclineAll{})

	resp, err := svc.Show(context.Background(), "reading", date)
	require.NoError(t, err)
	assert.True(t, resp.Found)
	require.Len(t, resp.Actions, 2)
	assert.Equal(t, domain.ActionStart, resp.Actions[0].Kind)
	assert.Equal(t, domain.ActionStop, resp.Actions[1].Kind)
}

func TestShow_AbsentActivityReportsNotFound(t *testing.T) {
	svc, _ := newTestService(t, testutil.DeclineAll{})

	resp, err := svc.Show(context.Background(), "reading", clock(t, "09:00"))
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Actions)
}

func TestRecap_AggregatesPersistedDay(t *testing.T) {
	svc, _ := newTestService(t, testutil.ApproveAll{})
	ctx := context.Background()

	_, err := svc.Start(ctx, "reading", clock(t, "09:00"))
	require.NoError(t, err)
	_, err = svc.Stop(ctx, "reading", clock(t, "09:25"))
	require.NoError(t, err)
	_, err = svc.Start(ctx, "reading", clock(t, "10:00"))
	require.NoError(t, err)

	resp, err := svc.Recap(ctx, clock(t, "10:05"))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", resp.Date)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, 30*time.Minute, resp.Rows[0].TotalTime)
	assert.Equal(t, 1, resp.Rows[0].FinishedSessions)
	assert.Equal(t, 1, resp.Rows[0].OngoingSessions)
}

func TestDaysAreIsolated(t *testing.T) {
	svc, repo := newTestService(t, testutil.ApproveAll{})
	ctx := context.Background()

	_, err := svc.Start(ctx, "reading", clock(t, "09:00"))
	require.NoError(t, err)

	nextDay := clock(t, "09:00").AddDate(0, 0, 1)
	res, err := svc.Stop(ctx, "reading", nextDay)
	require.NoError(t, err)
	assert.Equal(t, contract.OutcomeNotRunning, res.Outcome, "a session does not span calendar dates")

	day, err := repo.Load(ctx, nextDay)
	require.NoError(t, err)
	assert.Empty(t, day.Activities)
}
