package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pomo/internal/contract"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/importer"
)

// FormatMutation renders the outcome of a start or stop command as a single
// line. Outcomes that changed nothing render as warnings.
func FormatMutation(res *contract.MutationResult) string {
	switch res.Outcome {
	case contract.OutcomeApplied:
		return fmt.Sprintf("Recorded %s for %s at %s %s.\n",
			Bold(string(res.Action.Kind)),
			Bold(res.Activity),
			Clock(res.Action.Time),
			Dim("("+Recency(res.Action.Time)+")"))
	case contract.OutcomeAlreadyRunning:
		return Warn(fmt.Sprintf("A session is already in progress for %s; nothing recorded.", res.Activity)) + "\n"
	case contract.OutcomeNotRunning:
		return Warn(fmt.Sprintf("No active session found for %s; nothing recorded.", res.Activity)) + "\n"
	case contract.OutcomeDuplicate:
		return Warn(fmt.Sprintf("This %s duplicates the last recorded action for %s; skipping.", res.Action.Kind, res.Activity)) + "\n"
	case contract.OutcomeRefused:
		return Dim("Cancelled; nothing was recorded.") + "\n"
	default:
		return ""
	}
}

// ActionPill returns a colored indicator for an action kind.
func ActionPill(kind domain.ActionKind) string {
	if kind == domain.ActionStart {
		return StyleGreen.Render("● start")
	}
	return StyleDim.Render("○ stop")
}

// FormatActivityLog renders an activity's ordered action list for one day.
func FormatActivityLog(resp *contract.ShowResponse) string {
	if !resp.Found {
		return Warn(fmt.Sprintf("No actions found for %s on %s.", resp.Activity, resp.Date)) + "\n"
	}

	headers := []string{"#", "ACTION", "TIME"}
	rows := make([][]string, 0, len(resp.Actions))
	for i, a := range resp.Actions {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			ActionPill(a.Kind),
			StyleFg.Render(Clock(a.Time)),
		})
	}

	title := fmt.Sprintf("%s — %s", resp.Activity, resp.Date)
	return RenderBox(title, RenderTable(headers, rows)) + "\n"
}

// FormatRecap renders the day's aggregated totals, one row per activity.
func FormatRecap(resp *contract.RecapResponse) string {
	if len(resp.Rows) == 0 {
		return Dim(fmt.Sprintf("No sessions recorded for %s.", resp.Date)) + "\n"
	}

	headers := []string{"ACTIVITY", "TOTAL TIME", "FINISHED", "ONGOING"}
	rows := make([][]string, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		ongoing := Dim("0")
		if row.OngoingSessions > 0 {
			ongoing = StyleGreen.Render(fmt.Sprintf("● %d", row.OngoingSessions))
		}
		rows = append(rows, []string{
			Bold(row.Activity),
			StyleFg.Render(FormatDuration(row.TotalTime)),
			StyleFg.Render(fmt.Sprintf("%d", row.FinishedSessions)),
			ongoing,
		})
	}

	return RenderBox("Recap "+resp.Date, RenderTable(headers, rows)) + "\n"
}

// FormatMigration renders one line per migrated day file plus a summary.
func FormatMigration(results []importer.MigrateResult) string {
	if len(results) == 0 {
		return Dim("No day files found.") + "\n"
	}

	var b strings.Builder
	rewritten, failed := 0, 0
	for _, r := range results {
		switch r.Status {
		case importer.MigrateRewritten:
			rewritten++
			b.WriteString(StyleGreen.Render("✔ ") + r.File + " rewritten\n")
		case importer.MigrateFailed:
			failed++
			b.WriteString(StyleRed.Render("✖ ") + fmt.Sprintf("%s: %v\n", r.File, r.Err))
		default:
			b.WriteString(Dim("  " + r.File + " unchanged\n"))
		}
	}

	b.WriteString(fmt.Sprintf("%d files checked, %d rewritten, %d failed\n",
		len(results), rewritten, failed))
	return b.String()
}
