package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
)

func newStartCmd(app *App) *cobra.Command {
	var clock clockFlag
	var date dateFlag

	cmd := &cobra.Command{
		Use:   "start ACTIVITY",
		Short: "Start a session for an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activity := args[0]
			if err := checkActivity(app, activity); err != nil {
				return err
			}
			res, err := app.sessionService().Start(context.Background(), activity, mergeMoment(time.Now(), clock, date))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMutation(res))
			return nil
		},
	}

	addMomentFlags(cmd, &clock, &date)
	return cmd
}

func newStopCmd(app *App) *cobra.Command {
	var clock clockFlag
	var date dateFlag

	cmd := &cobra.Command{
		Use:   "stop ACTIVITY",
		Short: "Stop the in-progress session for an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activity := args[0]
			if err := checkActivity(app, activity); err != nil {
				return err
			}
			res, err := app.sessionService().Stop(context.Background(), activity, mergeMoment(time.Now(), clock, date))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMutation(res))
			return nil
		},
	}

	addMomentFlags(cmd, &clock, &date)
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	var date dateFlag

	cmd := &cobra.Command{
		Use:   "show ACTIVITY",
		Short: "Show an activity's action log for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activity := args[0]
			if err := checkActivity(app, activity); err != nil {
				return err
			}
			resp, err := app.sessionService().Show(context.Background(), activity, mergeMoment(time.Now(), clockFlag{}, date))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivityLog(resp))
			return nil
		},
	}

	cmd.Flags().Var(&date, "date", "Date in MM-DD-YY form (defaults to today)")
	return cmd
}

func newRecapCmd(app *App) *cobra.Command {
	var date dateFlag

	cmd := &cobra.Command{
		Use:   "recap",
		Short: "Recap every activity's total time for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.sessionService().Recap(context.Background(), mergeMoment(time.Now(), clockFlag{}, date))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecap(resp))
			return nil
		},
	}

	cmd.Flags().Var(&date, "date", "Date in MM-DD-YY form (defaults to today)")
	return cmd
}

// checkActivity enforces the configured allow-list before anything reaches
// the session engine.
func checkActivity(app *App, activity string) error {
	if app.Config.Allows(activity) {
		return nil
	}
	return fmt.Errorf("unknown activity %q (configured activities: %s)",
		activity, strings.Join(app.Config.Activities, ", "))
}

func addMomentFlags(cmd *cobra.Command, clock *clockFlag, date *dateFlag) {
	cmd.Flags().Var(clock, "time", "Clock time in HH:MMam/pm form (defaults to now)")
	cmd.Flags().Var(date, "date", "Date in MM-DD-YY form (defaults to today)")
}
