package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pomo/internal/config"
	"github.com/alexanderramin/pomo/internal/repository"
	"github.com/alexanderramin/pomo/internal/service"
)

// App holds the collaborators CLI commands run against, plus the flag state
// shared by every subcommand.
type App struct {
	Days   repository.DayLogRepo
	Config config.Config

	// Sessions overrides the lazily built service when set; tests use it
	// to inject stubs.
	Sessions service.SessionService

	// IsInteractive reports whether stdin is a terminal; it decides
	// between an interactive confirmation prompt and auto-decline.
	IsInteractive func() bool

	// EventSink receives structured use-case events, normally stderr.
	EventSink io.Writer

	AssumeYes bool
	Debug     bool

	sessions service.SessionService
}

// sessionService builds the engine on first use, after flag parsing has
// settled AssumeYes and Debug.
func (a *App) sessionService() service.SessionService {
	if a.Sessions != nil {
		return a.Sessions
	}
	if a.sessions == nil {
		a.sessions = service.NewSessionService(a.Days, a.confirmer(), a.observer())
	}
	return a.sessions
}

func (a *App) confirmer() service.Confirmer {
	if a.AssumeYes {
		return NewStaticConfirmer(true)
	}
	if a.IsInteractive != nil && a.IsInteractive() {
		return NewPromptConfirmer()
	}
	// Without a terminal there is nobody to ask; decline.
	return NewStaticConfirmer(false)
}

func (a *App) observer() service.UseCaseObserver {
	level := slog.LevelError
	if a.Debug {
		level = slog.LevelDebug
	}
	return service.NewLogUseCaseObserver(a.EventSink, level)
}

// NewRootCmd creates the top-level "pomo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pomo",
		Short: "Track time spent on activities with per-day start/stop logs",
	}

	root.PersistentFlags().BoolVar(&app.Debug, "debug", false, "Enable debug event logging")
	root.PersistentFlags().BoolVarP(&app.AssumeYes, "yes", "y", false, "Approve pending actions without prompting")

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newShowCmd(app),
		newRecapCmd(app),
		newMigrateCmd(app),
	)

	return root
}
