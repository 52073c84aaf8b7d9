package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/importer"
)

func newMigrateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Rewrite legacy day-log files to the current layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := importer.MigrateDir(app.Config.DataDir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMigration(results))

			failed := 0
			for _, r := range results {
				if r.Status == importer.MigrateFailed {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d day files could not be migrated", failed, len(results))
			}
			return nil
		},
	}
}
