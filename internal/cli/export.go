package cli

import (
	"github.com/spf13/cobra"

	"github.com/swamp-dev/exlog/internal/app"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export every session to a CSV file",
	Long: `Export writes all recorded sessions to a CSV file, replacing it if it
exists. Without a path argument it asks for one, defaulting to
export.default_path from the config.

Examples:
  exlog export
  exlog export ~/ejercicios.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	sh := shellFor(cmd)
	if len(args) == 1 {
		sh.exportPath = args[0]
	}
	return runAction(sh, app.ActionExport)
}
