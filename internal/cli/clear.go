package cli

import (
	"github.com/spf13/cobra"

	"github.com/swamp-dev/exlog/internal/app"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded session",
	Long: `Clear permanently deletes all recorded sessions after asking for
confirmation. Use --yes to skip the question.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "do not ask for confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	sh := shellFor(cmd)
	sh.assumeYes = clearYes
	return runAction(sh, app.ActionClear)
}
