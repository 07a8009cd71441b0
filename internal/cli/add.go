package cli

import (
	"github.com/spf13/cobra"

	"github.com/swamp-dev/exlog/internal/app"
	"github.com/swamp-dev/exlog/internal/entry"
)

var (
	addType      string
	addDuration  string
	addIntensity string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an exercise session dated today",
	Long: `Add records one exercise session with today's date.

Without flags it prompts for each field. Activity type, duration and
intensity are all required; duration must be a whole number of minutes
greater than zero.

Examples:
  exlog add
  exlog add --type Running --duration 30 --intensity High
  exlog add -t Swimming -d 45 -i Medium`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addType, "type", "t", "", "activity type")
	addCmd.Flags().StringVarP(&addDuration, "duration", "d", "", "duration in minutes")
	addCmd.Flags().StringVarP(&addIntensity, "intensity", "i", "", "intensity (Low, Medium, High)")

	addCmd.RegisterFlagCompletionFunc("intensity", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, i := range entry.Intensities() {
			names = append(names, string(i))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func runAdd(cmd *cobra.Command, args []string) error {
	sh := shellFor(cmd)

	flags := cmd.Flags()
	if flags.Changed("type") || flags.Changed("duration") || flags.Changed("intensity") {
		sh.form = &app.Form{
			ActivityType: addType,
			Duration:     addDuration,
			Intensity:    addIntensity,
		}
	}

	return runAction(sh, app.ActionRegister)
}
