package cli

import (
	"github.com/spf13/cobra"

	"github.com/swamp-dev/exlog/internal/app"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Chart total minutes per day",
	Long: `Progress charts the summed duration of every day with at least one
recorded session, oldest first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(shellFor(cmd), app.ActionDailyProgress)
	},
}

var byTypeCmd = &cobra.Command{
	Use:     "by-type",
	Aliases: []string{"types"},
	Short:   "Chart total minutes per activity type",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(shellFor(cmd), app.ActionByType)
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List every recorded session",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(shellFor(cmd), app.ActionList)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals by date, activity type and intensity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(shellFor(cmd), app.ActionStats)
	},
}
