package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swamp-dev/exlog/internal/app"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive exercise form",
	Long: `Menu opens an interactive form: pick an action by number, fill in the
fields when registering a session, and quit with 'q' or end of input.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

type menuItem struct {
	key    string
	label  string
	action app.Action
}

var menuItems = []menuItem{
	{"1", "Register exercise", app.ActionRegister},
	{"2", "Show daily progress", app.ActionDailyProgress},
	{"3", "Show minutes by activity type", app.ActionByType},
	{"4", "Export data to CSV", app.ActionExport},
	{"5", "Delete all records", app.ActionClear},
	{"6", "List records", app.ActionList},
	{"7", "Statistics", app.ActionStats},
}

func runMenu(cmd *cobra.Command, args []string) error {
	sh := shellFor(cmd)
	return withApp(sh, func(a *app.App) error {
		return menuLoop(a, sh)
	})
}

func menuLoop(a *app.App, sh *consoleShell) error {
	for {
		fmt.Fprintln(sh.out)
		for _, item := range menuItems {
			fmt.Fprintf(sh.out, "  %s) %s\n", item.key, item.label)
		}
		fmt.Fprintln(sh.out, "  q) Quit")

		choice, err := sh.readLine("Choose: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		choice = strings.TrimSpace(choice)
		if choice == "q" || choice == "quit" {
			return nil
		}

		action, ok := lookupMenu(choice)
		if !ok {
			sh.Error("Error", fmt.Sprintf("unknown choice %q", choice))
			continue
		}

		err = actionResult(a.Dispatch(action))
		var shown *app.ShownError
		switch {
		case err == nil, errors.As(err, &shown):
		case errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}
	}
}

func lookupMenu(choice string) (app.Action, bool) {
	for _, item := range menuItems {
		if item.key == choice {
			return item.action, true
		}
	}
	return 0, false
}
