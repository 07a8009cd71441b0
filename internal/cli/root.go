// Package cli provides the command-line interface for exlog.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/swamp-dev/exlog/internal/app"
	"github.com/swamp-dev/exlog/internal/config"
	"github.com/swamp-dev/exlog/internal/entry"
	"github.com/swamp-dev/exlog/internal/store"
)

var (
	cfgFile string
	dbPath  string
	verbose bool
	logger  = slog.New(slog.DiscardHandler)
	cfg     = config.DefaultConfig()
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "exlog",
	Short: "Log exercise sessions and chart your progress",
	Long: `Exlog keeps a local log of exercise sessions (activity, duration,
intensity) in a SQLite database and reports on them.

Record a session with 'exlog add', chart it with 'exlog progress' and
'exlog by-type', or export everything with 'exlog export'. Run 'exlog menu'
for an interactive form.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		logger = newLogger(cmd.ErrOrStderr(), cfg.Log)
		return nil
	},
}

// Execute runs the root command. Errors already shown to the user are not
// printed again.
func Execute() error {
	err := rootCmd.Execute()
	var shown *app.ShownError
	if err != nil && !errors.As(err, &shown) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is exlog.yaml in the current or a parent directory)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (overrides database.path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	viper.BindPFlag("database.path", rootCmd.PersistentFlags().Lookup("db"))

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(byTypeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if path, err := config.FindConfigFile(); err == nil {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("exlog")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the file viper located and applies flag overrides.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(viper.ConfigFileUsed())
	if err != nil {
		return nil, err
	}
	if p := viper.GetString("database.path"); p != "" {
		c.Database.Path = p
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// newLogger logs to stderr, or to a rotating file when one is configured.
func newLogger(stderr io.Writer, lc config.LogConfig) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	var w io.Writer = stderr
	if lc.File != "" {
		w = &lumberjack.Logger{
			Filename:   lc.File,
			MaxSize:    lc.MaxSizeMB,
			MaxBackups: lc.MaxBackups,
		}
	} else if !verbose {
		// Dialogs already tell the user what happened.
		logLevel = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

// shellFor builds a console shell on the command's streams.
func shellFor(cmd *cobra.Command) *consoleShell {
	sh := newConsoleShell(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	sh.chartWidth = cfg.Chart.Width
	sh.defaultExportPath = cfg.Export.DefaultPath
	return sh
}

// withApp opens the configured store, runs fn and closes the store.
func withApp(sh *consoleShell, fn func(*app.App) error) error {
	s, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", cfg.Database.Path, err)
	}
	defer s.Close()
	logger.Debug("store opened", "path", s.Path())

	a := app.New(s, sh, entry.Validator{Strict: cfg.Entry.StrictIntensity}, logger)
	return fn(a)
}

// runAction dispatches one action. Empty stores and declined confirmations
// are normal outcomes, not failures.
func runAction(sh *consoleShell, action app.Action) error {
	return withApp(sh, func(a *app.App) error {
		return actionResult(a.Dispatch(action))
	})
}

func actionResult(err error) error {
	if errors.Is(err, store.ErrNoData) || errors.Is(err, app.ErrDeclined) {
		return nil
	}
	return err
}
