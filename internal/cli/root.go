// Package cli wires the cobra command surface to the scanner and the
// interactive viewer.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/yildizm/cloctop/internal/cloc"
	"github.com/yildizm/cloctop/internal/config"
	"github.com/yildizm/cloctop/internal/logger"
	"github.com/yildizm/cloctop/internal/stats"
	"github.com/yildizm/cloctop/internal/ui"
	"github.com/yildizm/cloctop/internal/view"
)

var (
	cfgFile    string
	verbose    bool
	noColor    bool
	fullscreen bool
	groupFlag  string
	timeoutSec int
)

var log = logger.New("cli", isVerbose)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cloctop [path]",
		Short: "Interactive terminal viewer for cloc output",
		Long: `cloctop runs cloc (Count Lines of Code) against a directory and presents
the per-file results as an interactive, sortable, re-groupable table.

Group rows by file, language, or directory; sort any column in either
direction; the table re-fits itself to the terminal as it resizes.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// lipgloss and termenv honor NO_COLOR
			if noColor {
				_ = os.Setenv("NO_COLOR", "1")
			}
		},
		RunE: runViewer,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&groupFlag, "group", "g", "", "initial grouping (file, language, directory)")
	rootCmd.PersistentFlags().IntVar(&timeoutSec, "timeout", 0, "cloc timeout in seconds")
	rootCmd.Flags().BoolVarP(&fullscreen, "fullscreen", "f", false, "run in fullscreen / full terminal mode")

	// Add subcommands
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path, err := resolvePath(args)
	if err != nil {
		return err
	}

	key, err := parseGroupKey(pickGroup(cmd, cfg))
	if err != nil {
		return err
	}

	runner := newRunner(cfg, path)
	if !runner.Installed() {
		fmt.Fprintln(cmd.ErrOrStderr(), cloc.InstallHelp)
		return cloc.ErrNotInstalled
	}

	mode := view.Inline
	if fullscreen || cfg.UI.Fullscreen {
		mode = view.Fullscreen
	}

	log.Debug("starting viewer", logger.F("path", path), logger.F("group", key), logger.F("fullscreen", mode == view.Fullscreen))

	return ui.Run(ui.Options{
		Runner:      runner,
		Path:        path,
		InitialKey:  key,
		DisplayMode: mode,
	})
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			fmt.Printf("cloctop %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Shared helpers

func isVerbose() bool {
	return verbose
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Cloc.Timeout = time.Duration(timeoutSec) * time.Second
	}
	return cfg, nil
}

// pickGroup applies flag > config precedence for the grouping mode.
func pickGroup(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("group") {
		return groupFlag
	}
	return cfg.UI.DefaultGroup
}

func parseGroupKey(s string) (view.GroupKey, error) {
	switch s {
	case "file", "files", "":
		return view.GroupByFile, nil
	case "language", "languages", "lang":
		return view.GroupByLanguage, nil
	case "directory", "directories", "dir":
		return view.GroupByDirectory, nil
	default:
		return 0, fmt.Errorf("unknown grouping %q (must be one of: file, language, directory)", s)
	}
}

func resolvePath(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("path %q does not exist", path)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path %q is not a directory", path)
	}
	return path, nil
}

func newRunner(cfg *config.Config, path string) *cloc.Runner {
	runner := cloc.NewRunner(cfg.Cloc.Binary, cfg.Cloc.Timeout).WithArg(path)
	for _, flag := range cfg.Cloc.ExtraFlags {
		runner.WithFlag(flag)
	}
	return runner
}

// ingest runs validation over raw records and logs any drops.
func ingest(records []stats.RawRecord) (*stats.Store, error) {
	store := stats.NewStore()
	if err := store.Ingest(records); err != nil {
		return nil, err
	}
	for _, w := range store.Warnings() {
		log.Warn(w.String())
	}
	return store, nil
}
