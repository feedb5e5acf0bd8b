package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yildizm/cloctop/internal/config"
	"github.com/yildizm/cloctop/internal/formatter"
	"github.com/yildizm/cloctop/internal/logger"
	"github.com/yildizm/cloctop/internal/view"
)

// rescanDelay batches bursts of file events into one cloc run.
const rescanDelay = 500 * time.Millisecond

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Re-scan on file changes and print updated summaries",
		Long: `Watch a directory tree and re-run cloc whenever files change,
printing a refreshed per-language summary after each run.

Uses file system notifications with a short debounce so editor save bursts
trigger a single re-scan. Press Ctrl+C to stop watching.

Examples:
  cloctop watch .
  cloctop watch --group directory ./src`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path, err := resolvePath(args)
	if err != nil {
		return err
	}

	// Watch summaries default to the language view; per-file output is too
	// noisy to reprint on every change.
	group := cfg.UI.DefaultGroup
	if cmd.Flags().Changed("group") {
		group = groupFlag
	} else if group == "file" {
		group = "language"
	}
	key, err := parseGroupKey(group)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer cleanupWatcher(watcher)

	if err := watchTree(watcher, path); err != nil {
		return err
	}

	wlog := log.WithComponent("watch")
	wlog.Info("watching", logger.F("path", path))

	// Initial scan before the first change arrives
	if err := scanAndPrint(cmd, cfg, path, key); err != nil {
		return err
	}

	return watchLoop(cmd, watcher, cfg, path, key)
}

func watchLoop(cmd *cobra.Command, watcher *fsnotify.Watcher, cfg *config.Config, path string, key view.GroupKey) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var rescan <-chan time.Time
	wlog := log.WithComponent("watch")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ignoredPath(event.Name) {
				continue
			}
			wlog.Debug("fs event", logger.F("op", event.Op.String()), logger.F("name", event.Name))

			// New directories need their own watch
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						wlog.Warn("failed to watch new directory", logger.F("name", event.Name), logger.Err(err))
					}
				}
			}
			rescan = time.After(rescanDelay)

		case <-rescan:
			rescan = nil
			if err := scanAndPrint(cmd, cfg, path, key); err != nil {
				wlog.Error("re-scan failed", logger.Err(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			wlog.Warn("watcher error", logger.Err(err))

		case <-sigCh:
			fmt.Fprintln(cmd.OutOrStdout(), "stopped watching")
			return nil
		}
	}
}

// scanAndPrint runs one cloc pass and prints the grouped text summary.
func scanAndPrint(cmd *cobra.Command, cfg *config.Config, path string, key view.GroupKey) error {
	output, err := newRunner(cfg, path).Run(context.Background())
	if err != nil {
		return err
	}

	store, err := ingest(output.Records)
	if err != nil {
		return err
	}

	sorter := view.NewSorter()
	projected := view.NewGrouper().Project(store.All(), key)
	sorted := sorter.Sort(projected, sorter.SpecFor(key))

	data, err := formatter.NewText().Format(&formatter.Report{
		Path:     path,
		Header:   output.Header,
		View:     sorted,
		Totals:   store.Totals(),
		Warnings: store.Warnings(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "--- %s ---\n%s\n", time.Now().Format("15:04:05"), data)
	return nil
}

// watchTree registers the directory and all its subdirectories.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if ignoredPath(path) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// ignoredPath filters VCS internals and editor temp files, which otherwise
// retrigger scans in a loop.
func ignoredPath(path string) bool {
	base := filepath.Base(path)
	if base == ".git" || base == ".hg" || base == ".svn" {
		return true
	}
	return strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp")
}

// cleanupWatcher safely closes the watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil && isVerbose() {
		fmt.Fprintf(os.Stderr, "Warning: failed to close watcher: %v\n", err)
	}
}
