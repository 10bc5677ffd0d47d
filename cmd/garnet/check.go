package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"garnet"
	"garnet/internal/driver"
	"garnet/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.rb|directory>",
	Short: "Parse and report diagnostics without printing trees",
	Long:  `Check parses the given file or directory and exits non-zero when any file has syntax errors`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("no-ui", false, "disable the interactive progress view")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := resolveParseConfig(cmd)
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var results []driver.DirResult
	if st.IsDir() {
		results, err = checkDirectory(cmd, path, cfg)
	} else {
		var res *driver.ParseResult
		res, err = garnet.ParseFile(path, cfg)
		results = []driver.DirResult{{Path: path, Result: res, Err: err}}
		err = nil
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			failed++
			continue
		}
		if r.Result.Failure() {
			printDiagnostics(cmd, r.Result)
			failed++
		}
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(os.Stdout, "%d files checked, %d with errors\n", len(results), failed)
	}
	if failed > 0 {
		os.Exit(1)
	}
	return nil
}

// checkDirectory parses every file under dir, showing the progress TUI
// on interactive terminals.
func checkDirectory(cmd *cobra.Command, dir string, cfg garnet.ParseConfig) ([]driver.DirResult, error) {
	version, err := garnet.ResolveVersion(cfg.Grammar)
	if err != nil {
		return nil, err
	}
	dcfg := driver.Config{
		MaxDiagnostics: cfg.MaxDiagnostics,
		Version:        version,
	}

	noUI, _ := cmd.Flags().GetBool("no-ui")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if noUI || quiet || !isTerminal(os.Stdout) {
		return driver.ParseDir(context.Background(), dir, dcfg)
	}

	paths, err := driver.ListRubyFiles(dir)
	if err != nil {
		return nil, err
	}

	events := make(chan ui.CheckEvent, len(paths)*2)
	results := make([]driver.DirResult, 0, len(paths))
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	go func() {
		for _, path := range paths {
			path := path
			g.Go(func() error {
				events <- ui.CheckEvent{Path: path, Status: ui.StatusParsing}
				res, err := driver.Parse(path, dcfg)
				ev := ui.CheckEvent{Path: path, Status: ui.StatusOK}
				if err != nil || res.Failure() {
					ev.Status = ui.StatusFailed
					if res != nil {
						ev.Diagnostics = res.Bag.Len()
					}
				}
				events <- ev
				mu.Lock()
				results = append(results, driver.DirResult{Path: path, Result: res, Err: err})
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
		close(events)
	}()

	model := ui.NewCheckModel(fmt.Sprintf("checking %s", dir), paths, events)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}
