package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"garnet"
	"garnet/internal/ui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect file.rb",
	Short: "Browse a file's syntax tree interactively",
	Long:  `Inspect opens a terminal UI for walking the syntax tree of one Ruby source file`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("inspect needs an interactive terminal; use `garnet parse` for plain output")
	}

	cfg, err := resolveParseConfig(cmd)
	if err != nil {
		return err
	}
	result, err := garnet.ParseFile(args[0], cfg)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(ui.NewInspectModel(result), tea.WithAltScreen()).Run()
	return err
}
