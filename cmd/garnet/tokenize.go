package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"garnet/internal/diagfmt"
	"garnet/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.rb",
	Short: "Tokenize a Ruby source file",
	Long:  `Tokenize breaks down a Ruby source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	cfg, err := resolveParseConfig(cmd)
	if err != nil {
		return err
	}
	result, err := driver.Tokenize(path, driver.Config{MaxDiagnostics: cfg.MaxDiagnostics})
	if err != nil {
		return err
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}

	switch format {
	case "json":
		return diagfmt.TokensJSON(os.Stdout, result.Tokens)
	case "pretty":
		return diagfmt.TokensPretty(os.Stdout, result.Tokens, result.FileSet)
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}
