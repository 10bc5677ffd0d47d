package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"garnet"
	"garnet/internal/diagfmt"
	"garnet/internal/driver"
	"garnet/internal/serialize"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.rb|directory>",
	Short: "Parse Ruby source and output the syntax tree",
	Long:  `Parse analyzes a Ruby source file or all *.rb files in a directory and outputs their syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
	parseCmd.Flags().String("dump", "", "write the serialized tree to this file")
	parseCmd.Flags().String("load", "", "decode a previously dumped tree instead of parsing")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "tree", "json":
	default:
		return fmt.Errorf("unsupported format %q (must be tree or json)", format)
	}
	dumpPath, err := cmd.Flags().GetString("dump")
	if err != nil {
		return fmt.Errorf("failed to get dump flag: %w", err)
	}
	loadPath, err := cmd.Flags().GetString("load")
	if err != nil {
		return fmt.Errorf("failed to get load flag: %w", err)
	}

	cfg, err := resolveParseConfig(cmd)
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		if dumpPath != "" || loadPath != "" {
			return fmt.Errorf("--dump and --load only apply to a single file")
		}
		return parseDirectory(cmd, path, cfg, format)
	}

	if loadPath != "" {
		return loadTree(loadPath, path, format)
	}

	result, err := garnet.ParseFile(path, cfg)
	if err != nil {
		return err
	}
	printDiagnostics(cmd, result)

	if dumpPath != "" {
		if err := dumpTree(result, dumpPath); err != nil {
			return err
		}
	}

	switch format {
	case "json":
		return diagfmt.TreeJSON(os.Stdout, result.Tree)
	default:
		diagfmt.Tree(os.Stdout, result.Tree)
		return nil
	}
}

func parseDirectory(cmd *cobra.Command, dir string, cfg garnet.ParseConfig, format string) error {
	version, err := garnet.ResolveVersion(cfg.Grammar)
	if err != nil {
		return err
	}
	results, err := driver.ParseDir(cmd.Context(), dir, driver.Config{
		MaxDiagnostics: cfg.MaxDiagnostics,
		Version:        version,
	})
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		printDiagnostics(cmd, r.Result)
		fmt.Fprintf(os.Stdout, "=== %s\n", r.Path)
		switch format {
		case "json":
			if err := diagfmt.TreeJSON(os.Stdout, r.Result.Tree); err != nil {
				return err
			}
		default:
			diagfmt.Tree(os.Stdout, r.Result.Tree)
		}
	}
	return nil
}

func dumpTree(result *driver.ParseResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dump file: %w", err)
	}
	defer f.Close()
	if err := serialize.Encode(f, result.Tree); err != nil {
		return err
	}
	return f.Close()
}

// loadTree renders a serialized tree against the source it was parsed
// from.
func loadTree(loadPath, srcPath, format string) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}
	f, err := os.Open(loadPath)
	if err != nil {
		return fmt.Errorf("failed to open dump file: %w", err)
	}
	defer f.Close()

	tree, err := serialize.Decode(f, src)
	if err != nil {
		return err
	}
	if format == "json" {
		return diagfmt.TreeJSON(os.Stdout, tree)
	}
	diagfmt.Tree(os.Stdout, tree)
	return nil
}

func printDiagnostics(cmd *cobra.Command, result *driver.ParseResult) {
	if result.Bag.Len() == 0 {
		return
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet {
		return
	}
	result.Bag.Sort()
	diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	})
}
