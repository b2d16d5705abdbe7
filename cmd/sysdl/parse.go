package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sysdl/internal/ast"
	"sysdl/internal/diag"
	"sysdl/internal/diagfmt"
	"sysdl/internal/driver"
	"sysdl/internal/project"
	"sysdl/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.sysdl|directory>",
	Short: "Parse a SysDL source file or directory and output the declaration tree",
	Long:  `Parse analyzes a SysDL source file or all *.sysdl files in a directory and outputs their declaration trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	parseCmd.Flags().String("cache-dir", "", "store parse results in a disk cache")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	cacheDir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return fmt.Errorf("failed to get cache-dir flag: %w", err)
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	maxDiagnostics, err := effectiveMaxDiagnostics(cmd, cfg)
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		result, err := driver.Parse(path, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if err := reportDiagnostics(cmd, cfg, result.Bag, result.FileSet); err != nil {
			return err
		}
		if cacheDir != "" {
			if err := storeInCache(cacheDir, result); err != nil {
				return err
			}
		}
		return writeTree(os.Stdout, format, result.Builder, result.Root)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	fs, results, err := driver.ParseDir(cmd.Context(), path, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	failed := 0
	for _, r := range results {
		if err := reportDiagnostics(cmd, cfg, r.Bag, fs); err != nil {
			return err
		}
		if r.Bag.HasErrors() {
			failed++
		}
		if r.Builder == nil {
			continue
		}
		fmt.Fprintf(os.Stdout, "== %s\n", r.Path)
		if err := writeTree(os.Stdout, format, r.Builder, r.Root); err != nil {
			return err
		}
	}

	printSummary(cmd, "parse", len(results), failed)
	return nil
}

func writeTree(w io.Writer, format string, builder *ast.Builder, root ast.NodeID) error {
	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(w, builder, root)
	case "json":
		return diagfmt.FormatASTJSON(w, builder, root)
	case "tree":
		return diagfmt.FormatASTTree(w, builder, root)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// reportDiagnostics печатает содержимое bag в stderr.
func reportDiagnostics(cmd *cobra.Command, cfg project.Config, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || (!bag.HasErrors() && !bag.HasWarnings()) {
		return nil
	}
	colored, err := useColor(cmd, cfg, os.Stderr)
	if err != nil {
		return err
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{Color: colored, Context: 2})
	return nil
}

func storeInCache(dir string, result *driver.ParseResult) error {
	cache, err := driver.NewDiskCache(dir)
	if err != nil {
		return err
	}
	return cache.Put(result.File, result.Builder, result.Root, result.Bag.HasErrors())
}
