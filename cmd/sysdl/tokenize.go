package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sysdl/internal/diagfmt"
	"sysdl/internal/driver"
	"sysdl/internal/ui"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.sysdl|directory>",
	Short: "Tokenize a SysDL source file",
	Long:  `Tokenize breaks down a SysDL source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		result, err := driver.Tokenize(path)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		switch format {
		case "pretty":
			return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
		case "json":
			return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	maxDiagnostics, err := effectiveMaxDiagnostics(cmd, cfg)
	if err != nil {
		return err
	}

	fs, results, err := driver.TokenizeDir(cmd.Context(), path, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	failed := 0
	for _, r := range results {
		if err := reportDiagnostics(cmd, cfg, r.Bag, fs); err != nil {
			return err
		}
		if r.Bag.HasErrors() {
			failed++
			continue
		}
		fmt.Fprintf(os.Stdout, "== %s\n", r.Path)
		switch format {
		case "pretty":
			if err := diagfmt.FormatTokensPretty(os.Stdout, r.Tokens, fs); err != nil {
				return err
			}
		case "json":
			if err := diagfmt.FormatTokensJSON(os.Stdout, r.Tokens); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	printSummary(cmd, "tokenize", len(results), failed)
	return nil
}

// printSummary пишет сводку прогона директории в stderr, если не --quiet.
func printSummary(cmd *cobra.Command, title string, files, failed int) {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil || quiet {
		return
	}
	s := ui.Summary{Title: title, Files: files, Failed: failed}
	fmt.Fprintln(os.Stderr, s.Render())
}
