package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sysdl/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sysdl",
	Short: "SysDL model parser and toolchain",
	Long:  `sysdl parses SysDL model sources into declaration trees with diagnostic tools`,
}

func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
