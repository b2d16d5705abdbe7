package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sysdl/internal/project"
)

// loadProjectConfig подхватывает sysdl.toml, если он есть выше по дереву.
// Отсутствие файла — не ошибка: возвращаются значения по умолчанию.
func loadProjectConfig() (project.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return project.Default(), nil
	}
	path, ok := project.Find(wd)
	if !ok {
		return project.Default(), nil
	}
	return project.Load(path)
}

// effectiveMaxDiagnostics: явный флаг важнее конфига.
func effectiveMaxDiagnostics(cmd *cobra.Command, cfg project.Config) (int, error) {
	flags := cmd.Root().PersistentFlags()
	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if !flags.Changed("max-diagnostics") && cfg.Diagnostics.Max > 0 {
		return cfg.Diagnostics.Max, nil
	}
	return maxDiagnostics, nil
}

// useColor решает, красить ли вывод в f: явный флаг важнее конфига,
// "auto" смотрит на терминал.
func useColor(cmd *cobra.Command, cfg project.Config, f *os.File) (bool, error) {
	flags := cmd.Root().PersistentFlags()
	colorFlag, err := flags.GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	if !flags.Changed("color") && cfg.Diagnostics.Color != "" {
		colorFlag = cfg.Diagnostics.Color
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return isTerminal(f), nil
	}
}
