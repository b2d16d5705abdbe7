package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName — имя файла конфигурации проекта.
const ConfigFileName = "sysdl.toml"

// Config описывает sysdl.toml.
type Config struct {
	Project     ProjectSection     `toml:"project"`
	Diagnostics DiagnosticsSection `toml:"diagnostics"`
}

// ProjectSection — секция [project].
type ProjectSection struct {
	Name      string `toml:"name"`
	SourceDir string `toml:"source-dir"`
}

// DiagnosticsSection — секция [diagnostics].
type DiagnosticsSection struct {
	Max   int    `toml:"max"`
	Color string `toml:"color"`
}

// Default returns the configuration used when no sysdl.toml exists.
func Default() Config {
	return Config{
		Project: ProjectSection{
			SourceDir: ".",
		},
		Diagnostics: DiagnosticsSection{
			Max:   100,
			Color: "auto",
		},
	}
}

// Load читает конфигурацию из path, накладывая значения поверх Default.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Diagnostics.Max <= 0 {
		cfg.Diagnostics.Max = Default().Diagnostics.Max
	}
	switch cfg.Diagnostics.Color {
	case "auto", "on", "off":
	default:
		return Config{}, fmt.Errorf("%s: diagnostics.color must be auto|on|off, got %q", path, cfg.Diagnostics.Color)
	}
	return cfg, nil
}

// Find ищет sysdl.toml от dir вверх до корня.
// Возвращает путь и true, если файл найден.
func Find(dir string) (string, bool) {
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
