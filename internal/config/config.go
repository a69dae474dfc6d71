package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Config represents the gitdiff configuration.
type Config struct {
	Output  string   `json:"output"`
	Exclude []string `json:"exclude"`
	GitBin  string   `json:"gitBin,omitempty"`
}

// DefaultExclude is the pathspec every run excludes unless configured
// otherwise: the generated database migrations directory.
const DefaultExclude = "src/Migration/Infrastructure/Persistence/Migrations/"

// DefaultOutput is the output file name, resolved inside the repository
// path when not given as an absolute path or flag.
const DefaultOutput = "gitbranch.diff"

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Output:  DefaultOutput,
		Exclude: []string{DefaultExclude},
		GitBin:  "git",
	}
}

// ConfigDir returns the platform-appropriate config directory for gitdiff.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitdiff"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "gitdiff"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gitdiff"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "gitdiff"), nil
	default:
		return filepath.Join(home, ".config", "gitdiff"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Load builds the effective config by merging: defaults <- file <- env.
// Flag values are applied by the CLI layer on top of the result.
func Load() (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Output != "" {
		dst.Output = src.Output
	}
	if len(src.Exclude) > 0 {
		dst.Exclude = src.Exclude
	}
	if src.GitBin != "" {
		dst.GitBin = src.GitBin
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("GITDIFF_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("GITDIFF_GIT_BIN"); v != "" {
		cfg.GitBin = v
	}
	if v := os.Getenv("GITDIFF_EXCLUDE"); v != "" {
		cfg.Exclude = splitComma(v)
	}
}

func splitComma(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
