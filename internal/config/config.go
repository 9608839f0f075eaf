package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// FileName is the configuration file looked up next to the program.
const FileName = "playlistgen.toml"

// Paths contains the input and output locations. Relative entries resolve
// against BaseDir, which itself defaults to the program's own directory.
type Paths struct {
	BaseDir    string `toml:"base_dir"`
	MusicDir   string `toml:"music_dir"`
	ImagesDir  string `toml:"images_dir"`
	OutputFile string `toml:"output_file"`
}

// Playlist contains the knobs that shape the generated document.
type Playlist struct {
	Variable           string `toml:"variable"`
	MusicPrefix        string `toml:"music_prefix"`
	ImagesPrefix       string `toml:"images_prefix"`
	DefaultArtwork     string `toml:"default_artwork"`
	UnknownArtist      string `toml:"unknown_artist"`
	Order              string `toml:"order"`
	CollationLanguage  string `toml:"collation_language"`
	UseTags            bool   `toml:"use_tags"`
	WarnMissingDefault bool   `toml:"warn_missing_default"`
}

// Output contains write-time behaviour.
type Output struct {
	// Lock guards the write with an advisory lock on "<output_file>.lock".
	Lock bool `toml:"lock"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format     string `toml:"format"`
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Config encapsulates all configuration values for playlistgen.
type Config struct {
	Paths    Paths    `toml:"paths"`
	Playlist Playlist `toml:"playlist"`
	Output   Output   `toml:"output"`
	Logging  Logging  `toml:"logging"`
}

// Load parses the configuration file at path (or the default location under
// baseDir when path is empty), applies defaults, and validates the result.
// A non-empty baseDir takes precedence over paths.base_dir from the file.
// It returns the resolved config file path and whether that file existed.
func Load(path, baseDir string) (*Config, string, bool, error) {
	cfg := Default()

	base := strings.TrimSpace(baseDir)
	if base != "" {
		expanded, err := expandPath(base)
		if err != nil {
			return nil, "", false, fmt.Errorf("base dir: %w", err)
		}
		base = expanded
	} else {
		programDir, err := ProgramDir()
		if err != nil {
			return nil, "", false, err
		}
		base = programDir
	}

	resolvedPath, exists, err := resolveConfigPath(path, base)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if strings.TrimSpace(baseDir) != "" || strings.TrimSpace(cfg.Paths.BaseDir) == "" {
		cfg.Paths.BaseDir = base
	} else if cfg.Paths.BaseDir, err = resolveAgainst(base, strings.TrimSpace(cfg.Paths.BaseDir)); err != nil {
		return nil, "", false, fmt.Errorf("paths.base_dir: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path, baseDir string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath := filepath.Join(baseDir, FileName)
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// ProgramDir returns the directory holding the running executable with
// symlinks resolved, so relative asset folders do not depend on the
// caller's working directory.
func ProgramDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// LockFile returns the advisory lock path used when Output.Lock is enabled.
func (c *Config) LockFile() string {
	return c.Paths.OutputFile + ".lock"
}

// DefaultArtworkPath returns the on-disk location the default artwork
// reference points at.
func (c *Config) DefaultArtworkPath() string {
	return filepath.Join(c.Paths.ImagesDir, c.Playlist.DefaultArtwork)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// resolveAgainst expands ~ and anchors relative paths at base instead of the
// working directory.
func resolveAgainst(base, pathValue string) (string, error) {
	if pathValue == "" || strings.HasPrefix(pathValue, "~") || filepath.IsAbs(pathValue) {
		return expandPath(pathValue)
	}
	return filepath.Clean(filepath.Join(base, pathValue)), nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
