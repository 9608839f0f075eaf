package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validatePlaylist(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.MusicDir == "" {
		return errors.New("paths.music_dir must be set")
	}
	if c.Paths.ImagesDir == "" {
		return errors.New("paths.images_dir must be set")
	}
	if c.Paths.OutputFile == "" {
		return errors.New("paths.output_file must be set")
	}
	return nil
}

func (c *Config) validatePlaylist() error {
	if !isIdentifier(c.Playlist.Variable) {
		return fmt.Errorf("playlist.variable %q is not a valid JavaScript identifier", c.Playlist.Variable)
	}
	if strings.ContainsAny(c.Playlist.DefaultArtwork, `/\`) {
		return fmt.Errorf("playlist.default_artwork %q must be a bare filename", c.Playlist.DefaultArtwork)
	}
	switch c.Playlist.Order {
	case OrderName:
	case OrderCollate:
		if _, err := language.Parse(c.Playlist.CollationLanguage); err != nil {
			return fmt.Errorf("playlist.collation_language %q: %w", c.Playlist.CollationLanguage, err)
		}
	default:
		return fmt.Errorf("playlist.order must be %q or %q, got %q", OrderName, OrderCollate, c.Playlist.Order)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return errors.New("logging rotation limits must not be negative")
	}
	return nil
}

// isIdentifier reports whether name is usable as a JavaScript binding name.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
