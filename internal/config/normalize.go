package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizePlaylist()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.BaseDir, err = expandPath(strings.TrimSpace(c.Paths.BaseDir)); err != nil {
		return fmt.Errorf("paths.base_dir: %w", err)
	}
	base := c.Paths.BaseDir

	if strings.TrimSpace(c.Paths.MusicDir) == "" {
		c.Paths.MusicDir = defaultMusicDir
	}
	if c.Paths.MusicDir, err = resolveAgainst(base, strings.TrimSpace(c.Paths.MusicDir)); err != nil {
		return fmt.Errorf("paths.music_dir: %w", err)
	}

	if strings.TrimSpace(c.Paths.ImagesDir) == "" {
		c.Paths.ImagesDir = defaultImagesDir
	}
	if c.Paths.ImagesDir, err = resolveAgainst(base, strings.TrimSpace(c.Paths.ImagesDir)); err != nil {
		return fmt.Errorf("paths.images_dir: %w", err)
	}

	output := strings.TrimSpace(c.Paths.OutputFile)
	if output == "" {
		c.Paths.OutputFile = filepath.Join(c.Paths.MusicDir, defaultOutputName)
	} else if c.Paths.OutputFile, err = resolveAgainst(base, output); err != nil {
		return fmt.Errorf("paths.output_file: %w", err)
	}
	return nil
}

func (c *Config) normalizePlaylist() {
	c.Playlist.Variable = strings.TrimSpace(c.Playlist.Variable)
	if c.Playlist.Variable == "" {
		c.Playlist.Variable = defaultVariable
	}
	c.Playlist.MusicPrefix = strings.TrimRight(strings.TrimSpace(c.Playlist.MusicPrefix), "/")
	c.Playlist.ImagesPrefix = strings.TrimRight(strings.TrimSpace(c.Playlist.ImagesPrefix), "/")
	if strings.TrimSpace(c.Playlist.DefaultArtwork) == "" {
		c.Playlist.DefaultArtwork = defaultArtwork
	}
	if c.Playlist.UnknownArtist == "" {
		c.Playlist.UnknownArtist = defaultUnknownArtist
	}
	c.Playlist.Order = strings.ToLower(strings.TrimSpace(c.Playlist.Order))
	if c.Playlist.Order == "" {
		c.Playlist.Order = defaultOrder
	}
	c.Playlist.CollationLanguage = strings.TrimSpace(c.Playlist.CollationLanguage)
	if c.Playlist.CollationLanguage == "" {
		c.Playlist.CollationLanguage = defaultCollationLanguage
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		resolved, err := resolveAgainst(c.Paths.BaseDir, file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = resolved
	}
	return nil
}
