package playlist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"playlistgen/internal/audiotag"
	"playlistgen/internal/config"
	"playlistgen/internal/logging"
)

// Options carries every path and naming rule a Builder needs.
type Options struct {
	MusicDir   string
	ImagesDir  string
	OutputFile string

	MusicPrefix    string
	ImagesPrefix   string
	DefaultArtwork string
	UnknownArtist  string
	Variable       string

	Order             string
	CollationLanguage string

	UseTags            bool
	WarnMissingDefault bool
	// LockFile, when set, is held with an advisory lock for the write.
	LockFile string
}

// OptionsFromConfig maps a loaded configuration onto builder options.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		MusicDir:           cfg.Paths.MusicDir,
		ImagesDir:          cfg.Paths.ImagesDir,
		OutputFile:         cfg.Paths.OutputFile,
		MusicPrefix:        cfg.Playlist.MusicPrefix,
		ImagesPrefix:       cfg.Playlist.ImagesPrefix,
		DefaultArtwork:     cfg.Playlist.DefaultArtwork,
		UnknownArtist:      cfg.Playlist.UnknownArtist,
		Variable:           cfg.Playlist.Variable,
		Order:              cfg.Playlist.Order,
		CollationLanguage:  cfg.Playlist.CollationLanguage,
		UseTags:            cfg.Playlist.UseTags,
		WarnMissingDefault: cfg.Playlist.WarnMissingDefault,
	}
	if cfg.Output.Lock {
		opts.LockFile = cfg.LockFile()
	}
	return opts
}

// Builder scans the input folders and produces the playlist document.
type Builder struct {
	opts     Options
	logger   *slog.Logger
	readTags func(string) (audiotag.Tags, error)
}

// New constructs a Builder. A nil logger discards output.
func New(opts Options, logger *slog.Logger) *Builder {
	return &Builder{
		opts:     opts,
		logger:   logging.NewComponentLogger(logger, "builder"),
		readTags: audiotag.Read,
	}
}

// Validate checks that both input folders exist. Only absence is
// classified; any other stat failure is returned wrapped.
func (b *Builder) Validate() error {
	for _, dir := range []struct{ name, path string }{
		{"music", b.opts.MusicDir},
		{"images", b.opts.ImagesDir},
	} {
		if _, err := os.Stat(dir.path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return &MissingDirectoryError{Name: dir.name, Path: dir.path}
			}
			return fmt.Errorf("stat %s directory: %w", dir.name, err)
		}
	}
	return nil
}

// Build validates the inputs and returns one Track per .mp3 file, in sorted
// filename order. It never returns a nil slice on success.
func (b *Builder) Build(ctx context.Context) ([]Track, error) {
	tracks, _, err := b.build(ctx)
	return tracks, err
}

func (b *Builder) build(ctx context.Context) ([]Track, int, error) {
	if err := b.Validate(); err != nil {
		return nil, 0, err
	}

	images, err := listNames(b.opts.ImagesDir, false)
	if err != nil {
		return nil, 0, fmt.Errorf("list images directory: %w", err)
	}
	index := NewArtworkIndex(images)

	audio, err := b.audioFiles()
	if err != nil {
		return nil, 0, err
	}

	b.logger.Debug("scanning inputs",
		logging.String("music_dir", b.opts.MusicDir),
		logging.String("images_dir", b.opts.ImagesDir),
		logging.Int("audio_files", len(audio)),
		logging.Int("images", index.Len()),
		logging.Bool("use_tags", b.opts.UseTags),
	)

	tracks := make([]Track, 0, len(audio))
	fallbacks := 0
	for _, name := range audio {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		if !utf8.ValidString(name) {
			return nil, 0, fmt.Errorf("%w: %q", ErrInvalidFileName, name)
		}
		track, usedDefault := b.trackFor(name, index)
		if usedDefault {
			fallbacks++
		}
		tracks = append(tracks, track)
	}

	if fallbacks > 0 && b.opts.WarnMissingDefault && !index.Has(b.opts.DefaultArtwork) {
		b.logger.Warn("default artwork is referenced but missing",
			logging.String(logging.FieldPath, filepath.Join(b.opts.ImagesDir, b.opts.DefaultArtwork)),
			logging.Int("tracks_affected", fallbacks),
		)
	}
	return tracks, fallbacks, nil
}

func (b *Builder) trackFor(name string, index *ArtworkIndex) (Track, bool) {
	raw := StripAudioExt(name)
	artist, title, matched := SplitArtistTitle(raw, b.opts.UnknownArtist)
	if !matched && b.opts.UseTags {
		artist = b.artistFromTags(name, artist)
	}

	artwork, found := index.Resolve(raw, b.opts.DefaultArtwork)
	if !found {
		b.logger.Debug("no artwork match, using default",
			logging.String(logging.FieldFile, name),
			logging.String("artwork", artwork),
		)
	}

	track := Track{
		Title:   title,
		Artist:  artist,
		File:    joinURL(b.opts.MusicPrefix, name),
		Artwork: joinURL(b.opts.ImagesPrefix, artwork),
	}
	b.logger.Debug("track added",
		logging.String(logging.FieldFile, name),
		logging.String("artist", track.Artist),
		logging.String("title", track.Title),
	)
	return track, !found
}

func (b *Builder) artistFromTags(name, fallback string) string {
	tags, err := b.readTags(filepath.Join(b.opts.MusicDir, name))
	switch {
	case errors.Is(err, audiotag.ErrNoTags):
		return fallback
	case err != nil:
		b.logger.Warn("tag read failed, keeping filename metadata",
			logging.String(logging.FieldFile, name),
			logging.Error(err),
		)
		return fallback
	case tags.Artist == "":
		return fallback
	}
	return tags.Artist
}

// Run performs Validate, Build and Write in sequence.
func (b *Builder) Run(ctx context.Context) (Result, error) {
	tracks, fallbacks, err := b.build(ctx)
	if err != nil {
		return Result{}, err
	}
	path, err := b.Write(tracks)
	if err != nil {
		return Result{}, err
	}
	return Result{OutputPath: path, Count: len(tracks), DefaultArtwork: fallbacks}, nil
}

// AudioFiles validates the inputs and returns the .mp3 filenames of the
// music folder in playlist order.
func (b *Builder) AudioFiles() ([]string, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b.audioFiles()
}

func (b *Builder) audioFiles() ([]string, error) {
	names, err := listNames(b.opts.MusicDir, true)
	if err != nil {
		return nil, fmt.Errorf("list music directory: %w", err)
	}
	audio := names[:0]
	for _, name := range names {
		if IsAudioFile(name) {
			audio = append(audio, name)
		}
	}
	if err := sortNames(audio, b.opts.Order, b.opts.CollationLanguage); err != nil {
		return nil, err
	}
	return audio, nil
}

// listNames returns entry names of dir. With filesOnly, subdirectories are
// skipped.
func listNames(dir string, filesOnly bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if filesOnly && entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
