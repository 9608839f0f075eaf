package config

const (
	defaultMusicDir          = "assets/music"
	defaultImagesDir         = "assets/images"
	defaultOutputName        = "tracks.js"
	defaultVariable          = "playlist"
	defaultMusicPrefix       = "assets/music"
	defaultImagesPrefix      = "assets/images"
	defaultArtwork           = "default.jpg"
	defaultUnknownArtist     = "Unknown"
	defaultOrder             = OrderName
	defaultCollationLanguage = "und"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLogMaxSizeMB      = 10
	defaultLogMaxBackups     = 3
	defaultLogMaxAgeDays     = 30
)

// Ordering modes for the generated playlist.
const (
	// OrderName sorts filenames by byte order.
	OrderName = "name"
	// OrderCollate sorts filenames with locale-aware collation.
	OrderCollate = "collate"
)

// Default returns a Config populated with repository defaults. BaseDir is
// left empty and filled with the program directory by Load.
func Default() Config {
	return Config{
		Paths: Paths{
			MusicDir:  defaultMusicDir,
			ImagesDir: defaultImagesDir,
		},
		Playlist: Playlist{
			Variable:          defaultVariable,
			MusicPrefix:       defaultMusicPrefix,
			ImagesPrefix:      defaultImagesPrefix,
			DefaultArtwork:    defaultArtwork,
			UnknownArtist:     defaultUnknownArtist,
			Order:             defaultOrder,
			CollationLanguage: defaultCollationLanguage,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}
