package preflight

import (
	"path/filepath"

	"golang.org/x/sys/unix"

	"playlistgen/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	// Optional checks are reported but never fail a run.
	Optional bool
	Detail   string
}

// RunAll executes every readiness check for the configured layout.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Music directory", cfg.Paths.MusicDir, unix.R_OK|unix.X_OK),
		CheckDirectoryAccess("Images directory", cfg.Paths.ImagesDir, unix.R_OK|unix.X_OK),
		CheckDirectoryAccess("Output directory", filepath.Dir(cfg.Paths.OutputFile), unix.W_OK|unix.X_OK),
	}

	artwork := CheckFilePresent("Default artwork", cfg.DefaultArtworkPath())
	artwork.Optional = true
	results = append(results, artwork)

	return results
}

// Failed reports whether any required check did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed && !r.Optional {
			return true
		}
	}
	return false
}
