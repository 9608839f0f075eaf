package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// Layout is a throwaway program directory with the assets/music and
// assets/images folders playlistgen expects.
type Layout struct {
	t         testing.TB
	BaseDir   string
	MusicDir  string
	ImagesDir string
}

// NewLayout creates an empty layout under t.TempDir().
func NewLayout(t testing.TB) *Layout {
	t.Helper()

	base := t.TempDir()
	l := &Layout{
		t:         t,
		BaseDir:   base,
		MusicDir:  filepath.Join(base, "assets", "music"),
		ImagesDir: filepath.Join(base, "assets", "images"),
	}
	for _, dir := range []string{l.MusicDir, l.ImagesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return l
}

// AddMusic creates placeholder files in the music directory.
func (l *Layout) AddMusic(names ...string) *Layout {
	l.t.Helper()
	for _, name := range names {
		WriteFile(l.t, filepath.Join(l.MusicDir, name), 256)
	}
	return l
}

// AddTaggedMusic creates an mp3 in the music directory carrying ID3 tags.
func (l *Layout) AddTaggedMusic(name, title, artist string) *Layout {
	l.t.Helper()
	WriteMP3(l.t, filepath.Join(l.MusicDir, name), title, artist)
	return l
}

// AddImages creates placeholder files in the images directory.
func (l *Layout) AddImages(names ...string) *Layout {
	l.t.Helper()
	for _, name := range names {
		WriteFile(l.t, filepath.Join(l.ImagesDir, name), 16)
	}
	return l
}

// OutputPath is the default location of the generated document.
func (l *Layout) OutputPath() string {
	return filepath.Join(l.MusicDir, "tracks.js")
}

// ReadOutput returns the generated document, failing the test if absent.
func (l *Layout) ReadOutput() string {
	l.t.Helper()
	data, err := os.ReadFile(l.OutputPath())
	if err != nil {
		l.t.Fatalf("read output: %v", err)
	}
	return string(data)
}
