// Package audiotag reads embedded metadata (ID3, MP4, FLAC, OGG tags) from
// audio files. Playlist generation never requires tags; they back the
// "inspect" command and the optional artist fallback.
package audiotag

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dhowden/tag"
)

// ErrNoTags is returned when a file carries no recognizable tag block.
var ErrNoTags = errors.New("no embedded tags")

// Tags holds the subset of embedded metadata playlistgen cares about.
type Tags struct {
	Title  string
	Artist string
	Album  string
	Format string
}

// Empty reports whether no usable text field was found.
func (t Tags) Empty() bool {
	return t.Title == "" && t.Artist == "" && t.Album == ""
}

// Read opens path and decodes its embedded tags.
func Read(path string) (Tags, error) {
	file, err := os.Open(path)
	if err != nil {
		return Tags{}, fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	meta, err := tag.ReadFrom(file)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return Tags{}, ErrNoTags
		}
		return Tags{}, fmt.Errorf("read tags from %s: %w", path, err)
	}

	return Tags{
		Title:  strings.TrimSpace(meta.Title()),
		Artist: strings.TrimSpace(meta.Artist()),
		Album:  strings.TrimSpace(meta.Album()),
		Format: string(meta.Format()),
	}, nil
}
