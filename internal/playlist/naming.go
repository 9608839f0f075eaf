package playlist

import (
	"strings"
)

const audioExt = ".mp3"

// artistSeparators are tried in order; the first one present wins and the
// name is split at its first occurrence.
var artistSeparators = []string{"_-_", " - "}

// artworkExts lists candidate artwork extensions in priority order.
var artworkExts = []string{".jpg", ".png", ".jpeg"}

// IsAudioFile reports whether name ends in .mp3, ignoring case.
func IsAudioFile(name string) bool {
	return len(name) >= len(audioExt) && strings.EqualFold(name[len(name)-len(audioExt):], audioExt)
}

// StripAudioExt removes a trailing .mp3 (any case) and keeps the rest of the
// name byte for byte. Names without the extension are returned unchanged.
func StripAudioExt(name string) string {
	if !IsAudioFile(name) {
		return name
	}
	return name[:len(name)-len(audioExt)]
}

// SplitArtistTitle splits a raw title into artist and title. When no
// separator is present it returns unknown as the artist, raw as the title,
// and matched=false.
func SplitArtistTitle(raw, unknown string) (artist, title string, matched bool) {
	for _, sep := range artistSeparators {
		if before, after, ok := strings.Cut(raw, sep); ok {
			return before, after, true
		}
	}
	return unknown, raw, false
}

// joinURL builds the forward-slash reference the player resolves relative to
// its page. The filename is kept verbatim.
func joinURL(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
