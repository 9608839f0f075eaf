package playlist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMatchesPlayerFormat(t *testing.T) {
	tracks := []Track{
		{
			Title:   "Hysteria",
			Artist:  "Muse",
			File:    "assets/music/Muse_-_Hysteria.mp3",
			Artwork: "assets/images/Muse_-_Hysteria.jpg",
		},
		{
			Title:   "Червона рута",
			Artist:  "Sofia Rotaru",
			File:    "assets/music/Sofia Rotaru - Червона рута.mp3",
			Artwork: "assets/images/default.jpg",
		},
	}

	got, err := Render("playlist", tracks)
	require.NoError(t, err)

	want := `const playlist = [
    {
        "title": "Hysteria",
        "artist": "Muse",
        "file": "assets/music/Muse_-_Hysteria.mp3",
        "artwork": "assets/images/Muse_-_Hysteria.jpg"
    },
    {
        "title": "Червона рута",
        "artist": "Sofia Rotaru",
        "file": "assets/music/Sofia Rotaru - Червона рута.mp3",
        "artwork": "assets/images/default.jpg"
    }
];`
	assert.Equal(t, want, string(got))
}

func TestRenderEmptyAndNil(t *testing.T) {
	for _, tracks := range [][]Track{nil, {}} {
		got, err := Render("playlist", tracks)
		require.NoError(t, err)
		assert.Equal(t, "const playlist = [];", string(got))
	}
}

func TestRenderDoesNotEscapeHTML(t *testing.T) {
	got, err := Render("playlist", []Track{{Title: "Rock & <Roll>", Artist: "A", File: "f", Artwork: "a"}})
	require.NoError(t, err)
	assert.Contains(t, string(got), `"title": "Rock & <Roll>"`)
}

func TestRenderEscapesQuotes(t *testing.T) {
	got, err := Render("playlist", []Track{{Title: `Say "Hi"`, Artist: `Back\slash`, File: "f", Artwork: "a"}})
	require.NoError(t, err)
	assert.Contains(t, string(got), `"title": "Say \"Hi\""`)
	assert.Contains(t, string(got), `"artist": "Back\\slash"`)
}

func TestEncodeUsesVariableName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "tracks", nil))
	assert.Equal(t, "const tracks = [];", buf.String())
}

func TestRenderWritesLineSeparatorsRaw(t *testing.T) {
	got, err := Render("playlist", []Track{{Title: "B\u2028C", Artist: "D\u2029E", File: "f", Artwork: "a"}})
	require.NoError(t, err)
	assert.Contains(t, string(got), "\"title\": \"B\u2028C\"")
	assert.Contains(t, string(got), "\"artist\": \"D\u2029E\"")
	assert.NotContains(t, string(got), `\u2028`)
	assert.NotContains(t, string(got), `\u2029`)
}

func TestRenderKeepsEscapedBackslashBeforeLineSeparatorText(t *testing.T) {
	got, err := Render("playlist", []Track{{Title: `x\u2028`, Artist: "A", File: "f", Artwork: "a"}})
	require.NoError(t, err)
	assert.Contains(t, string(got), `"title": "x\\u2028"`)
}
