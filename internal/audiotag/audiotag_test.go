package audiotag

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playlistgen/internal/testsupport"
)

func TestReadID3Tags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Muse_-_Hysteria.mp3")
	testsupport.WriteMP3(t, path, "Hysteria", "Muse")

	tags, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Hysteria", tags.Title)
	assert.Equal(t, "Muse", tags.Artist)
	assert.Empty(t, tags.Album)
	assert.Equal(t, "ID3v2.3", tags.Format)
	assert.False(t, tags.Empty())
}

func TestReadUntaggedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.mp3")
	testsupport.WriteFile(t, path, 256)

	_, err := Read(path)
	require.ErrorIs(t, err, ErrNoTags)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.mp3"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoTags)
}
