package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playlistgen/internal/playlist"
	"playlistgen/internal/testsupport"
)

func TestRootCommandGeneratesPlaylist(t *testing.T) {
	layout := testsupport.NewLayout(t)
	layout.AddMusic("Muse_-_Hysteria.mp3", "Intro.mp3")
	layout.AddImages("Muse_-_Hysteria.jpg")

	out, stderr, err := runCLI(t, layout)
	require.NoError(t, err, "stderr=%s", stderr)
	assert.Contains(t, out, "Generated "+layout.OutputPath()+" (2 tracks)")

	doc := layout.ReadOutput()
	assert.True(t, strings.HasPrefix(doc, "const playlist = ["), doc)
	assert.True(t, strings.HasSuffix(doc, "];"), doc)
	assert.Contains(t, doc, `"artwork": "assets/images/Muse_-_Hysteria.jpg"`)
	assert.Contains(t, doc, `"artist": "Unknown"`)
}

func TestBuildCommandSingularCount(t *testing.T) {
	layout := testsupport.NewLayout(t)
	layout.AddMusic("a.mp3")

	out, _, err := runCLI(t, layout, "build")
	require.NoError(t, err)
	assert.Contains(t, out, "(1 track)")
}

func TestRootCommandMissingMusicDir(t *testing.T) {
	layout := testsupport.NewLayout(t)
	require.NoError(t, os.RemoveAll(layout.MusicDir))

	out, _, err := runCLI(t, layout)
	var missing *playlist.MissingDirectoryError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "music", missing.Name)
	assert.Contains(t, err.Error(), layout.MusicDir)
	assert.NotContains(t, out, "Generated")
}

func TestBuildDryRunWritesNothing(t *testing.T) {
	layout := testsupport.NewLayout(t)
	layout.AddMusic("Artist - Song.mp3")

	out, _, err := runCLI(t, layout, "build", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "const playlist = [")
	assert.Contains(t, out, `"title": "Song"`)
	assert.NoFileExists(t, layout.OutputPath())
}

func TestListCommandPlainAndJSON(t *testing.T) {
	layout := testsupport.NewLayout(t)
	layout.AddMusic("b - two.mp3", "a - one.mp3")
	layout.AddImages("a - one.png")

	out, _, err := runCLI(t, layout, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a\tone\tassets/music/a - one.mp3\tassets/images/a - one.png", lines[0])

	out, _, err = runCLI(t, layout, "list", "--json")
	require.NoError(t, err)
	var tracks []playlist.Track
	require.NoError(t, json.Unmarshal([]byte(out), &tracks))
	require.Len(t, tracks, 2)
	assert.Equal(t, "b", tracks[1].Artist)
	assert.NoFileExists(t, layout.OutputPath(), "list must not write output")
}

func TestInspectCommandShowsTags(t *testing.T) {
	layout := testsupport.NewLayout(t)
	layout.AddTaggedMusic("Hysteria.mp3", "Hysteria", "Muse")
	layout.AddMusic("Plain.mp3")

	out, _, err := runCLI(t, layout, "inspect", "--json")
	require.NoError(t, err)
	var rows []inspectRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, "Hysteria.mp3", rows[0].File)
	assert.True(t, rows[0].TagReadable)
	assert.Equal(t, "Muse", rows[0].TagArtist)
	assert.Equal(t, "Unknown", rows[0].Artist, "filename artist stays the placeholder")
	assert.False(t, rows[1].TagReadable)

	out, _, err = runCLI(t, layout, "inspect")
	require.NoError(t, err)
	assert.Contains(t, out, "Hysteria.mp3")
	assert.Contains(t, out, "Muse")
	assert.Contains(t, out, "ID3v2.3")
}

func TestCheckCommand(t *testing.T) {
	layout := testsupport.NewLayout(t)

	out, _, err := runCLI(t, layout, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Music directory")
	assert.Contains(t, out, "warn")
	assert.Contains(t, out, "All required checks passed")

	require.NoError(t, os.RemoveAll(layout.ImagesDir))
	out, _, err = runCLI(t, layout, "check")
	require.Error(t, err)
	assert.Contains(t, out, "fail")
}

func TestConfigInitAndValidate(t *testing.T) {
	layout := testsupport.NewLayout(t)

	out, _, err := runCLI(t, layout, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "defaults were used")
	assert.Contains(t, out, "Configuration valid")

	out, _, err = runCLI(t, layout, "config", "init")
	require.NoError(t, err)
	target := filepath.Join(layout.BaseDir, "playlistgen.toml")
	assert.Contains(t, out, "Wrote sample configuration to "+target)

	_, _, err = runCLI(t, layout, "config", "init")
	require.Error(t, err, "config init must refuse to overwrite")
	_, _, err = runCLI(t, layout, "config", "init", "--overwrite")
	require.NoError(t, err)

	out, _, err = runCLI(t, layout, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Config path: "+target)
	assert.NotContains(t, out, "defaults were used")
}

func TestConfigFileChangesVariable(t *testing.T) {
	layout := testsupport.NewLayout(t)
	layout.AddMusic("a.mp3")
	configPath := filepath.Join(layout.BaseDir, "playlistgen.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[playlist]\nvariable = \"songs\"\n"), 0o644))

	_, _, err := runCLI(t, layout)
	require.NoError(t, err)
	assert.Contains(t, layout.ReadOutput(), "const songs = [")
}

func TestLogFileIsWrittenAndReleased(t *testing.T) {
	layout := testsupport.NewLayout(t)
	layout.AddMusic("a.mp3")
	logPath := filepath.Join(layout.BaseDir, "logs", "playlistgen.log")
	configPath := filepath.Join(layout.BaseDir, "playlistgen.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[logging]\nfile = \""+logPath+"\"\n"), 0o644))

	_, _, err := runCLI(t, layout)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"playlist written"`)
}

func TestNonUTF8FileNameFailsBuild(t *testing.T) {
	layout := testsupport.NewLayout(t)
	layout.AddMusic("Art\xff - Song.mp3")

	_, _, err := runCLI(t, layout)
	require.ErrorIs(t, err, playlist.ErrInvalidFileName)
	assert.NoFileExists(t, layout.OutputPath())
}

func TestInvalidLogLevelFlag(t *testing.T) {
	layout := testsupport.NewLayout(t)
	_, _, err := runCLI(t, layout, "--log-level", "loud")
	require.Error(t, err)
}
