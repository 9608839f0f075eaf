package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"playlistgen/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	result := CheckDirectoryAccess("test", t.TempDir(), unix.R_OK|unix.W_OK)
	assert.True(t, result.Passed, result.Detail)
	assert.Contains(t, result.Detail, "read/write ok")
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"), unix.R_OK)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Detail, "does not exist")
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	result := CheckDirectoryAccess("test", f, unix.R_OK)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Detail, "is not a directory")
}

func TestCheckFilePresent(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "default.jpg")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	assert.True(t, CheckFilePresent("art", f).Passed)
	assert.False(t, CheckFilePresent("art", filepath.Join(dir, "other.jpg")).Passed)
	assert.False(t, CheckFilePresent("art", dir).Passed)
}

func TestRunAllOnCompleteLayout(t *testing.T) {
	layout := testsupport.NewLayout(t)
	layout.AddImages("default.jpg")

	cfg := testsupport.NewConfig(t, layout)

	results := RunAll(cfg)
	require.Len(t, results, 4)
	for _, r := range results {
		assert.True(t, r.Passed, "%s: %s", r.Name, r.Detail)
	}
	assert.False(t, Failed(results))
}

func TestRunAllMissingDefaultArtworkIsOptional(t *testing.T) {
	layout := testsupport.NewLayout(t)

	cfg := testsupport.NewConfig(t, layout)

	results := RunAll(cfg)
	artwork := results[len(results)-1]
	assert.False(t, artwork.Passed)
	assert.True(t, artwork.Optional)
	assert.False(t, Failed(results))
}

func TestRunAllMissingImagesFails(t *testing.T) {
	layout := testsupport.NewLayout(t)
	require.NoError(t, os.RemoveAll(layout.ImagesDir))

	cfg := testsupport.NewConfig(t, layout)

	results := RunAll(cfg)
	assert.True(t, Failed(results))
	assert.False(t, results[1].Passed)
}

func TestRunAllNilConfig(t *testing.T) {
	assert.Nil(t, RunAll(nil))
}
