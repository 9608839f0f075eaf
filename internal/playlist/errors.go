package playlist

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrLocked is returned when another process holds the output lock.
var ErrLocked = errors.New("playlist output is locked by another process")

// ErrInvalidFileName is returned for a music file whose name is not valid
// UTF-8. Such a name cannot be written into the document byte for byte.
var ErrInvalidFileName = errors.New("music file name is not valid UTF-8")

// MissingDirectoryError reports that a required input folder does not exist.
// It matches fs.ErrNotExist under errors.Is.
type MissingDirectoryError struct {
	// Name is "music" or "images".
	Name string
	Path string
}

func (e *MissingDirectoryError) Error() string {
	return fmt.Sprintf("%s directory not found: %s", e.Name, e.Path)
}

func (e *MissingDirectoryError) Unwrap() error {
	return fs.ErrNotExist
}
