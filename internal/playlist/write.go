package playlist

import (
	"fmt"

	"github.com/gofrs/flock"

	"playlistgen/internal/fileutil"
	"playlistgen/internal/logging"
)

// Write renders tracks and replaces the output file. Nothing touches the
// target until the whole document has been rendered.
func (b *Builder) Write(tracks []Track) (string, error) {
	data, err := Render(b.opts.Variable, tracks)
	if err != nil {
		return "", err
	}

	if b.opts.LockFile != "" {
		lock := flock.New(b.opts.LockFile)
		ok, err := lock.TryLock()
		if err != nil {
			return "", fmt.Errorf("acquire output lock: %w", err)
		}
		if !ok {
			return "", ErrLocked
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				b.logger.Warn("release output lock failed", logging.Error(err))
			}
		}()
	}

	if err := fileutil.WriteFileAtomic(b.opts.OutputFile, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", b.opts.OutputFile, err)
	}

	b.logger.Info("playlist written",
		logging.String(logging.FieldPath, b.opts.OutputFile),
		logging.Int(logging.FieldCount, len(tracks)),
	)
	return b.opts.OutputFile, nil
}
