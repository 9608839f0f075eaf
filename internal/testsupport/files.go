package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile fills the target path with size bytes of a repeating pattern,
// creating parent directories as needed. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte{0x42}, size), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteMP3 writes an ID3v2.3 tag carrying title and artist followed by a few
// bytes of filler standing in for audio frames. Empty values are omitted.
func WriteMP3(t testing.TB, path, title, artist string) {
	t.Helper()

	var frames bytes.Buffer
	writeTextFrame(&frames, "TIT2", title)
	writeTextFrame(&frames, "TPE1", artist)

	var buf bytes.Buffer
	buf.WriteString("ID3")
	buf.Write([]byte{3, 0, 0})
	buf.Write(synchsafe(frames.Len()))
	buf.Write(frames.Bytes())
	buf.Write(bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, 16))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func writeTextFrame(buf *bytes.Buffer, id, value string) {
	if value == "" {
		return
	}
	// ISO-8859-1 encoding byte, then the text.
	payload := append([]byte{0}, value...)
	buf.WriteString(id)
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(payload)))
	buf.Write(size[:])
	buf.Write([]byte{0, 0})
	buf.Write(payload)
}

func synchsafe(n int) []byte {
	return []byte{
		byte(n>>21) & 0x7f,
		byte(n>>14) & 0x7f,
		byte(n>>7) & 0x7f,
		byte(n) & 0x7f,
	}
}
