package main

import (
	"bytes"
	"testing"

	"playlistgen/internal/testsupport"
)

func runCLI(t *testing.T, layout *testsupport.Layout, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--base-dir", layout.BaseDir}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
