// Package logging assembles the structured slog loggers used by playlistgen.
//
// It owns the console and JSON handlers, level parsing, and the optional
// size-rotated log file. Console output goes to stderr so that stdout stays
// free for the generated document and command tables. Loggers handed to
// internal packages carry a component attribute, and the CLI adds a per-run
// identifier so lines from one invocation can be grouped in the log file.
package logging
