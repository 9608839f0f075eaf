// Package config loads, normalizes, and validates playlistgen configuration.
//
// Every setting has a default that reproduces the fixed folder layout the
// tool was built around: audio under <program_dir>/assets/music, artwork
// under <program_dir>/assets/images, and the generated document written to
// assets/music/tracks.js. A playlistgen.toml next to the program (or a file
// passed with --config) can override any of those values; relative paths in
// it are anchored at the program directory rather than the working directory.
//
// No environment variables are consulted.
package config
