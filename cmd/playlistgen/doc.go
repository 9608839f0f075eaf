// Package main hosts the playlistgen CLI entrypoint and command graph.
//
// Invoked with no arguments the tool does what it always did: read
// assets/music and assets/images next to the executable and write
// assets/music/tracks.js. The subcommands are read-only helpers around the
// same builder (list, inspect, check) plus configuration scaffolding.
//
// Keep this package thin: playlist semantics live in internal/playlist and
// this package only resolves configuration, sets up logging, and renders
// results for the terminal.
package main
