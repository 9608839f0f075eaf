// Package preflight provides readiness checks for the folders playlistgen
// reads from and writes to.
//
// The checks back the "playlistgen check" command. They go further than the
// two existence checks a build performs: permissions are verified with
// access(2), and the default artwork file is reported as an optional check
// because builds reference it without verifying it.
package preflight
