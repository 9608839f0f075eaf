// Package playlist turns a folder of mp3 files and a folder of artwork into
// the JavaScript data file a front-end player loads.
//
// A run moves through Validating, Building and Writing. Validation only
// checks that the music and images folders exist and reports the missing
// path with a *MissingDirectoryError. Building lists the images folder once,
// walks the music folder in sorted order and derives one Track per .mp3
// entry: artist and title come from the filename ("Artist_-_Title" first,
// then "Artist - Title", else the unknown-artist placeholder) and artwork is
// the first of <title>.jpg, <title>.png, <title>.jpeg present in the images
// folder, falling back to the default artwork name without checking that it
// exists. Writing renders "const <variable> = <json>;" in memory and swaps it
// into place atomically, so a failed run never leaves a partial file.
package playlist
