// Package track models song entries and loads them from tagged audio files.
//
// A Track pairs the human-facing metadata printed on a card (year, artist,
// title) with the content identifier and playback URL derived from it. Tag
// extraction sits behind the TagReader seam with one implementation per
// container family: ID3v2 for MP3 and a generic reader for FLAC/MP4/OGG.
//
// Loading is forgiving per file and strict per run: files with incomplete
// or unreadable tags are skipped with a warning, while an unreadable tracks
// directory fails the build.
package track
