// Package contentid derives stable content identifiers for tracks.
//
// The identifier is a 128-bit hex digest of the normalized year/artist/title
// triple. It names the encoded clip file and forms the tail of the playback
// URL, so it must be deterministic across runs and platforms.
package contentid
