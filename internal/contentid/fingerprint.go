package contentid

import (
	"crypto/md5"
	"encoding/hex"

	"golang.org/x/text/unicode/norm"
)

// ClipExtension is the container extension of every encoded clip. The
// fingerprint doubles as the clip filename stem and a URL component, so the
// extension is fixed alongside it.
const ClipExtension = ".mp4"

// Fingerprint derives the deterministic content identifier for a track from
// its year, artist, and title. Inputs are NFC-normalized first so the same
// tag text hashes identically whether it arrives composed or decomposed.
// Identical triples collapse to the same identifier, and therefore to the
// same clip file, by design: this is content addressing, not a collision.
func Fingerprint(year, artist, title string) string {
	input := norm.NFC.String(year + "_" + artist + "_" + title)
	sum := md5.Sum([]byte(input))
	return hex.EncodeToString(sum[:])
}

// ClipFileName returns the output filename for a content identifier.
func ClipFileName(id string) string {
	return id + ClipExtension
}

// PlaybackURL returns the public URL for a content identifier under the
// configured prefix.
func PlaybackURL(prefix, id string) string {
	return prefix + id + ClipExtension
}
