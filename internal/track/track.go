package track

import (
	"fmt"
	"slices"
	"strings"

	"hitsdeck/internal/contentid"
)

// YearUnknown marks a track whose year tag could not be parsed as digits.
// Unknown years sort before every real year and collect into their own
// statistics bucket instead of failing the build over a single soft field.
const YearUnknown = 0

// Metadata is the raw tag data a TagReader extracts from an audio file.
// Year is the unparsed tag value; Track construction truncates it to the
// leading four characters.
type Metadata struct {
	Title  string
	Artist string
	Year   string
}

// Track is one song entry. Constructed once per valid source file during
// loading and immutable afterwards.
type Track struct {
	Year        int
	SourcePath  string
	Title       string
	Artist      string
	ContentID   string
	PlaybackURL string
}

// New validates the extracted metadata and constructs an immutable Track.
// Title, artist, and a non-empty year tag are required; absence of any of
// them is a missing-metadata error naming the gaps, and the caller skips the
// file. The content identifier hashes the four-character year string, so an
// unparsable year still fingerprints by its tag text while Year becomes
// YearUnknown.
func New(path string, meta Metadata, urlPrefix string) (Track, error) {
	title := strings.TrimSpace(meta.Title)
	artist := strings.TrimSpace(meta.Artist)
	year := firstFour(strings.TrimSpace(meta.Year))

	var missing []string
	if title == "" {
		missing = append(missing, "title")
	}
	if artist == "" {
		missing = append(missing, "artist")
	}
	if year == "" {
		missing = append(missing, "year")
	}
	if len(missing) > 0 {
		return Track{}, fmt.Errorf("%w: %s: no %s", ErrMissingMetadata, path, strings.Join(missing, ", "))
	}

	id := contentid.Fingerprint(year, artist, title)
	return Track{
		Year:        parseYear(year),
		SourcePath:  path,
		Title:       title,
		Artist:      artist,
		ContentID:   id,
		PlaybackURL: contentid.PlaybackURL(urlPrefix, id),
	}, nil
}

// ClipFileName returns the encoded clip filename for the track.
func (t Track) ClipFileName() string {
	return contentid.ClipFileName(t.ContentID)
}

// Sort orders tracks by year, then artist, then title. Unknown years come
// first.
func Sort(tracks []Track) {
	slices.SortFunc(tracks, func(a, b Track) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		if c := strings.Compare(a.Artist, b.Artist); c != 0 {
			return c
		}
		return strings.Compare(a.Title, b.Title)
	})
}

// Decade returns the decade bucket for a year, e.g. 1987 -> 1980.
func Decade(year int) int {
	return 10 * (year / 10)
}

// firstFour truncates by runes so a tag that opens with a multibyte
// character cannot leave an invalid UTF-8 fragment in the fingerprint.
func firstFour(s string) string {
	count := 0
	for i := range s {
		if count == 4 {
			return s[:i]
		}
		count++
	}
	return s
}

func parseYear(s string) int {
	if len(s) != 4 {
		return YearUnknown
	}
	year := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return YearUnknown
		}
		year = year*10 + int(r-'0')
	}
	return year
}
