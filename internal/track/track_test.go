package track_test

import (
	"errors"
	"strings"
	"testing"

	"hitsdeck/internal/contentid"
	"hitsdeck/internal/track"
)

const urlPrefix = "https://example.com/clips/"

func TestNewBuildsImmutableTrack(t *testing.T) {
	tr, err := track.New("tracks/song.mp3", track.Metadata{
		Title:  "Radio Ga Ga",
		Artist: "Queen",
		Year:   "1984-01-23",
	}, urlPrefix)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Year != 1984 {
		t.Fatalf("expected year 1984, got %d", tr.Year)
	}
	if tr.ContentID == "" || len(tr.ContentID) != 32 {
		t.Fatalf("unexpected content id %q", tr.ContentID)
	}
	if tr.PlaybackURL != urlPrefix+tr.ContentID+".mp4" {
		t.Fatalf("unexpected playback url %q", tr.PlaybackURL)
	}
	if tr.ClipFileName() != tr.ContentID+".mp4" {
		t.Fatalf("unexpected clip file name %q", tr.ClipFileName())
	}
}

func TestNewReportsAllMissingFields(t *testing.T) {
	_, err := track.New("tracks/broken.mp3", track.Metadata{Title: "Only Title"}, urlPrefix)
	if !errors.Is(err, track.ErrMissingMetadata) {
		t.Fatalf("expected ErrMissingMetadata, got %v", err)
	}
	msg := err.Error()
	for _, field := range []string{"artist", "year"} {
		if !strings.Contains(msg, field) {
			t.Fatalf("expected %q in error %q", field, msg)
		}
	}
	if !strings.Contains(msg, "tracks/broken.mp3") {
		t.Fatalf("expected path in error %q", msg)
	}
}

func TestNewKeepsUnparsableYearAsUnknown(t *testing.T) {
	tr, err := track.New("tracks/odd.mp3", track.Metadata{
		Title:  "Mystery",
		Artist: "Nobody",
		Year:   "19xx",
	}, urlPrefix)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Year != track.YearUnknown {
		t.Fatalf("expected YearUnknown, got %d", tr.Year)
	}
	// The tag text still participates in the fingerprint.
	other, err := track.New("tracks/odd.mp3", track.Metadata{Title: "Mystery", Artist: "Nobody", Year: "20xx"}, urlPrefix)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if other.ContentID == tr.ContentID {
		t.Fatal("expected different year tags to fingerprint differently")
	}
}

func TestNewTruncatesYearTagByRunes(t *testing.T) {
	// The fullwidth digit straddles the fourth byte. Truncation must keep
	// whole characters so the fingerprint input is the four-character
	// prefix, never an invalid UTF-8 fragment.
	tr, err := track.New("tracks/odd.mp3", track.Metadata{
		Title:  "Prefixed",
		Artist: "Sloppy Tagger",
		Year:   "19９84",
	}, urlPrefix)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Year != track.YearUnknown {
		t.Fatalf("expected YearUnknown for a non-ASCII year tag, got %d", tr.Year)
	}
	if want := contentid.Fingerprint("19９8", "Sloppy Tagger", "Prefixed"); tr.ContentID != want {
		t.Fatalf("expected fingerprint of the four-character prefix, got %q want %q", tr.ContentID, want)
	}
}

func TestIdenticalTriplesCollapse(t *testing.T) {
	a, err := track.New("tracks/a.mp3", track.Metadata{Title: "Same", Artist: "Band", Year: "1999"}, urlPrefix)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := track.New("tracks/b.flac", track.Metadata{Title: "Same", Artist: "Band", Year: "1999"}, urlPrefix)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.ContentID != b.ContentID || a.PlaybackURL != b.PlaybackURL {
		t.Fatal("identical (year, artist, title) must share one clip")
	}
}

func TestSortOrdersYearArtistTitleWithUnknownFirst(t *testing.T) {
	mk := func(year, artist, title string) track.Track {
		tr, err := track.New("tracks/x.mp3", track.Metadata{Title: title, Artist: artist, Year: year}, urlPrefix)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		return tr
	}
	tracks := []track.Track{
		mk("1999", "Prince", "1999"),
		mk("none", "Unknown Era", "Lost"),
		mk("1984", "Queen", "Radio Ga Ga"),
		mk("1984", "Queen", "Hammer to Fall"),
		mk("1984", "Prince", "Purple Rain"),
	}
	track.Sort(tracks)

	got := make([]string, len(tracks))
	for i, tr := range tracks {
		got[i] = tr.Title
	}
	want := []string{"Lost", "Purple Rain", "Hammer to Fall", "Radio Ga Ga", "1999"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: got %v want %v", got, want)
		}
	}
}

func TestDecade(t *testing.T) {
	cases := map[int]int{1987: 1980, 1990: 1990, 2003: 2000, track.YearUnknown: 0}
	for year, want := range cases {
		if got := track.Decade(year); got != want {
			t.Fatalf("Decade(%d) = %d, want %d", year, got, want)
		}
	}
}
