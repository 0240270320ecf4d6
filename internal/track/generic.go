package track

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
)

// genericYearKeys lists the year-bearing comment fields in preference
// order, matched case-insensitively against the raw tag map.
var genericYearKeys = []string{"originaldate", "date", "year"}

// GenericReader extracts tags from FLAC, MP4, OGG, and similar containers.
type GenericReader struct{}

// ReadTags parses container-level metadata of the file at path.
func (GenericReader) ReadTags(path string) (Metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, path, err)
	}
	defer file.Close()

	meta, err := tag.ReadFrom(file)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, path, err)
	}

	return Metadata{
		Title:  meta.Title(),
		Artist: meta.Artist(),
		Year:   rawYear(meta),
	}, nil
}

// rawYear prefers the original-release date over the general date over the
// year field, falling back to the parsed year when no raw field matches.
func rawYear(meta tag.Metadata) string {
	raw := meta.Raw()
	for _, key := range genericYearKeys {
		for name, value := range raw {
			if !strings.EqualFold(name, key) {
				continue
			}
			if text, ok := value.(string); ok && strings.TrimSpace(text) != "" {
				return strings.TrimSpace(text)
			}
		}
	}
	if year := meta.Year(); year > 0 {
		return strconv.Itoa(year)
	}
	return ""
}
