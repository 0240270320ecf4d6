package track

import (
	"fmt"
	"strings"

	"github.com/bogem/id3v2"
)

// id3YearFrames lists the year-bearing ID3 frames in preference order:
// original release date, then recording date, then the legacy year frame.
var id3YearFrames = []string{"TDOR", "TDRC", "TYER"}

// ID3Reader extracts tags from MP3 files carrying ID3v2 metadata.
type ID3Reader struct{}

// ReadTags parses the ID3v2 tag of the file at path.
func (ID3Reader) ReadTags(path string) (Metadata, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, path, err)
	}
	defer tag.Close()

	year := ""
	for _, frame := range id3YearFrames {
		if text := strings.TrimSpace(tag.GetTextFrame(frame).Text); text != "" {
			year = text
			break
		}
	}

	return Metadata{
		Title:  tag.Title(),
		Artist: tag.Artist(),
		Year:   year,
	}, nil
}
