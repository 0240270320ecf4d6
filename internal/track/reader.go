package track

import "errors"

var (
	// ErrMissingMetadata marks files whose tags lack a required field. The
	// file is skipped with a warning; the build continues.
	ErrMissingMetadata = errors.New("missing metadata")

	// ErrUnsupportedFormat marks files a reader cannot parse. Skipped with a
	// warning like missing metadata.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// TagReader extracts raw metadata from one audio file. Implementations are
// registered per container format; swapping formats happens behind this
// single seam.
type TagReader interface {
	ReadTags(path string) (Metadata, error)
}

// DefaultReaders maps the recognized audio extensions (lowercase, with dot)
// to their tag readers.
func DefaultReaders() map[string]TagReader {
	id3 := ID3Reader{}
	generic := GenericReader{}
	return map[string]TagReader{
		".mp3":  id3,
		".flac": generic,
		".m4a":  generic,
		".ogg":  generic,
		".wav":  generic,
	}
}
