package config

const (
	defaultTracksDir   = "tracks"
	defaultSongsDir    = "out"
	defaultBuildDir    = "build"
	defaultFont        = "Cantarell"
	defaultBitrateKbps = 128
	defaultClipSeconds = 60
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Font: defaultFont,
		Paths: Paths{
			TracksDir: defaultTracksDir,
			SongsDir:  defaultSongsDir,
			BuildDir:  defaultBuildDir,
		},
		Page: Page{
			Grid:      false,
			CropMarks: true,
		},
		Encode: Encode{
			BitrateKbps: defaultBitrateKbps,
			ClipSeconds: defaultClipSeconds,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: "",
		},
	}
}
