// Package encode drives the ffmpeg transcoding of source tracks into
// distributable clips: mono AAC, fixed bitrate, duration capped, metadata
// stripped. Targets are content addressed, so encoding is skipped whenever
// the clip file already exists.
package encode
