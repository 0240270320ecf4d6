// Package logging assembles the structured slog loggers used across the
// build pipeline.
//
// It owns the console and JSON handlers, picks a sensible default format
// based on whether stderr is a terminal, and exposes a no-op logger for
// tests and wiring code that cannot fail. Log records go to stderr; stdout
// is reserved for the track statistics tables.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits lines with the same shape.
package logging
