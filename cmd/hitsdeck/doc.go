// Package main hosts the hitsdeck CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the card deck build as the root
// command, plus utilities for scaffolding and inspecting configuration and
// for checking that the external tools (ffmpeg and rsvg-convert) are
// installed. Configuration resolution and logger construction happen here
// so the internal packages stay free of terminal concerns.
package main
