// Package config loads, normalizes, and validates hitsdeck configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads the hitsdeck.toml file from the working directory.
// The Config type centralizes every knob the build needs: the clip URL
// prefix, the card font, the track/clip/build directories, the page
// decoration toggles, and the encode tunables.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths and clear validation errors. A missing config
// file or a missing required key fails the run at startup.
package config
