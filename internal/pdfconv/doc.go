// Package pdfconv combines the rendered per-page SVG files into one
// printable PDF via the external rsvg-convert tool.
package pdfconv
