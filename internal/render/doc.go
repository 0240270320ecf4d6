// Package render composes the two printable faces of a card table as SVG.
//
// The identity side carries each card's year, artist, and title; the lookup
// side carries the QR code for the clip URL, with its column order mirrored
// so double-sided prints register after flipping the sheet. Both sides draw
// the same grid geometry, optional grid lines, crop marks, and a footer
// label.
package render
