// Package qr turns playback URLs into printable QR symbols: an SVG path in
// millimetre units and the symbol's physical side length.
package qr
