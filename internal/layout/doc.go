// Package layout owns the card grid model: the Table that holds one page's
// worth of tracks, pagination of a track sequence into tables, and the
// physical geometry that places a 3x4 grid of 62mm cells on an A4 page with
// symmetric derived margins.
//
// The column mirroring applied to the QR side lives here too, since getting
// it wrong silently misaligns every double-sided print.
package layout
