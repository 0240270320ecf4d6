// Package build drives the card deck pipeline end to end: track loading,
// clip encoding, sorting, pagination, page rendering, and PDF conversion.
//
// The driver owns the error taxonomy for the run. Problems with individual
// tracks are recovered during loading; external tool failures and broken
// configuration are fatal and surface as wrapped sentinel errors so the CLI
// can exit non-zero. Statistics about the era distribution are printed to
// stdout before rendering so the curator can rebalance the selection.
package build
