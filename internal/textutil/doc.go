// Package textutil contains the text-fitting helpers for card rendering,
// chiefly the balanced two-line breaker applied to artist and title strings.
package textutil
