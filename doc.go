// Package ustring implements Unicode-aware operations over immutable string
// values. It distinguishes three units of meaning: raw bytes, codepoints
// (Unicode scalar values, 1-4 bytes each), and extended grapheme clusters
// (what users perceive as one character).
//
// Every operation is total. Malformed bytes decode to opaque one-byte units
// instead of failing, so one bad byte never corrupts the interpretation of
// the bytes after it. Out-of-range logical indices yield empty results or
// ok=false, never an error. All scans are linear in the byte length of the
// input; the one documented exception is the negative-range slice path,
// which makes an extra pass to materialize cluster widths.
//
// Logical indices count grapheme clusters, 0-based, with negative values
// resolved from the end.
//
// Grapheme boundaries follow the Unicode extended grapheme cluster rules
// (UAX #29) via github.com/rivo/uniseg. Case conversion and normalization
// use golang.org/x/text with root-locale mappings; no operation is
// locale-sensitive.
package ustring
