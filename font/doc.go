// Package font provides glyph advance-width metrics for text geometry
// computation.
//
// The central type is [Font], which answers width queries in thousandths
// of text-space units (1000 units = 1 em at font size 1):
//
//	f := font.NewFont("F1", "Helvetica", "Type1")
//	w := f.WordWidth("Hello") // summed glyph advances
//	s := f.SpaceWidth()       // nominal space width
//
// Widths for the Standard 14 fonts are built in. Fonts with embedded
// width tables can override them with [Font.SetWidths] and
// [Font.SetSpaceWidth]; characters the font cannot measure resolve to a
// best-effort default width, so width queries never fail.
//
// # String decoding
//
// [Font.DecodeString] converts raw string bytes to Unicode, handling
// UTF-16 byte order marks and normalizing the result to NFC so that
// downstream comparison and width lookups see composed characters.
//
// A Font's width tables are immutable after setup, making concurrent
// read-only queries safe.
package font
