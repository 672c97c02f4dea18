package font

// defaultWidth is the best-effort width (in 1000ths of em) returned for
// characters the font has no entry for. Width queries never fail.
const defaultWidth = 500.0

// Font holds the advance-width metrics of a PDF font.
type Font struct {
	Name     string
	BaseFont string
	Subtype  string
	Encoding string

	// Character widths in 1000ths of em
	widths map[rune]float64

	// Nominal space width used when the font assigns no (or zero) width
	// to the literal space glyph
	spaceWidth float64
}

// NewFont creates a font with built-in metrics. For Standard 14 base
// fonts the corresponding width table is loaded; other base fonts start
// with Helvetica-like defaults and are expected to be overridden via
// SetWidths once the embedded width table is known.
func NewFont(name, baseFont, subtype string) *Font {
	f := &Font{
		Name:     name,
		BaseFont: baseFont,
		Subtype:  subtype,
		Encoding: "WinAnsiEncoding",
		widths:   make(map[rune]float64),
	}

	f.loadStandardWidths()
	f.spaceWidth = f.nominalSpaceWidth()

	return f
}

// SetWidths replaces the font's width table, e.g. with widths parsed from
// an embedded font descriptor. The map is copied; the caller keeps
// ownership of its argument. The nominal space width is recomputed.
func (f *Font) SetWidths(widths map[rune]float64) {
	f.widths = make(map[rune]float64, len(widths))
	for r, w := range widths {
		f.widths[r] = w
	}
	f.spaceWidth = f.nominalSpaceWidth()
}

// SetSpaceWidth overrides the nominal space width. Useful for fonts that
// declare a zero-width space glyph and rely on explicit positioning
// instead of literal spaces.
func (f *Font) SetSpaceWidth(w float64) {
	f.spaceWidth = w
}

// GetWidth returns the advance width of a single character in 1000ths of
// em. Characters the font cannot measure resolve to a default width.
func (f *Font) GetWidth(r rune) float64 {
	if w, ok := f.widths[r]; ok {
		return w
	}
	return defaultWidth
}

// WordWidth returns the summed advance width of every character in s, in
// 1000ths of em.
func (f *Font) WordWidth(s string) float64 {
	total := 0.0
	for _, r := range s {
		total += f.GetWidth(r)
	}
	return total
}

// SpaceWidth returns the nominal space width in 1000ths of em. This is a
// declared value, not a measurement: it may differ from WordWidth(" ")
// when the font maps the space glyph to zero width.
func (f *Font) SpaceWidth() float64 {
	return f.spaceWidth
}

// nominalSpaceWidth derives a usable space width from the width table:
// the declared width of ' ' when positive, otherwise half the default
// width.
func (f *Font) nominalSpaceWidth() float64 {
	if w, ok := f.widths[' ']; ok && w > 0 {
		return w
	}
	return defaultWidth / 2
}

// loadStandardWidths populates the width table for Standard 14 base
// fonts, falling back to Helvetica-like defaults for everything else.
func (f *Font) loadStandardWidths() {
	if widths, ok := standardFonts[f.BaseFont]; ok {
		for r, w := range widths {
			f.widths[r] = w
		}
		return
	}

	for r := rune(32); r <= 126; r++ {
		if w, ok := helveticaWidths[r]; ok {
			f.widths[r] = w
		} else {
			f.widths[r] = defaultWidth
		}
	}
}

// DecodeString decodes raw string bytes to a Unicode string:
//  1. A UTF-16 byte order mark (FEFF or FFFE) selects UTF-16BE/LE.
//  2. Otherwise the bytes are taken as-is.
//
// The result is normalized to NFC.
func (f *Font) DecodeString(data []byte) string {
	if len(data) >= 2 {
		if data[0] == 0xFE && data[1] == 0xFF {
			return NormalizeUnicode(DecodeUTF16BE(data[2:]))
		}
		if data[0] == 0xFF && data[1] == 0xFE {
			return NormalizeUnicode(DecodeUTF16LE(data[2:]))
		}
	}
	return NormalizeUnicode(string(data))
}
