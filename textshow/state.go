package textshow

import (
	"math"
	"strings"

	"github.com/tsawler/textgeom/model"
)

// epsilon is the tolerance used when classifying rotation and vertical
// flips. Components within this distance of zero count as zero.
const epsilon = 1e-6

// Metrics is the font capability the engine consumes. Implementations
// must be usable for concurrent read-only queries if shared across
// goroutines.
type Metrics interface {
	// WordWidth returns the summed glyph advance widths of s, in
	// thousandths of text-space units (1000 = 1 em at font size 1).
	// Characters the font cannot measure resolve to a best-effort
	// width; WordWidth never fails.
	WordWidth(s string) float64

	// SpaceWidth returns the font's declared nominal space width in the
	// same units. It is consulted only when the measured advance of a
	// literal space is zero.
	SpaceWidth() float64
}

// Params carries the text-state operand values in effect for one
// text-show operation.
type Params struct {
	FontSize          float64
	CharSpacing       float64 // Tc
	WordSpacing       float64 // Tw
	HorizontalScaling float64 // Tz, percent; zero selects the default of 100
	Leading           float64 // TL
	Rise              float64 // Ts
}

// State captures the geometry and metrics of one text-show operation.
// All derived fields are populated by New and are read-only afterwards.
type State struct {
	// Txt is the shown text.
	Txt string

	Params

	// Transform is the corrected effective transform: the text matrix
	// composed with the CTM, re-aligned if the page or text object was
	// rotated by a quarter or half turn.
	Transform model.Matrix

	// Tx is the x coordinate where the string begins.
	Tx float64
	// Ty is the baseline y coordinate, accounting for rise and any
	// shear in the transform.
	Ty float64
	// DisplacedTx is the x coordinate immediately after the full string
	// is drawn.
	DisplacedTx float64
	// SpaceTx is the canonical single-space advance, rounded to three
	// decimals. A value of zero means the font offers no separable
	// space.
	SpaceTx float64
	// FontHeight is the effective font height in device space.
	FontHeight float64
	// FlipVertical reports an inverted y axis (transform d component
	// negative).
	FlipVertical bool
	// Rotated reports that the transform was re-aligned from a rotated
	// orientation.
	Rotated bool

	font Metrics
}

// New derives the geometry of showing txt under the given text-state
// operands and effective transform (text matrix composed with the CTM,
// receiver-first order). The supplied Metrics is retained by reference
// and must outlive the returned State.
//
// New is total over finite inputs: a zero font size is degenerate but
// legal (font-derived contributions collapse to zero while character and
// word spacing remain). Non-finite inputs are not validated.
func New(txt string, f Metrics, p Params, transform model.Matrix) *State {
	if p.HorizontalScaling == 0 {
		p.HorizontalScaling = 100
	}

	s := &State{
		Txt:       txt,
		Params:    p,
		Transform: transform,
		font:      f,
	}

	if o := transform.Orientation(); o == 90 || o == 270 {
		// Re-align "horizontal" in text space with the page's
		// horizontal so the advance-width math below stays valid.
		s.Transform = model.Matrix{1, -transform[1], -transform[2], 1, 0, 0}.Multiply(transform)
		s.Rotated = true
	}
	// Both a and d negative indicates a true point rotation. If only d
	// is negative, the y coordinates are simply inverted.
	if s.Transform.Orientation() == 180 && s.Transform[0] < -epsilon {
		s.Transform = model.Matrix{-1, 0, 0, -1, 0, 0}.Multiply(s.Transform)
		s.Rotated = true
	}

	s.DisplacedTx = s.DisplacedTransform()[4]
	s.Tx = s.Transform[4]
	s.Ty = s.RenderTransform()[5]

	s.SpaceTx = round3(s.WordTx(" ", 0))
	if s.SpaceTx < epsilon {
		// The font assigns zero width to the space glyph (seen with
		// fine-tuned TJ positioning that never shows literal spaces).
		// Substitute a TD offset of twice the nominal space width; a
		// heuristic advance, not a measured one.
		s.SpaceTx = round3(s.WordTx("", s.font.SpaceWidth()*-2))
	}

	s.FontHeight = p.FontSize * math.Sqrt(s.Transform[1]*s.Transform[1]+s.Transform[3]*s.Transform[3])
	s.FlipVertical = s.Transform[3] < -epsilon

	return s
}

// WordTx returns the horizontal displacement caused by showing word
// under this state's operand values, in device-space units. tdOffset is
// a translation applied by a TD operator, in thousandths of text-space
// units; pass 0 when none applies.
func (s *State) WordTx(word string, tdOffset float64) float64 {
	return (s.FontSize*((s.font.WordWidth(word)-tdOffset)/1000.0) +
		s.CharSpacing +
		float64(strings.Count(word, " "))*s.WordSpacing) *
		(s.HorizontalScaling / 100.0)
}

// DisplacementMatrix returns the translation matrix caused by showing
// word with the given TD offset.
func (s *State) DisplacementMatrix(word string, tdOffset float64) model.Matrix {
	return model.Translate(s.WordTx(word, tdOffset), 0)
}

// DisplacedTransform returns the effective transform after Txt has been
// shown.
func (s *State) DisplacedTransform() model.Matrix {
	return s.DisplacementMatrix(s.Txt, 0).Multiply(s.Transform)
}

// RenderTransform returns the effective transform accounting for font
// size, horizontal scaling and rise.
func (s *State) RenderTransform() model.Matrix {
	return s.fontSizeMatrix().Multiply(s.Transform)
}

// fontSizeMatrix maps unscaled text space through font size, horizontal
// scaling and rise.
func (s *State) fontSizeMatrix() model.Matrix {
	return model.Matrix{
		s.FontSize * (s.HorizontalScaling / 100.0),
		0,
		0,
		s.FontSize,
		0,
		s.Rise,
	}
}

// BBox returns the device-space bounding box of the shown text: from the
// start position to the displaced position horizontally, one font height
// up from the baseline vertically.
func (s *State) BBox() model.BBox {
	return model.NewBBoxFromPoints(
		model.Point{X: s.Tx, Y: s.Ty},
		model.Point{X: s.DisplacedTx, Y: s.Ty + s.FontHeight},
	)
}

// round3 rounds to three decimal places using round-half-to-even.
func round3(v float64) float64 {
	return math.RoundToEven(v*1000) / 1000
}
