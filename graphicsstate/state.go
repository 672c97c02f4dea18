package graphicsstate

import (
	"fmt"

	"github.com/tsawler/textgeom/model"
	"github.com/tsawler/textgeom/textshow"
)

// GraphicsState holds the state a content-stream interpreter accumulates
// while walking a page: the current transformation matrix, the text
// state, and the q/Q save stack.
type GraphicsState struct {
	// Current Transformation Matrix
	CTM model.Matrix

	// Text state
	Text TextState

	// Saved states for q/Q operators
	stack []*GraphicsState
}

// TextState holds the text-specific parameters accumulated by the text
// state operators.
type TextState struct {
	// Font and size (Tf)
	FontName string
	FontSize float64

	// Character and word spacing (Tc, Tw)
	CharSpacing float64
	WordSpacing float64

	// Horizontal scaling percentage (Tz)
	HorizontalScaling float64

	// Leading (TL)
	Leading float64

	// Text rendering mode (Tr)
	RenderingMode int

	// Text rise (Ts)
	Rise float64

	// Text matrices (Tm and the line matrix)
	TextMatrix     model.Matrix
	TextLineMatrix model.Matrix
}

// NewGraphicsState creates a graphics state with PDF default values.
func NewGraphicsState() *GraphicsState {
	return &GraphicsState{
		CTM: model.Identity(),
		Text: TextState{
			FontSize:          12.0,
			HorizontalScaling: 100.0,
			TextMatrix:        model.Identity(),
			TextLineMatrix:    model.Identity(),
		},
	}
}

// Clone creates a copy of the graphics state without its save stack.
func (gs *GraphicsState) Clone() *GraphicsState {
	return &GraphicsState{
		CTM:  gs.CTM,
		Text: gs.Text,
	}
}

// Save pushes the current graphics state onto the stack (q operator).
func (gs *GraphicsState) Save() {
	gs.stack = append(gs.stack, gs.Clone())
}

// Restore pops a graphics state from the stack (Q operator).
func (gs *GraphicsState) Restore() error {
	if len(gs.stack) == 0 {
		return fmt.Errorf("graphics state stack underflow")
	}

	saved := gs.stack[len(gs.stack)-1]
	gs.stack = gs.stack[:len(gs.stack)-1]

	gs.CTM = saved.CTM
	gs.Text = saved.Text

	return nil
}

// Transform applies a transformation matrix to the CTM (cm operator).
// The operand matrix maps into the space described by the current CTM,
// so it composes on the left.
func (gs *GraphicsState) Transform(m model.Matrix) {
	gs.CTM = m.Multiply(gs.CTM)
}

// SetFont sets the current font name and size (Tf operator).
func (gs *GraphicsState) SetFont(name string, size float64) {
	gs.Text.FontName = name
	gs.Text.FontSize = size
}

// SetCharSpacing sets character spacing (Tc operator).
func (gs *GraphicsState) SetCharSpacing(spacing float64) {
	gs.Text.CharSpacing = spacing
}

// SetWordSpacing sets word spacing (Tw operator).
func (gs *GraphicsState) SetWordSpacing(spacing float64) {
	gs.Text.WordSpacing = spacing
}

// SetHorizontalScaling sets horizontal scaling (Tz operator).
func (gs *GraphicsState) SetHorizontalScaling(scale float64) {
	gs.Text.HorizontalScaling = scale
}

// SetLeading sets text leading (TL operator).
func (gs *GraphicsState) SetLeading(leading float64) {
	gs.Text.Leading = leading
}

// SetRenderingMode sets the text rendering mode (Tr operator).
func (gs *GraphicsState) SetRenderingMode(mode int) {
	gs.Text.RenderingMode = mode
}

// SetTextRise sets text rise (Ts operator).
func (gs *GraphicsState) SetTextRise(rise float64) {
	gs.Text.Rise = rise
}

// BeginText resets the text matrices (BT operator).
func (gs *GraphicsState) BeginText() {
	gs.Text.TextMatrix = model.Identity()
	gs.Text.TextLineMatrix = model.Identity()
}

// EndText ends a text object (ET operator).
func (gs *GraphicsState) EndText() {
	// Text matrices are only valid inside BT/ET; nothing to reset here.
}

// SetTextMatrix sets the text matrix and line matrix (Tm operator).
func (gs *GraphicsState) SetTextMatrix(m model.Matrix) {
	gs.Text.TextMatrix = m
	gs.Text.TextLineMatrix = m
}

// TranslateText moves to the start of the next line, offset from the
// current line start (Td operator).
func (gs *GraphicsState) TranslateText(tx, ty float64) {
	gs.Text.TextLineMatrix = model.Translate(tx, ty).Multiply(gs.Text.TextLineMatrix)
	gs.Text.TextMatrix = gs.Text.TextLineMatrix
}

// TranslateTextSetLeading translates text and sets leading to -ty (TD
// operator).
func (gs *GraphicsState) TranslateTextSetLeading(tx, ty float64) {
	gs.SetLeading(-ty)
	gs.TranslateText(tx, ty)
}

// NextLine moves to the next line using the current leading (T*
// operator).
func (gs *GraphicsState) NextLine() {
	gs.TranslateText(0, -gs.Text.Leading)
}

// EffectiveTransform returns the text matrix composed with the CTM: the
// transform in effect for the next text-show operation.
func (gs *GraphicsState) EffectiveTransform() model.Matrix {
	return gs.Text.TextMatrix.Multiply(gs.CTM)
}

// ShowText computes the geometry record for txt shown under the current
// state (Tj operator, or one string of a TJ array) and advances the text
// matrix by the exact displacement of the shown string. The supplied
// metrics must belong to the current font.
func (gs *GraphicsState) ShowText(txt string, f textshow.Metrics) *textshow.State {
	st := textshow.New(txt, f, gs.params(), gs.EffectiveTransform())
	gs.Text.TextMatrix = model.Translate(st.WordTx(txt, 0), 0).Multiply(gs.Text.TextMatrix)
	return st
}

// AdjustText applies a TJ numeric adjustment, in thousandths of a unit
// of text space. Positive values move the next glyph left.
func (gs *GraphicsState) AdjustText(n float64) {
	tx := -n / 1000.0 * gs.Text.FontSize * (gs.Text.HorizontalScaling / 100.0)
	gs.Text.TextMatrix = model.Translate(tx, 0).Multiply(gs.Text.TextMatrix)
}

// ShowTextArray processes a TJ array of strings and numeric adjustments,
// returning one geometry record per string in content order.
func (gs *GraphicsState) ShowTextArray(items []interface{}, f textshow.Metrics) []*textshow.State {
	var states []*textshow.State

	for _, item := range items {
		switch v := item.(type) {
		case string:
			states = append(states, gs.ShowText(v, f))
		case int:
			gs.AdjustText(float64(v))
		case int64:
			gs.AdjustText(float64(v))
		case float64:
			gs.AdjustText(v)
		}
	}

	return states
}

// TextPosition returns the current text position in device space,
// accounting for rise.
func (gs *GraphicsState) TextPosition() model.Point {
	tm := gs.Text.TextMatrix
	return gs.CTM.Transform(model.Point{X: tm[4], Y: tm[5] + gs.Text.Rise})
}

// params snapshots the text-state scalars for one show operation.
func (gs *GraphicsState) params() textshow.Params {
	return textshow.Params{
		FontSize:          gs.Text.FontSize,
		CharSpacing:       gs.Text.CharSpacing,
		WordSpacing:       gs.Text.WordSpacing,
		HorizontalScaling: gs.Text.HorizontalScaling,
		Leading:           gs.Text.Leading,
		Rise:              gs.Text.Rise,
	}
}
