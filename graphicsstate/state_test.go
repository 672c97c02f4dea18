package graphicsstate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/textgeom/font"
	"github.com/tsawler/textgeom/model"
)

func TestNewGraphicsState(t *testing.T) {
	gs := NewGraphicsState()

	assert.True(t, gs.CTM.IsIdentity())
	assert.Equal(t, 12.0, gs.Text.FontSize)
	assert.Equal(t, 100.0, gs.Text.HorizontalScaling)
	assert.True(t, gs.Text.TextMatrix.IsIdentity())
	assert.True(t, gs.Text.TextLineMatrix.IsIdentity())
}

func TestSaveRestore(t *testing.T) {
	gs := NewGraphicsState()

	gs.SetFont("F1", 14)
	gs.SetCharSpacing(0.5)
	gs.Save()

	gs.SetFont("F2", 18)
	gs.SetCharSpacing(2)
	gs.Transform(model.Scale(2, 2))

	require.NoError(t, gs.Restore())

	assert.Equal(t, "F1", gs.Text.FontName)
	assert.Equal(t, 14.0, gs.Text.FontSize)
	assert.Equal(t, 0.5, gs.Text.CharSpacing)
	assert.True(t, gs.CTM.IsIdentity())
}

func TestRestoreUnderflow(t *testing.T) {
	gs := NewGraphicsState()

	err := gs.Restore()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "underflow")
}

func TestTransformOrder(t *testing.T) {
	// cm operands compose on the left: the later matrix maps into the
	// space set up by the earlier one.
	gs := NewGraphicsState()
	gs.Transform(model.Translate(10, 0))
	gs.Transform(model.Scale(2, 2))

	got := gs.CTM.Transform(model.Point{X: 1, Y: 1})
	assert.InDelta(t, 12.0, got.X, 1e-9)
	assert.InDelta(t, 2.0, got.Y, 1e-9)
}

func TestTextStateOperators(t *testing.T) {
	gs := NewGraphicsState()

	gs.SetCharSpacing(0.5)
	gs.SetWordSpacing(1.5)
	gs.SetHorizontalScaling(80)
	gs.SetLeading(14)
	gs.SetRenderingMode(3)
	gs.SetTextRise(4)

	assert.Equal(t, 0.5, gs.Text.CharSpacing)
	assert.Equal(t, 1.5, gs.Text.WordSpacing)
	assert.Equal(t, 80.0, gs.Text.HorizontalScaling)
	assert.Equal(t, 14.0, gs.Text.Leading)
	assert.Equal(t, 3, gs.Text.RenderingMode)
	assert.Equal(t, 4.0, gs.Text.Rise)
}

func TestTranslateText(t *testing.T) {
	gs := NewGraphicsState()
	gs.BeginText()

	gs.TranslateText(5, -10)
	gs.TranslateText(5, -10)

	// Offsets accumulate on the line matrix.
	assert.InDelta(t, 10.0, gs.Text.TextMatrix[4], 1e-9)
	assert.InDelta(t, -20.0, gs.Text.TextMatrix[5], 1e-9)
	assert.Equal(t, gs.Text.TextLineMatrix, gs.Text.TextMatrix)
}

func TestTranslateTextSetLeading(t *testing.T) {
	gs := NewGraphicsState()
	gs.BeginText()

	gs.TranslateTextSetLeading(0, -14)

	assert.Equal(t, 14.0, gs.Text.Leading)
	assert.InDelta(t, -14.0, gs.Text.TextMatrix[5], 1e-9)
}

func TestNextLine(t *testing.T) {
	gs := NewGraphicsState()
	gs.BeginText()
	gs.SetLeading(12)

	gs.NextLine()
	gs.NextLine()

	assert.InDelta(t, -24.0, gs.Text.TextMatrix[5], 1e-9)
}

func TestSetTextMatrix(t *testing.T) {
	gs := NewGraphicsState()
	gs.BeginText()
	gs.TranslateText(5, 5)

	m := model.Matrix{2, 0, 0, 2, 100, 700}
	gs.SetTextMatrix(m)

	assert.Equal(t, m, gs.Text.TextMatrix)
	assert.Equal(t, m, gs.Text.TextLineMatrix)
}

func TestEffectiveTransform(t *testing.T) {
	gs := NewGraphicsState()
	gs.Transform(model.Translate(0, 100))
	gs.BeginText()
	gs.SetTextMatrix(model.Translate(50, 0))

	m := gs.EffectiveTransform()
	assert.InDelta(t, 50.0, m[4], 1e-9)
	assert.InDelta(t, 100.0, m[5], 1e-9)
}

func TestShowTextAdvancesTextMatrix(t *testing.T) {
	helvetica := font.NewFont("F1", "Helvetica", "Type1")
	gs := NewGraphicsState()
	gs.BeginText()
	gs.SetFont("F1", 10)

	st := gs.ShowText("Hi", helvetica)

	// H=722, i=222: advance of 9.44 at size 10.
	assert.InDelta(t, 0.0, st.Tx, 1e-9)
	assert.InDelta(t, 9.44, st.DisplacedTx, 1e-9)
	assert.InDelta(t, 9.44, gs.Text.TextMatrix[4], 1e-9)
	assert.Equal(t, 2.78, st.SpaceTx)
	assert.False(t, st.Rotated)
	assert.False(t, st.FlipVertical)
}

func TestConsecutiveShowsLineUp(t *testing.T) {
	helvetica := font.NewFont("F1", "Helvetica", "Type1")
	gs := NewGraphicsState()
	gs.BeginText()
	gs.SetFont("F1", 10)

	first := gs.ShowText("ab", helvetica)
	second := gs.ShowText("cd", helvetica)

	assert.InDelta(t, first.DisplacedTx, second.Tx, 1e-9)
}

func TestShowTextCharAndWordSpacing(t *testing.T) {
	helvetica := font.NewFont("F1", "Helvetica", "Type1")
	gs := NewGraphicsState()
	gs.BeginText()
	gs.SetFont("F1", 10)
	gs.SetCharSpacing(0.4)
	gs.SetWordSpacing(2)

	st := gs.ShowText("a b", helvetica)

	// a=556, space=278, b=556 at size 10, plus Tc once per show and Tw
	// once per literal space.
	want := 10*(556+278+556)/1000.0 + 0.4 + 2
	assert.InDelta(t, want, st.DisplacedTx, 1e-9)
}

func TestShowTextArray(t *testing.T) {
	helvetica := font.NewFont("F1", "Helvetica", "Type1")
	gs := NewGraphicsState()
	gs.BeginText()
	gs.SetFont("F1", 10)

	states := gs.ShowTextArray([]interface{}{"A", -1000, "B"}, helvetica)

	require.Len(t, states, 2)
	// A is 667 wide: pen at 6.67, then the -1000 adjustment moves it
	// right by a full em (10 units).
	assert.InDelta(t, 6.67, states[0].DisplacedTx, 1e-9)
	assert.InDelta(t, 16.67, states[1].Tx, 1e-9)
}

func TestAdjustTextScaling(t *testing.T) {
	gs := NewGraphicsState()
	gs.BeginText()
	gs.SetFont("F1", 10)
	gs.SetHorizontalScaling(50)

	gs.AdjustText(-500)

	// -(-500)/1000 · 10 · 50% = 2.5
	assert.InDelta(t, 2.5, gs.Text.TextMatrix[4], 1e-9)
}

func TestShowTextOnRotatedPage(t *testing.T) {
	helvetica := font.NewFont("F1", "Helvetica", "Type1")
	gs := NewGraphicsState()
	// Quarter-turned page: x and y swap roles.
	gs.Transform(model.Matrix{0, 1, -1, 0, 612, 0})
	gs.BeginText()
	gs.SetFont("F1", 12)

	st := gs.ShowText("rotated", helvetica)

	assert.True(t, st.Rotated)
}

func TestShowTextMirroredPage(t *testing.T) {
	helvetica := font.NewFont("F1", "Helvetica", "Type1")
	gs := NewGraphicsState()
	// Vertical mirror, as emitted by some document generators.
	gs.Transform(model.Matrix{1, 0, 0, -1, 0, 792})
	gs.BeginText()
	gs.SetFont("F1", 12)

	st := gs.ShowText("mirrored", helvetica)

	assert.True(t, st.FlipVertical)
	assert.False(t, st.Rotated)
}

func TestTextPosition(t *testing.T) {
	gs := NewGraphicsState()
	gs.Transform(model.Translate(0, 100))
	gs.BeginText()
	gs.SetTextMatrix(model.Translate(50, 20))
	gs.SetTextRise(5)

	p := gs.TextPosition()
	assert.InDelta(t, 50.0, p.X, 1e-9)
	assert.InDelta(t, 125.0, p.Y, 1e-9)
}

func TestBeginTextResetsMatrices(t *testing.T) {
	gs := NewGraphicsState()
	gs.SetTextMatrix(model.Translate(50, 50))

	gs.BeginText()

	assert.True(t, gs.Text.TextMatrix.IsIdentity())
	assert.True(t, gs.Text.TextLineMatrix.IsIdentity())
}

func TestShowTextZeroFontSize(t *testing.T) {
	helvetica := font.NewFont("F1", "Helvetica", "Type1")
	gs := NewGraphicsState()
	gs.BeginText()
	gs.SetFont("F1", 0)
	gs.SetCharSpacing(1)

	st := gs.ShowText("ab", helvetica)

	// Only spacing advances the pen.
	assert.InDelta(t, 1.0, st.DisplacedTx, 1e-9)
	assert.Equal(t, 0.0, st.FontHeight)
}

func TestRotationAngleHelper(t *testing.T) {
	// A content stream rotation built from Rotate composes with the CTM
	// the same way a literal matrix does.
	gs := NewGraphicsState()
	gs.Transform(model.Rotate(math.Pi / 2))

	assert.Equal(t, 90, gs.CTM.Orientation())
}
