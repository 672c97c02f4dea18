// Package graphicsstate tracks the graphics and text state of a PDF
// content stream on behalf of the text geometry engine.
//
// A content-stream interpreter dispatches operators; this package holds
// the state those operators accumulate: the current transformation
// matrix, the text matrices, and the text-state scalars (character and
// word spacing, horizontal scaling, leading, rise, font size). It
// turns each text-showing operation into an immutable
// [textshow.State] record.
//
// Example usage:
//
//	gs := graphicsstate.NewGraphicsState()
//	gs.Save()                      // q
//	gs.Transform(pageMatrix)       // cm
//	gs.BeginText()                 // BT
//	gs.SetFont("F1", 12)           // Tf
//	gs.SetTextMatrix(tm)           // Tm
//	st := gs.ShowText("Hi", font)  // Tj -> one geometry record
//	gs.Restore()                   // Q
//
// [GraphicsState.ShowText] computes the record from the effective
// transform (text matrix composed with the CTM) and advances the text
// matrix by the exact displacement of the shown string, so consecutive
// records line up the way the strings do on the page.
// [GraphicsState.AdjustText] applies the numeric adjustments of TJ
// arrays.
//
// The q/Q stack saves and restores the full state. A GraphicsState is
// not safe for concurrent use; track each content stream with its own
// instance.
package graphicsstate
