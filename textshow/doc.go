// Package textshow computes the geometry and metrics of a single
// text-showing operation (Tj, or one string segment of a TJ array).
//
// Reconstructing readable layout from a content stream requires knowing,
// for every shown string, where it starts on the page, where the pen ends
// up afterwards, how wide a space is in the same units, and how tall the
// text renders. [New] derives all of that once, up front, from the text
// state operands and the effective transform in force when the string is
// shown:
//
//	st := textshow.New("Hello", fontMetrics, textshow.Params{FontSize: 12},
//		textMatrix.Multiply(ctm))
//	// st.Tx, st.Ty, st.DisplacedTx, st.SpaceTx, st.FontHeight, ...
//
// The resulting [State] is immutable: every derived field is computed
// exactly once during construction and must not be modified afterwards.
// Construction is a total function over finite inputs. It never fails,
// performs no I/O, and touches no shared state, so independent records
// may be built concurrently; a [Metrics] implementation shared between
// goroutines must tolerate concurrent read-only queries.
//
// # Rotation correction
//
// When the effective transform is a quarter turn (90 or 270 degrees) the
// transform is re-aligned so that "horizontal" in text space matches the
// page's horizontal, keeping the advance-width arithmetic valid; a true
// 180-degree point rotation is likewise undone. A pure vertical mirror
// (negative d, non-negative a) is left alone and only flagged via
// [State.FlipVertical], since some generators emit upright text through
// a mirrored coordinate system.
//
// Only the four axis-aligned cases are corrected. Sheared or arbitrarily
// rotated transforms pass through unchanged; this is a documented
// limitation of the engine, not an error condition.
//
// # Units
//
// Font metrics are consumed in thousandths of text-space units (1000
// units = 1 em at font size 1). All derived positions are in device
// space. SpaceTx alone is rounded, to three decimals using
// round-half-to-even; every other field keeps full float64 precision.
package textshow
