// Package model provides the geometric primitives shared by the text
// geometry engine: points, bounding boxes, and 2D affine transformation
// matrices.
//
// # Matrices
//
// The [Matrix] type is the 6-tuple [a b c d e f] used throughout PDF
// coordinate handling, interpreted with the row-vector convention:
//
//	[x' y' 1] = [x y 1] · | a b 0 |
//	                      | c d 0 |
//	                      | e f 1 |
//
// Composition via [Matrix.Multiply] applies the receiver first, then the
// argument. Order matters: the current transformation matrix of a page is
// composed as textMatrix.Multiply(ctm), never the reverse.
//
// [Matrix.Orientation] classifies a transform into one of the four
// axis-aligned rotations (0, 90, 180, 270 degrees). Arbitrary rotation
// angles and shears are not distinguished; they fall into whichever class
// their sign pattern matches.
//
// # Points and boxes
//
// [Point] and [BBox] use the PDF coordinate system: the origin is at the
// bottom-left and Y grows upward. BBox supports the usual containment,
// intersection and union queries used by layout consumers.
//
// All functions and methods in this package are stateless and safe for
// concurrent use.
package model
