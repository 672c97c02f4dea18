// Package filters provides the stream decompression filters needed to
// decode PDF content streams before interpretation.
//
// # Supported Filters
//
// FlateDecode (zlib/deflate), with optional predictors:
//
//	decoded, err := filters.FlateDecode(data, filters.Params{"Predictor": 12, "Columns": 100})
//
// The Predictor parameter selects the algorithm: 1 (none, the default),
// 2 (TIFF Predictor 2), or 10-15 (PNG None, Sub, Up, Average, Paeth).
//
// ASCIIHexDecode and ASCII85Decode:
//
//	decoded, err := filters.ASCIIHexDecode(data)
//	decoded, err := filters.ASCII85Decode(data)
//
// RunLengthDecode:
//
//	decoded, err := filters.RunLengthDecode(data)
//
// CCITTFaxDecode (Group 3/4 fax), for bi-level scanned images:
//
//	decoded, err := filters.CCITTFaxDecode(data, filters.Params{"K": -1, "Columns": 1728})
//
// # Decode Parameters
//
// Filters taking a [Params] map read it with PDF stream dictionary
// semantics: missing or mistyped entries fall back to their documented
// defaults.
package filters
