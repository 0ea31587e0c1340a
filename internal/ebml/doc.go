// Package ebml implements the primitive EBML wire codec: variable-length
// element IDs and sizes, and fixed-length big-endian scalar values.
//
// Decoding reads from an io.Reader one element header field at a time; scalar
// payloads are decoded from byte slices after the payload has been read in
// full, so a malformed value never leaves the stream position in doubt.
// Encoding deliberately always emits the longest practical forms (4- or
// 8-byte sizes and integers, 8-byte floats): the output is meant for live
// streaming where simplicity beats wire compactness.
package ebml
