// Package matroska holds the static registry of Matroska element IDs used
// by the parser: the mapping from a wire ID to the element's name and
// semantic type.
//
// The registry covers the parts of the element space this system cares
// about (EBML header, signature, segment info, seek, clusters and blocks,
// tracks, cues, attachments, chapters, tagging). IDs outside the table are a
// normal, expected case: an element is structurally skippable using only its
// declared size, so unknown IDs never stop a parse.
package matroska
