// Package parser drives the recursive decode of a Matroska stream and, in
// live mode, the single-pass rewrite of it.
//
// One recursive descent walks the element hierarchy. In dump mode every
// decoded element is attached to its parent and the whole tree is retained.
// In live mode the walk is identical until the top-level Segment appears:
// everything buffered before it is flushed to the output, the Segment header
// is written with the unbounded placeholder size, and from then on each
// completed direct child of Segment is serialized immediately and released,
// so memory use stays flat no matter how long the capture runs. SeekHead
// children are parsed but never emitted, and Void padding is injected among
// Clusters so a reader that races ahead of the producer finds bytes instead
// of a premature end of stream.
//
// Everything before the first Segment is buffered in full. The design
// assumes Segment appears once, near the top, before any large data; a
// stream violating that assumption buffers without bound.
package parser
