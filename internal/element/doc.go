// Package element models the decoded Matroska element tree and its wire
// serialization.
//
// The variant set is closed over the EBML semantic types: Master owns an
// ordered sequence of children, the leaf kinds hold one decoded scalar each.
// Serialization is ID + size + payload, where a Master's payload is the
// concatenation of its children's full encoded forms. Two elements override
// the defaults for live streaming: Segment always writes the unbounded
// placeholder size, and Info swaps any real Duration for a fixed 100-hour
// placeholder so players see a long-but-finite runtime.
package element
