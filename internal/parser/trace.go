package parser

import (
	"fmt"
	"io"
)

// tracer writes the human-readable element trace. Runs of consecutive
// same-named siblings are capped: after maxRepeated lines the run goes
// quiet until a different name appears, which flushes one summary line.
// Throttling is purely diagnostic; it never affects the tree or the
// rewritten stream.
type tracer struct {
	w           io.Writer
	maxRepeated int
}

// run tracks sibling repetition at one recursion level.
type run struct {
	name string
	seen int
}

// observe records one sibling and reports whether its trace line should be
// suppressed. A name change flushes the previous run's summary.
func (t *tracer) observe(r *run, depth int, silent bool, name string) bool {
	if t == nil {
		return true
	}
	if name == r.name {
		r.seen++
		return r.seen > t.maxRepeated
	}
	t.flush(r, depth, silent)
	r.name = name
	r.seen = 1
	return false
}

// flush emits the pending summary for a suppressed run, if any, and resets
// the run.
func (t *tracer) flush(r *run, depth int, silent bool) {
	if t == nil {
		return
	}
	if !silent && r.seen > t.maxRepeated {
		fmt.Fprintf(t.w, "%*s+ %d more %s\n", depth*2, "", r.seen-t.maxRepeated, r.name)
	}
	r.name = ""
	r.seen = 0
}

func (t *tracer) leaf(depth int, name string, size uint64, offset int64, value string) {
	if t == nil {
		return
	}
	fmt.Fprintf(t.w, "%*s%s (size=%d, ofs=%d): %s\n", depth*2, "", name, size, offset, value)
}

func (t *tracer) master(depth int, name string, size uint64, offset, firstChild int64) {
	if t == nil {
		return
	}
	fmt.Fprintf(t.w, "%*s%s (size=%d, ofs=%d): first child ofs=%d\n", depth*2, "", name, size, offset, firstChild)
}
