package parser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"mkvlive/internal/ebml"
	"mkvlive/internal/element"
	"mkvlive/internal/matroska"
	"mkvlive/internal/source"
)

// Options configures one parse.
type Options struct {
	// Live enables the streaming rewrite: once the Segment is reached,
	// elements are serialized here instead of retained. Nil means dump
	// mode (retain everything).
	Live io.Writer

	// ClustersPerPadding injects one Void padding child into every n-th
	// completed Cluster. Zero or negative disables injection.
	ClustersPerPadding int

	// PaddingSize is the byte length of each injected Void payload.
	PaddingSize int

	// Trace receives the human-readable element trace. Nil disables it.
	Trace io.Writer

	// MaxRepeated caps trace lines for runs of same-named siblings before
	// they are summarized.
	MaxRepeated int
}

// Parser decodes one Matroska stream. It is single-use state for one
// invocation; concurrent streams need independent Parsers.
type Parser struct {
	src   source.Source
	log   *slog.Logger
	opts  Options
	trace *tracer

	inSegment bool
	segment   *element.Master
	clusters  uint64

	duration    float64
	hasDuration bool
}

// New builds a Parser over src. logger must not be nil; diagnostics for
// recovered errors go through it.
func New(src source.Source, logger *slog.Logger, opts Options) *Parser {
	p := &Parser{src: src, log: logger, opts: opts}
	if opts.Trace != nil {
		p.trace = &tracer{w: opts.Trace, maxRepeated: opts.MaxRepeated}
	}
	return p
}

// Parse consumes the stream and returns the retained tree: the full
// hierarchy in dump mode, or only what precedes the Segment (plus the
// Segment node itself, emptied as it was flushed) in live mode.
func (p *Parser) Parse() (*element.Master, error) {
	p.inSegment = false
	p.segment = nil
	p.clusters = 0
	p.duration = 0
	p.hasDuration = false

	root := element.NewRoot()
	if err := p.parse(0, p.src.Size(), root, 0, false); err != nil {
		return root, err
	}
	return root, nil
}

// SourceDuration reports the Duration value the input carried, if any.
// The retained tree never holds it, so this is the only way to read it
// after a parse.
func (p *Parser) SourceDuration() (float64, bool) {
	return p.duration, p.hasDuration
}

// parse decodes the element sequence in [from, to) into parent. It returns
// a non-nil error only for unrecoverable failures (output write errors,
// impossible seeks); framing corruption is logged and truncates only this
// level.
func (p *Parser) parse(from, to int64, parent *element.Master, depth int, silent bool) error {
	if _, err := p.src.Seek(from, io.SeekStart); err != nil {
		return err
	}

	var r run
	for p.src.Pos() < to {
		offset := p.src.Pos()

		id, err := ebml.ReadID(p.src)
		if err == io.EOF {
			// Ordinary end of input between elements.
			p.trace.flush(&r, depth, silent)
			return nil
		}
		if err != nil {
			p.log.Error("malformed element ID, abandoning level", "offset", offset, "depth", depth, "err", err)
			p.trace.flush(&r, depth, silent)
			return nil
		}

		size, err := ebml.ReadSize(p.src)
		if err != nil {
			p.log.Error("malformed element size, abandoning level", "offset", offset, "id", fmt.Sprintf("0x%x", id), "err", err)
			p.trace.flush(&r, depth, silent)
			return nil
		}

		tag, known := matroska.Lookup(id)
		if !known {
			// Forward compatibility: skip the payload by size alone.
			if err := p.skip(size); err != nil {
				p.log.Warn("input ended inside unknown element", "offset", offset, "id", fmt.Sprintf("0x%x", id), "size", size, "err", err)
				p.trace.flush(&r, depth, silent)
				return nil
			}
			continue
		}

		suppress := silent || p.trace.observe(&r, depth, silent, tag.Name)

		if tag.Type == ebml.TypeMaster {
			if err := p.parseMaster(id, tag.Name, size, offset, parent, depth, suppress); err != nil {
				return err
			}
			continue
		}

		if err := p.parseLeaf(id, tag, size, offset, parent, depth, suppress); err != nil {
			return err
		}
	}
	p.trace.flush(&r, depth, silent)
	return nil
}

func (p *Parser) parseMaster(id uint32, name string, size uint64, offset int64, parent *element.Master, depth int, suppress bool) error {
	first := p.src.Pos()
	if !suppress {
		p.trace.master(depth, name, size, offset, first)
	}

	node := element.NewMaster(id, name)

	if p.opts.Live != nil && !p.inSegment && id == matroska.IDSegment {
		// The stream has reached its Segment. Flush everything buffered
		// before it, then emit the Segment header with the placeholder
		// size; its children will follow one by one.
		if _, err := parent.WriteTo(p.opts.Live); err != nil {
			return fmt.Errorf("flush pre-segment elements: %w", err)
		}
		if _, err := node.WriteHeader(p.opts.Live); err != nil {
			return fmt.Errorf("write segment header: %w", err)
		}
		p.inSegment = true
		p.segment = node
	}

	if err := p.parse(first, first+int64(size), node, depth+1, suppress); err != nil {
		return err
	}

	if p.opts.Live != nil && p.inSegment && parent == p.segment {
		// Completed direct child of the live Segment: write and release.
		if id == matroska.IDCluster {
			p.clusters++
			if p.opts.ClustersPerPadding > 0 && p.clusters%uint64(p.opts.ClustersPerPadding) == 0 {
				node.AddChild(element.NewBinary(matroska.IDVoid, "Void", make([]byte, p.opts.PaddingSize)))
			}
		}
		// SeekHead describes byte offsets into a file whose length is
		// still growing; a sequential consumer must never see one.
		if id != matroska.IDSeekHead {
			if _, err := node.WriteTo(p.opts.Live); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
		}
		return nil
	}

	parent.AddChild(node)
	return nil
}

func (p *Parser) parseLeaf(id uint32, tag matroska.Tag, size uint64, offset int64, parent *element.Master, depth int, suppress bool) error {
	payload := make([]byte, size)
	if _, err := io.ReadFull(p.src, payload); err != nil {
		p.log.Warn("input ended inside element payload", "element", tag.Name, "offset", offset, "size", size, "err", err)
		return nil
	}

	var node element.Element
	switch tag.Type {
	case ebml.TypeUint, ebml.TypeInt, ebml.TypeDate:
		v, err := ebml.Uint(payload)
		if err != nil {
			p.log.Warn("dropping undecodable integer", "element", tag.Name, "offset", offset, "err", err)
			break
		}
		node = element.NewInt(id, tag.Name, tag.Type, v)
	case ebml.TypeFloat:
		v, err := ebml.Float(payload)
		if errors.Is(err, ebml.ErrExtendedFloat) {
			p.log.Warn("dropping extended-precision float", "element", tag.Name, "offset", offset)
			break
		}
		if err != nil {
			p.log.Warn("dropping undecodable float", "element", tag.Name, "offset", offset, "err", err)
			break
		}
		if id == matroska.IDDuration {
			// The Info override drops this child; remember the value so
			// callers can still report the source runtime.
			p.duration = v
			p.hasDuration = true
		}
		node = element.NewFloat(id, tag.Name, v)
	case ebml.TypeString:
		if !isASCII(payload) {
			p.log.Warn("dropping string with non-ASCII bytes", "element", tag.Name, "offset", offset)
			break
		}
		node = element.NewString(id, tag.Name, string(payload))
	case ebml.TypeUTF8:
		if !utf8.Valid(payload) {
			p.log.Warn("dropping invalid UTF-8 string", "element", tag.Name, "offset", offset)
			break
		}
		node = element.NewUTF8(id, tag.Name, string(payload))
	case ebml.TypeBinary:
		node = element.NewBinary(id, tag.Name, payload)
	default:
		p.log.Warn("element has no decodable type", "element", tag.Name, "offset", offset, "type", tag.Type.String())
	}

	if node == nil {
		return nil
	}
	parent.AddChild(node)
	if !suppress {
		p.trace.leaf(depth, tag.Name, size, offset, node.ValueString())
	}
	return nil
}

// skip advances past a payload that will not be decoded. On a pipe this is
// a discard-read; on a file it is a real seek.
func (p *Parser) skip(size uint64) error {
	_, err := p.src.Seek(int64(size), io.SeekCurrent)
	return err
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c > 0x7f {
			return false
		}
	}
	return true
}
