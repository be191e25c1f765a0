package layout

import (
	"strings"
)

// Mode selects the rendering style.
type Mode int

const (
	// Pretty renders multi-line, indented output.
	Pretty Mode = iota
	// Compact renders the smallest output that still parses the same.
	Compact
)

// Options control the printer. The zero value prints pretty output with an
// 80 column margin.
type Options struct {
	Mode  Mode
	Width int // margin for BreakIfNeeded sequences, 80 when zero
}

// Print renders a layout tree to text.
func Print(n Node, o Options) string {
	if o.Width == 0 {
		o.Width = 80
	}
	p := &printer{o: o}
	p.node(n)
	return p.sb.String()
}

type printer struct {
	sb      strings.Builder
	o       Options
	col     int
	indent  int
	pending int // indentation deferred until the next visible text
	broke   bool
}

func (p *printer) write(s string) {
	for i, seg := range strings.Split(s, "\n") {
		if i != 0 {
			p.sb.WriteByte('\n')
			p.pending = p.indent
			p.col = p.indent
		}
		if seg == "" {
			continue
		}
		for ; 0 < p.pending; p.pending-- {
			p.sb.WriteByte(' ')
		}
		p.sb.WriteString(seg)
		p.col += len(seg)
	}
}

func (p *printer) newline() {
	p.sb.WriteByte('\n')
	p.pending = p.indent
	p.col = p.indent
}

func (p *printer) node(n Node) {
	switch n := n.(type) {
	case *Atom:
		p.write(n.Text)
	case *Identifier:
		p.write(n.Text)
	case *SourceLocation:
		p.node(n.Child)
	case *Empty:
	case *Fuse:
		for _, item := range n.List {
			p.node(item)
		}
	case *IfPretty:
		if p.o.Mode == Pretty {
			p.node(n.Pretty)
		} else {
			p.node(n.Ugly)
		}
	case *IfBreak:
		if p.broke {
			p.node(n.Broken)
		} else {
			p.node(n.Flat)
		}
	case *Sequence:
		p.sequence(n)
	}
}

func (p *printer) sequence(n *Sequence) {
	broke := false
	if hasContent(n.List) {
		switch n.Break {
		case BreakAlways:
			broke = true
		case BreakIfPretty:
			broke = p.o.Mode == Pretty
		case BreakIfNeeded:
			if p.o.Mode == Pretty {
				w, forced := p.measure(n)
				broke = forced || p.o.Width < p.col+w
			}
		}
	}

	prevBroke := p.broke
	p.broke = broke
	if !broke {
		for _, item := range n.List {
			p.node(item)
		}
		p.broke = prevBroke
		return
	}

	p.indent += n.Indent
	first := true
	for _, item := range n.List {
		if isEmpty(item) {
			continue
		}
		if !first || !n.InlineBefore {
			p.newline()
		}
		first = false
		p.node(item)
	}
	p.indent -= n.Indent
	if !n.InlineAfter {
		p.newline()
	}
	p.broke = prevBroke
}

func hasContent(list []Node) bool {
	for _, item := range list {
		if !isEmpty(item) {
			return true
		}
	}
	return false
}

func isEmpty(n Node) bool {
	switch n := n.(type) {
	case *Empty:
		return true
	case *SourceLocation:
		return isEmpty(n.Child)
	}
	return false
}

// measure computes the width of the flat rendering of a node, and whether
// the flat form is impossible because a nested sequence always breaks.
func (p *printer) measure(n Node) (int, bool) {
	switch n := n.(type) {
	case *Atom:
		return len(n.Text), strings.ContainsRune(n.Text, '\n')
	case *Identifier:
		return len(n.Text), false
	case *SourceLocation:
		return p.measure(n.Child)
	case *Fuse:
		return p.measureList(n.List)
	case *IfPretty:
		if p.o.Mode == Pretty {
			return p.measure(n.Pretty)
		}
		return p.measure(n.Ugly)
	case *IfBreak:
		return p.measure(n.Flat)
	case *Sequence:
		w, forced := p.measureList(n.List)
		if hasContent(n.List) {
			forced = forced || n.Break == BreakAlways ||
				n.Break == BreakIfPretty && p.o.Mode == Pretty
		}
		return w, forced
	}
	return 0, false
}

func (p *printer) measureList(list []Node) (int, bool) {
	w, forced := 0, false
	for _, item := range list {
		wi, fi := p.measure(item)
		w += wi
		forced = forced || fi
	}
	return w, forced
}
