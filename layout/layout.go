// Package layout defines the intermediate layout tree produced by the
// generator and a reference printer that renders it in pretty or compact
// form. The tree only records what is fusible, what may break, and what is
// conditional on the printing mode or on a break decision; physical line
// width is the printer's concern.
package layout

import (
	"github.com/saima-dattuu/flow"
)

// Break determines when a sequence separates its children with newlines.
type Break int

const (
	// BreakIfNeeded breaks only when the flat form overflows the margin.
	BreakIfNeeded Break = iota
	// BreakIfPretty breaks in pretty mode and stays flat in compact mode.
	BreakIfPretty
	// BreakAlways breaks in both modes.
	BreakAlways
	// BreakNever never breaks.
	BreakNever
)

func (b Break) String() string {
	switch b {
	case BreakIfNeeded:
		return "IfNeeded"
	case BreakIfPretty:
		return "IfPretty"
	case BreakAlways:
		return "Always"
	case BreakNever:
		return "Never"
	}
	return "Invalid"
}

// Node is a node in the layout tree.
type Node interface {
	String() string
	layoutNode()
}

// Atom is a literal token.
type Atom struct {
	Text string
}

func (n *Atom) String() string {
	return "Atom(" + n.Text + ")"
}

// Identifier is an atom bearing a source location, so that the printer can
// emit a source mapping for it.
type Identifier struct {
	Loc  flow.Loc
	Text string
}

func (n *Identifier) String() string {
	return "Identifier(" + n.Text + ")"
}

// SourceLocation attaches a source location to a subtree.
type SourceLocation struct {
	Loc   flow.Loc
	Child Node
}

func (n *SourceLocation) String() string {
	return "Loc(" + n.Child.String() + ")"
}

// Empty produces no output.
type Empty struct {
}

func (n *Empty) String() string {
	return "Empty"
}

// Fuse concatenates its children without any separation between them.
type Fuse struct {
	List []Node
}

func (n *Fuse) String() string {
	s := "Fuse("
	for i, item := range n.List {
		if i != 0 {
			s += " "
		}
		s += item.String()
	}
	return s + ")"
}

// Sequence separates its children per the break policy. When broken, each
// child lands on its own line at the sequence's extra indentation; the
// Inline flags keep the leading or trailing edge attached to the surrounding
// output instead of starting or ending with a newline.
type Sequence struct {
	Break        Break
	InlineBefore bool
	InlineAfter  bool
	Indent       int
	List         []Node
}

func (n *Sequence) String() string {
	s := "Seq[" + n.Break.String() + "]("
	for i, item := range n.List {
		if i != 0 {
			s += " "
		}
		s += item.String()
	}
	return s + ")"
}

// IfPretty selects Pretty in pretty mode and Ugly in compact mode.
type IfPretty struct {
	Pretty Node
	Ugly   Node
}

func (n *IfPretty) String() string {
	return "IfPretty(" + n.Pretty.String() + ", " + n.Ugly.String() + ")"
}

// IfBreak selects Broken when the nearest enclosing sequence broke and Flat
// otherwise.
type IfBreak struct {
	Broken Node
	Flat   Node
}

func (n *IfBreak) String() string {
	return "IfBreak(" + n.Broken.String() + ", " + n.Flat.String() + ")"
}

func (n *Atom) layoutNode()           {}
func (n *Identifier) layoutNode()     {}
func (n *SourceLocation) layoutNode() {}
func (n *Empty) layoutNode()          {}
func (n *Fuse) layoutNode()           {}
func (n *Sequence) layoutNode()       {}
func (n *IfPretty) layoutNode()       {}
func (n *IfBreak) layoutNode()        {}
