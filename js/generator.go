package js

import (
	"sort"

	"github.com/saima-dattuu/flow"
	"github.com/saima-dattuu/flow/layout"
)

// Options control program generation.
type Options struct {
	// PreserveDocblock emits the comments that precede the first
	// non-directive statement as a leading block, merged with the directive
	// prologue in source order.
	PreserveDocblock bool
	// Checksum, when non-empty, is appended as a trailing comment on its own
	// final line.
	Checksum string
}

// Program translates a program AST into a layout tree. The returned tree is
// immutable; rendering it in either mode produces source that parses back to
// a structurally equal AST.
func Program(ast *AST, o Options) (root layout.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*flow.Error); ok {
				root, err = nil, e
			} else {
				panic(r)
			}
		}
	}()

	loc := flow.Loc{
		Source: ast.Source,
		Start:  flow.Position{Line: 1, Column: 0},
		End:    ast.End,
	}

	stmts := ast.List
	var parts []layout.Node
	if o.PreserveDocblock && len(ast.Comments) != 0 {
		var header layout.Node
		header, stmts = docblock(ast)
		if header != nil {
			parts = append(parts, header)
		}
	}
	parts = append(parts, &layout.Sequence{
		Break:        layout.BreakIfPretty,
		InlineBefore: true,
		List:         statementList(stmts, true),
	})
	if o.Checksum != "" {
		parts = append(parts,
			ifPretty(empty, atom("\n")),
			&layout.Sequence{
				Break:        layout.BreakAlways,
				InlineBefore: true,
				List:         []layout.Node{atom("/* " + o.Checksum + " */")},
			})
	}
	return &layout.SourceLocation{Loc: loc, Child: fuse(parts...)}, nil
}

// docblock merges the directive prologue with the comments that precede the
// first non-directive statement, in source order, and returns the merged
// header along with the remaining statements.
func docblock(ast *AST) (layout.Node, []IStmt) {
	directives, rest := PartitionDirectives(ast.List)

	limit := flow.Position{Line: 1 << 30}
	if len(rest) != 0 {
		limit = rest[0].Location().Start
	}

	type headerItem struct {
		loc  flow.Loc
		node layout.Node
	}
	var items []headerItem
	for i, d := range directives {
		last := i == len(directives)-1 && len(rest) == 0
		items = append(items, headerItem{d.Location(), statement(d, last)})
	}
	for _, c := range ast.Comments {
		if c.Start.Line < limit.Line || c.Start.Line == limit.Line && c.Start.Column < limit.Column {
			items = append(items, headerItem{c.Loc, commentLayout(c)})
		}
	}
	if len(items) == 0 {
		return nil, rest
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].loc.Before(items[j].loc)
	})

	list := make([]layout.Node, len(items))
	for i, item := range items {
		list[i] = item.node
	}
	return &layout.Sequence{
		Break:        layout.BreakAlways,
		InlineBefore: true,
		List:         list,
	}, rest
}

// PartitionDirectives splits a statement list at the first statement that is
// not a directive-prologue member.
func PartitionDirectives(stmts []IStmt) ([]IStmt, []IStmt) {
	for i, s := range stmts {
		if e, ok := s.(*ExprStmt); !ok || e.Directive == "" {
			return stmts[:i], stmts[i:]
		}
	}
	return stmts, nil
}

func commentLayout(c Comment) layout.Node {
	var n layout.Node
	if c.Kind == BlockComment {
		n = atom("/*" + c.Text + "*/")
	} else {
		n = atom("//" + c.Text)
	}
	return &layout.SourceLocation{Loc: c.Loc, Child: n}
}

// statementList lays out consecutive statements, inserting a blank separator
// line between statements whose source ranges are more than one line apart.
// The last statement's terminator is pretty-only when prettySemicolon is set.
func statementList(stmts []IStmt, prettySemicolon bool) []layout.Node {
	items := make([]layout.Node, 0, len(stmts))
	prevLine := -1
	for i, s := range stmts {
		item := statement(s, prettySemicolon && i == len(stmts)-1)
		loc := s.Location()
		if prevLine != -1 && prevLine+1 < loc.Start.Line {
			item = fuse(ifPretty(atom("\n"), empty), item)
		}
		if loc.End.Line != 0 {
			prevLine = loc.End.Line
		}
		items = append(items, item)
	}
	return items
}

func fail(loc flow.Loc, format string, args ...interface{}) {
	panic(flow.NewError(loc, format, args...))
}

////////////////////////////////////////////////////////////////
// Layout constructors

var empty layout.Node = &layout.Empty{}

// space is a hard space that survives compact mode.
var space layout.Node = &layout.Atom{Text: " "}

// prettySpace renders as a space in pretty mode and disappears in compact
// mode.
var prettySpace layout.Node = &layout.IfPretty{Pretty: space, Ugly: &layout.Empty{}}

func atom(s string) layout.Node {
	return &layout.Atom{Text: s}
}

func fuse(list ...layout.Node) layout.Node {
	if len(list) == 1 {
		return list[0]
	}
	return &layout.Fuse{List: list}
}

func locd(l flow.Loc, list ...layout.Node) layout.Node {
	return &layout.SourceLocation{Loc: l, Child: fuse(list...)}
}

func ifPretty(p, u layout.Node) layout.Node {
	return &layout.IfPretty{Pretty: p, Ugly: u}
}

func ifBreak(b, f layout.Node) layout.Node {
	return &layout.IfBreak{Broken: b, Flat: f}
}

// group is a candidate break point: its children stay fused until the line
// overflows.
func group(list ...layout.Node) layout.Node {
	return &layout.Sequence{
		Break:        layout.BreakIfNeeded,
		InlineBefore: true,
		InlineAfter:  true,
		List:         list,
	}
}

// semicolon is a statement terminator; a pretty-only terminator relies on
// ASI in compact mode.
func semicolon(prettyOnly bool) layout.Node {
	if prettyOnly {
		return ifPretty(atom(";"), empty)
	}
	return atom(";")
}

type trailingComma int

const (
	// noTrailing lists reject a trailing comma, such as sequence operands.
	noTrailing trailingComma = iota
	// trailingOnBreak lists take one only when the list breaks.
	trailingOnBreak
	// forcedTrailing lists need one to keep their meaning, such as an array
	// ending in a hole.
	forcedTrailing
)

// commaSeparated fuses a comma to every item but the last: flat output reads
// `a, b`, broken output puts each item on its own line after its comma.
func commaSeparated(items []layout.Node, trailing trailingComma) []layout.Node {
	out := make([]layout.Node, len(items))
	for i, item := range items {
		switch {
		case i != len(items)-1:
			out[i] = fuse(item, atom(","), ifBreak(empty, prettySpace))
		case trailing == forcedTrailing:
			out[i] = fuse(item, atom(","))
		case trailing == trailingOnBreak:
			out[i] = fuse(item, ifBreak(atom(","), empty))
		default:
			out[i] = item
		}
	}
	return out
}

// bracketed wraps a broken-or-flat list in a bracket pair, indenting the
// items when the list breaks.
func bracketed(open, close string, brk layout.Break, items []layout.Node) layout.Node {
	if len(items) == 0 {
		return atom(open + close)
	}
	return fuse(
		atom(open),
		&layout.Sequence{Break: brk, Indent: 2, List: items},
		atom(close),
	)
}

// wrapInParens emits a parenthesized subexpression; the parens clear the
// ambiguity context for everything inside.
func wrapInParens(n layout.Node) layout.Node {
	return fuse(atom("("), n, atom(")"))
}

// wrapInParensOnBreak keeps the node inline while it fits and moves it into
// indented parens when it has to break.
func wrapInParensOnBreak(n layout.Node) layout.Node {
	return &layout.Sequence{
		Break:        layout.BreakIfNeeded,
		InlineBefore: true,
		InlineAfter:  true,
		List: []layout.Node{fuse(
			ifBreak(atom("("), empty),
			ifBreak(&layout.Sequence{Break: layout.BreakAlways, Indent: 2, List: []layout.Node{n}}, n),
			ifBreak(atom(")"), empty),
		)},
	}
}
