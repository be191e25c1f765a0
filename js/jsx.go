package js

import (
	"strings"

	"github.com/saima-dattuu/flow"
	"github.com/saima-dattuu/flow/layout"
)

// TrimJSXText applies the JSX whitespace rules to a text child: whitespace
// around line boundaries collapses and whitespace-only lines vanish. It
// reports false when nothing remains.
func TrimJSXText(loc flow.Loc, s string) (flow.Loc, string, bool) {
	lines := strings.Split(s, "\n")
	var parts []string
	for i, line := range lines {
		if i != 0 {
			line = strings.TrimLeft(line, " \t\r")
		}
		if i != len(lines)-1 {
			line = strings.TrimRight(line, " \t\r")
		}
		if line != "" {
			parts = append(parts, line)
		}
	}
	trimmed := strings.Join(parts, " ")
	if trimmed == "" {
		return loc, "", false
	}
	return loc, trimmed, true
}

func jsxName(n IJSXName) layout.Node {
	switch n := n.(type) {
	case *JSXIdentifier:
		return &layout.Identifier{Loc: n.Loc, Text: n.Name}
	case *JSXNamespacedName:
		return locd(n.Loc, atom(n.Namespace.Name), atom(":"), atom(n.Name.Name))
	case *JSXMemberExpr:
		return locd(n.Loc, jsxName(n.Object), atom("."), atom(n.Property.Name))
	}
	fail(n.Location(), "unexpected JSX name")
	return nil
}

func jsxAttrs(attrs []IJSXAttr) layout.Node {
	if len(attrs) == 0 {
		return empty
	}
	items := make([]layout.Node, len(attrs))
	for i, a := range attrs {
		items[i] = fuse(ifBreak(empty, space), jsxAttr(a))
	}
	return &layout.Sequence{
		Break:        layout.BreakIfNeeded,
		InlineBefore: true,
		InlineAfter:  true,
		Indent:       2,
		List:         items,
	}
}

func jsxAttr(a IJSXAttr) layout.Node {
	switch a := a.(type) {
	case *JSXSpreadAttribute:
		return locd(a.Loc, atom("{..."),
			expressionWithParens(precAssignment, normalContext, a.Argument), atom("}"))
	case *JSXAttribute:
		var name layout.Node
		switch n := a.Name.(type) {
		case *JSXIdentifier:
			name = &layout.Identifier{Loc: n.Loc, Text: n.Name}
		case *JSXNamespacedName:
			name = jsxName(n)
		default:
			fail(a.Loc, "unexpected JSX attribute name")
		}
		if a.Value == nil {
			return locd(a.Loc, name)
		}
		var value layout.Node
		switch v := a.Value.(type) {
		case *LiteralExpr:
			if v.Raw != "" {
				value = locd(v.Loc, atom(v.Raw))
			} else {
				value = locd(v.Loc, atom(flow.QuoteString(v.String)))
			}
		case *JSXExpressionContainer:
			value = jsxExpressionContainer(v)
		default:
			fail(a.Loc, "unexpected JSX attribute value")
		}
		return locd(a.Loc, name, atom("="), value)
	}
	fail(a.Location(), "unexpected JSX attribute")
	return nil
}

func jsxExpressionContainer(c *JSXExpressionContainer) layout.Node {
	if c.Expression == nil {
		return locd(c.Loc, atom("{}"))
	}
	return locd(c.Loc, atom("{"),
		expression(normalContext, c.Expression), atom("}"))
}

func jsxChildren(children []IJSXChild) layout.Node {
	var items []layout.Node
	for _, c := range children {
		switch c := c.(type) {
		case *JSXText:
			loc, text, ok := TrimJSXText(c.Loc, c.Value)
			if !ok {
				continue
			}
			items = append(items, locd(loc, atom(text)))
		case *JSXExpressionContainer:
			items = append(items, jsxExpressionContainer(c))
		case *JSXSpreadChild:
			items = append(items, locd(c.Loc, atom("{..."),
				expression(normalContext, c.Expression), atom("}")))
		case *JSXElement:
			items = append(items, jsxElement(c))
		case *JSXFragment:
			items = append(items, jsxFragment(c))
		default:
			fail(c.Location(), "unexpected JSX child")
		}
	}
	if len(items) == 0 {
		return empty
	}
	return &layout.Sequence{
		Break:  layout.BreakIfNeeded,
		Indent: 2,
		List:   items,
	}
}

func jsxElement(e *JSXElement) layout.Node {
	name := jsxName(e.Name)
	attrs := jsxAttrs(e.Attributes)
	if e.SelfClosing {
		return locd(e.Loc, atom("<"), name, attrs, prettySpace, atom("/>"))
	}
	return locd(e.Loc,
		atom("<"), name, attrs, atom(">"),
		jsxChildren(e.Children),
		atom("</"), jsxName(e.Name), atom(">"))
}

func jsxFragment(e *JSXFragment) layout.Node {
	return locd(e.Loc, atom("<>"), jsxChildren(e.Children), atom("</>"))
}
