package js

import (
	"testing"

	"github.com/saima-dattuu/flow"
	"github.com/tdewolff/test"
)

func jsxID(name string) *JSXIdentifier {
	return &JSXIdentifier{Name: name}
}

func TestJSX(t *testing.T) {
	runGenTests(t, []genTest{
		{"element with attributes and text",
			prog(exprStmt(assign(id("x"), &JSXElement{
				Name: jsxID("a"),
				Attributes: []IJSXAttr{
					&JSXAttribute{Name: jsxID("b"), Value: &LiteralExpr{Kind: StringLiteral, String: "c", Raw: `"c"`}},
					&JSXAttribute{Name: jsxID("d"), Value: &JSXExpressionContainer{Expression: id("e")}},
				},
				Children: []IJSXChild{&JSXText{Value: "text"}},
			}))),
			`x = <a b="c" d={e}>text</a>;`, `x=<a b="c" d={e}>text</a>`},
		{"self closing",
			prog(exprStmt(&JSXElement{Name: jsxID("br"), SelfClosing: true})),
			"<br />;", "<br/>"},
		{"boolean attribute",
			prog(exprStmt(&JSXElement{Name: jsxID("a"),
				Attributes:  []IJSXAttr{&JSXAttribute{Name: jsxID("checked")}},
				SelfClosing: true})),
			"<a checked />;", "<a checked/>"},
		{"spread attribute",
			prog(exprStmt(&JSXElement{Name: jsxID("a"),
				Attributes:  []IJSXAttr{&JSXSpreadAttribute{Argument: id("props")}},
				SelfClosing: true})),
			"<a {...props} />;", "<a {...props}/>"},
		{"namespaced attribute",
			prog(exprStmt(&JSXElement{Name: jsxID("use"),
				Attributes: []IJSXAttr{&JSXAttribute{
					Name:  &JSXNamespacedName{Namespace: jsxID("xlink"), Name: jsxID("href")},
					Value: &LiteralExpr{Kind: StringLiteral, String: "a", Raw: `"a"`}}},
				SelfClosing: true})),
			`<use xlink:href="a" />;`, `<use xlink:href="a"/>`},
		{"member element name",
			prog(exprStmt(&JSXElement{
				Name:        &JSXMemberExpr{Object: jsxID("a"), Property: jsxID("b")},
				SelfClosing: true})),
			"<a.b />;", "<a.b/>"},
		{"nested elements",
			prog(exprStmt(assign(id("x"), &JSXElement{Name: jsxID("a"),
				Children: []IJSXChild{&JSXElement{Name: jsxID("b"), SelfClosing: true}}}))),
			"x = <a><b /></a>;", "x=<a><b/></a>"},
		{"text is trimmed",
			prog(exprStmt(&JSXElement{Name: jsxID("a"),
				Children: []IJSXChild{&JSXText{Value: "\n  hello\n  world\n"}}})),
			"<a>hello world</a>;", "<a>hello world</a>"},
		{"whitespace only text is dropped",
			prog(exprStmt(&JSXElement{Name: jsxID("a"),
				Children: []IJSXChild{&JSXText{Value: "\n   \n"}}})),
			"<a></a>;", "<a></a>"},
		{"expression container child",
			prog(exprStmt(&JSXElement{Name: jsxID("a"),
				Children: []IJSXChild{&JSXExpressionContainer{Expression: id("x")}}})),
			"<a>{x}</a>;", "<a>{x}</a>"},
		{"empty expression container",
			prog(exprStmt(&JSXElement{Name: jsxID("a"),
				Children: []IJSXChild{&JSXExpressionContainer{}}})),
			"<a>{}</a>;", "<a>{}</a>"},
		{"spread child",
			prog(exprStmt(&JSXElement{Name: jsxID("a"),
				Children: []IJSXChild{&JSXSpreadChild{Expression: id("xs")}}})),
			"<a>{...xs}</a>;", "<a>{...xs}</a>"},
		{"fragment",
			prog(exprStmt(&JSXFragment{
				Children: []IJSXChild{&JSXExpressionContainer{Expression: id("x")}}})),
			"<>{x}</>;", "<>{x}</>"},
	})
}

func TestTrimJSXText(t *testing.T) {
	var tests = []struct {
		s        string
		expected string
		ok       bool
	}{
		{"text", "text", true},
		{"  a  ", "  a  ", true},
		{"\n  a\n", "a", true},
		{"a\n  b", "a b", true},
		{"\n   \n", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			_, trimmed, ok := TrimJSXText(flow.Loc{}, tt.s)
			test.T(t, ok, tt.ok)
			test.String(t, trimmed, tt.expected)
		})
	}
}
