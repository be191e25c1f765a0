package js

import (
	"github.com/saima-dattuu/flow"
)

// IJSXName is a JSX element name: an identifier, a namespaced name, or a
// member expression.
type IJSXName interface {
	INode
	jsxNameNode()
}

// IJSXAttr is an attribute of a JSX opening tag.
type IJSXAttr interface {
	INode
	jsxAttrNode()
}

// IJSXChild is a child of a JSX element or fragment.
type IJSXChild interface {
	INode
	jsxChildNode()
}

type JSXIdentifier struct {
	flow.Loc
	Name string
}

type JSXNamespacedName struct {
	flow.Loc
	Namespace *JSXIdentifier
	Name      *JSXIdentifier
}

type JSXMemberExpr struct {
	flow.Loc
	Object   IJSXName // *JSXIdentifier or *JSXMemberExpr
	Property *JSXIdentifier
}

func (n JSXIdentifier) jsxNameNode()     {}
func (n JSXNamespacedName) jsxNameNode() {}
func (n JSXMemberExpr) jsxNameNode()     {}

// JSXAttribute is `name`, `name="value"`, or `name={expr}`. Value is nil, a
// string *LiteralExpr, or a *JSXExpressionContainer.
type JSXAttribute struct {
	flow.Loc
	Name  IJSXName // *JSXIdentifier or *JSXNamespacedName
	Value INode    // can be nil
}

type JSXSpreadAttribute struct {
	flow.Loc
	Argument IExpr
}

func (n JSXAttribute) jsxAttrNode()       {}
func (n JSXSpreadAttribute) jsxAttrNode() {}

// JSXExpressionContainer is `{expr}`; a nil Expression is the empty `{}`.
type JSXExpressionContainer struct {
	flow.Loc
	Expression IExpr
}

type JSXText struct {
	flow.Loc
	Value string
}

type JSXSpreadChild struct {
	flow.Loc
	Expression IExpr
}

type JSXElement struct {
	flow.Loc
	Name        IJSXName
	Attributes  []IJSXAttr
	Children    []IJSXChild
	SelfClosing bool
}

type JSXFragment struct {
	flow.Loc
	Children []IJSXChild
}

func (n JSXExpressionContainer) jsxChildNode() {}
func (n JSXText) jsxChildNode()                {}
func (n JSXSpreadChild) jsxChildNode()         {}
func (n JSXElement) jsxChildNode()             {}
func (n JSXFragment) jsxChildNode()            {}

func (n JSXElement) exprNode()             {}
func (n JSXFragment) exprNode()            {}
func (n JSXExpressionContainer) exprNode() {}
