package js

import (
	"github.com/saima-dattuu/flow/layout"
)

// pattern lays out a binding or destructuring target.
func pattern(p IPattern) layout.Node {
	switch p := p.(type) {
	case *Identifier:
		parts := []layout.Node{identifierLayout(p)}
		if p.Optional {
			parts = append(parts, atom("?"))
		}
		if p.Annotation != nil {
			parts = append(parts, atom(":"), prettySpace, typeLayout(p.Annotation))
		}
		return locd(p.Loc, parts...)
	case *ObjectPattern:
		return objectPatternLayout(p)
	case *ArrayPattern:
		return arrayPatternLayout(p)
	case *AssignmentPattern:
		return locd(p.Loc, pattern(p.Left), equalsSign(patternEndsWithAngle(p.Left)),
			expressionWithParens(precAssignment, normalContext, p.Right))
	case *RestElement:
		return locd(p.Loc, atom("..."), pattern(p.Argument))
	case *ExprPattern:
		return expressionWithParens(precLHS, normalContext, p.Value)
	}
	fail(p.Location(), "unexpected pattern")
	return nil
}

func objectPatternLayout(p *ObjectPattern) layout.Node {
	items := make([]layout.Node, 0, len(p.Properties)+1)
	for _, prop := range p.Properties {
		items = append(items, objectPatternProp(prop))
	}
	if p.Rest != nil {
		items = append(items, fuse(atom("..."), pattern(p.Rest)))
	}
	trailing := trailingOnBreak
	if p.Rest != nil {
		trailing = noTrailing
	}
	parts := []layout.Node{bracketed("{", "}", layout.BreakIfNeeded,
		commaSeparated(items, trailing))}
	if p.Annotation != nil {
		parts = append(parts, atom(":"), prettySpace, typeLayout(p.Annotation))
	}
	return locd(p.Loc, parts...)
}

func objectPatternProp(prop ObjectPatternProp) layout.Node {
	var parts []layout.Node
	if prop.Shorthand {
		parts = []layout.Node{pattern(prop.Value)}
	} else {
		parts = []layout.Node{propertyKey(prop.Key, prop.Computed, false),
			atom(":"), prettySpace, pattern(prop.Value)}
	}
	if prop.Default != nil {
		parts = append(parts, equalsSign(patternEndsWithAngle(prop.Value)),
			expressionWithParens(precAssignment, normalContext, prop.Default))
	}
	return locd(prop.Loc, parts...)
}

func arrayPatternLayout(p *ArrayPattern) layout.Node {
	items := make([]layout.Node, len(p.Elements))
	trailing := trailingOnBreak
	for i, el := range p.Elements {
		if el == nil {
			items[i] = empty
			if i == len(p.Elements)-1 {
				trailing = forcedTrailing
			}
			continue
		}
		items[i] = pattern(el)
		if _, ok := el.(*RestElement); ok {
			trailing = noTrailing
		}
	}
	parts := []layout.Node{bracketed("[", "]", layout.BreakIfNeeded,
		commaSeparated(items, trailing))}
	if p.Annotation != nil {
		parts = append(parts, atom(":"), prettySpace, typeLayout(p.Annotation))
	}
	return locd(p.Loc, parts...)
}

////////////////////////////////////////////////////////////////
// Function and class headers

func paramsLayout(p Params) layout.Node {
	items := make([]layout.Node, 0, len(p.List)+1)
	for _, item := range p.List {
		items = append(items, pattern(item))
	}
	trailing := trailingOnBreak
	if p.Rest != nil {
		items = append(items, fuse(atom("..."), pattern(p.Rest)))
		trailing = noTrailing
	}
	return bracketed("(", ")", layout.BreakIfNeeded, commaSeparated(items, trailing))
}

// returnAnnotation emits the `: T` return type and the %checks predicate of a
// function header. It emits no trailing space; arrowLayout picks the space
// before `=>`.
func returnAnnotation(t IType, pred *Predicate) []layout.Node {
	var parts []layout.Node
	if t != nil {
		parts = append(parts, atom(":"), prettySpace, typeLayout(t))
	}
	if pred != nil {
		if t == nil {
			parts = append(parts, atom(":"))
		}
		parts = append(parts, space, predicateLayout(pred))
	}
	return parts
}

func functionLayout(f *FuncDecl) layout.Node {
	var parts []layout.Node
	if f.Async {
		parts = append(parts, atom("async"), space)
	}
	parts = append(parts, atom("function"))
	if f.Generator {
		parts = append(parts, atom("*"))
	}
	if f.Name != nil {
		parts = append(parts, space, identifierLayout(f.Name))
	}
	parts = append(parts, typeParamsLayout(f.TypeParams), paramsLayout(f.Params))
	parts = append(parts, returnAnnotation(f.ReturnType, f.Predicate)...)
	parts = append(parts, prettySpace, blockLayout(f.Body))
	return locd(f.Loc, parts...)
}

func arrowLayout(ctxt exprContext, f *ArrowFunc) layout.Node {
	var parts []layout.Node
	if f.Async {
		parts = append(parts, atom("async"), space)
	}

	if id := singleIdentifierParam(f); id != nil {
		parts = append(parts, identifierLayout(id))
	} else {
		parts = append(parts, typeParamsLayout(f.TypeParams), paramsLayout(f.Params))
		parts = append(parts, returnAnnotation(f.ReturnType, f.Predicate)...)
	}

	sep := prettySpace
	if f.ReturnType != nil {
		// a bare * would tokenize as *= and a closing > as >= against the
		// arrow in compact mode
		if _, ok := f.ReturnType.(*ExistsType); ok || typeEndsWithAngle(f.ReturnType) {
			sep = space
		}
	}
	parts = append(parts, sep, atom("=>"), prettySpace)

	switch body := f.Body.(type) {
	case *BlockStmt:
		parts = append(parts, blockLayout(body))
	case IExpr:
		parts = append(parts, expressionWithParens(precAssignment,
			exprContext{group: groupArrowBody}, body))
	default:
		fail(f.Loc, "unexpected arrow function body")
	}
	return locd(f.Loc, parts...)
}

// singleIdentifierParam returns the parameter when the arrow function can
// elide the parens around it: one plain identifier, nothing else in the
// header.
func singleIdentifierParam(f *ArrowFunc) *Identifier {
	if f.TypeParams != nil || f.ReturnType != nil || f.Predicate != nil ||
		f.Params.Rest != nil || len(f.Params.List) != 1 {
		return nil
	}
	id, ok := f.Params.List[0].(*Identifier)
	if !ok || id.Annotation != nil || id.Optional {
		return nil
	}
	return id
}

////////////////////////////////////////////////////////////////
// Classes

func classLayout(c *ClassDecl) layout.Node {
	var parts []layout.Node
	parts = append(parts, atom("class"))
	if c.Name != nil {
		parts = append(parts, space, identifierLayout(c.Name))
	}
	parts = append(parts, typeParamsLayout(c.TypeParams))
	if c.Extends != nil {
		parts = append(parts, space, atom("extends"), space,
			expressionWithParens(precLHS, normalContext, c.Extends))
		if c.ExtendsArgs != nil {
			parts = append(parts, typeArgsLayout(c.ExtendsArgs))
		}
	}
	if len(c.Implements) != 0 {
		parts = append(parts, space, atom("implements"), space, genericList(c.Implements))
	}
	parts = append(parts, prettySpace, classBodyLayout(c.Body))
	return locd(c.Loc, withDecorators(c.Decorators, fuse(parts...)))
}

// withDecorators stacks decorators above the decorated form in pretty mode
// and spaces them before it in compact mode.
func withDecorators(decorators []IExpr, core layout.Node) layout.Node {
	if len(decorators) == 0 {
		return core
	}
	list := make([]layout.Node, 0, len(decorators)+1)
	for _, d := range decorators {
		list = append(list, fuse(atom("@"),
			expressionWithParens(precLHS, normalContext, d),
			ifPretty(empty, space)))
	}
	list = append(list, core)
	return &layout.Sequence{
		Break:        layout.BreakIfPretty,
		InlineBefore: true,
		InlineAfter:  true,
		List:         list,
	}
}

func classBodyLayout(b *ClassBody) layout.Node {
	items := make([]layout.Node, len(b.List))
	for i, m := range b.List {
		items[i] = classMember(m, i == len(b.List)-1)
	}
	return locd(b.Loc, bracketed("{", "}", layout.BreakIfPretty, items))
}

func classMember(m IClassMember, last bool) layout.Node {
	switch m := m.(type) {
	case *ClassMethod:
		var parts []layout.Node
		if m.Static {
			parts = append(parts, atom("static"), space)
		}
		parts = append(parts, methodLayout(methodPropertyKind(m.Kind), m.Key, m.Computed, true, m.Value))
		return locd(m.Loc, withDecorators(m.Decorators, fuse(parts...)))
	case *ClassProperty:
		var parts []layout.Node
		if m.Static {
			parts = append(parts, atom("static"), space)
		}
		if m.Variance != nil {
			parts = append(parts, atom(m.Variance.String()))
		}
		parts = append(parts, propertyKey(m.Key, m.Computed, true))
		if m.Annotation != nil {
			parts = append(parts, atom(":"), prettySpace, typeLayout(m.Annotation))
		}
		if m.Value != nil {
			risky := m.Annotation != nil && typeEndsWithAngle(m.Annotation)
			parts = append(parts, equalsSign(risky),
				expressionWithParens(precAssignment, normalContext, m.Value))
		}
		parts = append(parts, semicolon(last))
		return locd(m.Loc, withDecorators(m.Decorators, fuse(parts...)))
	}
	fail(m.Location(), "unexpected class member")
	return nil
}

func methodPropertyKind(k MethodKind) PropertyKind {
	switch k {
	case GetterMethod:
		return GetProperty
	case SetterMethod:
		return SetProperty
	}
	return InitProperty
}

// methodLayout emits a method form shared by object literals and class
// bodies: accessor keyword, async and generator markers, key, header, body.
func methodLayout(kind PropertyKind, key IExpr, computed, allowPrivate bool, fn *FuncDecl) layout.Node {
	var parts []layout.Node
	switch kind {
	case GetProperty:
		parts = append(parts, atom("get"), space)
	case SetProperty:
		parts = append(parts, atom("set"), space)
	}
	if fn.Async {
		parts = append(parts, atom("async"), space)
	}
	if fn.Generator {
		parts = append(parts, atom("*"))
	}
	parts = append(parts, propertyKey(key, computed, allowPrivate),
		typeParamsLayout(fn.TypeParams), paramsLayout(fn.Params))
	parts = append(parts, returnAnnotation(fn.ReturnType, fn.Predicate)...)
	parts = append(parts, prettySpace, blockLayout(fn.Body))
	return fuse(parts...)
}
