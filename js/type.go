package js

import (
	"github.com/saima-dattuu/flow"
	"github.com/saima-dattuu/flow/layout"
)

// typePrecedence orders the type grammar: unions and bare function types
// bind loosest, then intersections, prefix forms, postfix arrays, and
// primary types.
func typePrecedence(t IType) int {
	switch t.(type) {
	case *UnionType, *FunctionType:
		return 0
	case *IntersectionType:
		return 1
	case *NullableType, *TypeofType:
		return 2
	case *ArrayType:
		return 3
	}
	return 4
}

// typeEndsWithAngle reports whether the rendered type's last token is a
// closing angle bracket, which would fuse with a following = into >=.
func typeEndsWithAngle(t IType) bool {
	switch t := t.(type) {
	case *GenericType:
		return t.TypeArgs != nil
	case *NullableType:
		return typeEndsWithAngle(t.Argument)
	case *FunctionType:
		return typeEndsWithAngle(t.Return)
	case *UnionType:
		return len(t.Types) != 0 && typeEndsWithAngle(t.Types[len(t.Types)-1])
	case *IntersectionType:
		return len(t.Types) != 0 && typeEndsWithAngle(t.Types[len(t.Types)-1])
	case *TypeofType:
		return typeEndsWithAngle(t.Argument)
	}
	return false
}

// patternEndsWithAngle is typeEndsWithAngle for an annotated binding.
func patternEndsWithAngle(p IPattern) bool {
	switch p := p.(type) {
	case *Identifier:
		return p.Annotation != nil && typeEndsWithAngle(p.Annotation)
	case *ObjectPattern:
		return p.Annotation != nil && typeEndsWithAngle(p.Annotation)
	case *ArrayPattern:
		return p.Annotation != nil && typeEndsWithAngle(p.Annotation)
	}
	return false
}

// equalsSign is the = of an initializer or default, spaced hard when the
// preceding token could otherwise fuse with it.
func equalsSign(risky bool) layout.Node {
	if risky {
		return fuse(space, atom("="), prettySpace)
	}
	return fuse(prettySpace, atom("="), prettySpace)
}

func typeWithParens(minPrec int, t IType) layout.Node {
	if typePrecedence(t) < minPrec {
		return wrapInParens(typeLayout(t))
	}
	return typeLayout(t)
}

func typeLayout(t IType) layout.Node {
	switch t := t.(type) {
	case *AnyType:
		return locd(t.Loc, atom("any"))
	case *MixedType:
		return locd(t.Loc, atom("mixed"))
	case *EmptyType:
		return locd(t.Loc, atom("empty"))
	case *VoidType:
		return locd(t.Loc, atom("void"))
	case *NullType:
		return locd(t.Loc, atom("null"))
	case *NumberType:
		return locd(t.Loc, atom("number"))
	case *StringType:
		return locd(t.Loc, atom("string"))
	case *BooleanType:
		return locd(t.Loc, atom("boolean"))
	case *ExistsType:
		return locd(t.Loc, atom("*"))
	case *NullableType:
		return locd(t.Loc, atom("?"), typeWithParens(2, t.Argument))
	case *FunctionType:
		return locd(t.Loc, typeParamsLayout(t.TypeParams), functionTypeParams(t),
			prettySpace, atom("=>"), prettySpace, typeLayout(t.Return))
	case *ObjectType:
		return objectTypeLayout(t)
	case *ArrayType:
		return locd(t.Loc, typeWithParens(3, t.Element), atom("[]"))
	case *GenericType:
		parts := []layout.Node{qualifiedTypeID(t.ID)}
		if t.TypeArgs != nil {
			parts = append(parts, typeArgsLayout(t.TypeArgs))
		}
		return locd(t.Loc, parts...)
	case *UnionType:
		return locd(t.Loc, joinedTypes("|", t.Types, 1))
	case *IntersectionType:
		return locd(t.Loc, joinedTypes("&", t.Types, 2))
	case *TypeofType:
		return locd(t.Loc, atom("typeof"), space, typeLayout(t.Argument))
	case *TupleType:
		items := make([]layout.Node, len(t.Types))
		for i, item := range t.Types {
			items[i] = typeLayout(item)
		}
		return locd(t.Loc, bracketed("[", "]", layout.BreakIfNeeded,
			commaSeparated(items, trailingOnBreak)))
	case *StringLiteralType:
		if t.Raw != "" {
			return locd(t.Loc, atom(t.Raw))
		}
		return locd(t.Loc, atom(flow.QuoteString(t.Value)))
	case *NumberLiteralType:
		if t.Raw != "" {
			return locd(t.Loc, ifPretty(atom(t.Raw), atom(flow.NumberToString(t.Value))))
		}
		return locd(t.Loc, atom(flow.NumberToString(t.Value)))
	case *BooleanLiteralType:
		if t.Value {
			return locd(t.Loc, atom("true"))
		}
		return locd(t.Loc, atom("false"))
	}
	fail(t.Location(), "unexpected type annotation")
	return nil
}

// joinedTypes lays out a union or intersection, hiding the leading
// separator unless the list breaks onto multiple lines.
func joinedTypes(sep string, types []IType, minPrec int) layout.Node {
	items := make([]layout.Node, len(types))
	for i, t := range types {
		item := typeWithParens(minPrec, t)
		if i == 0 {
			items[i] = fuse(ifBreak(fuse(atom(sep), space), empty), item)
		} else {
			items[i] = fuse(ifBreak(empty, prettySpace), atom(sep), prettySpace, item)
		}
	}
	return &layout.Sequence{
		Break:        layout.BreakIfNeeded,
		InlineBefore: true,
		InlineAfter:  true,
		Indent:       2,
		List:         items,
	}
}

func qualifiedTypeID(id INode) layout.Node {
	switch id := id.(type) {
	case *Identifier:
		return identifierLayout(id)
	case *QualifiedTypeID:
		return locd(id.Loc, qualifiedTypeID(id.Qualification), atom("."),
			identifierLayout(id.ID))
	}
	fail(id.Location(), "unexpected generic type id")
	return nil
}

// functionTypeParams emits the parenthesized parameter list of a function
// type.
func functionTypeParams(fn *FunctionType) layout.Node {
	items := make([]layout.Node, 0, len(fn.Params)+1)
	for _, p := range fn.Params {
		items = append(items, functionTypeParam(p))
	}
	trailing := trailingOnBreak
	if fn.Rest != nil {
		items = append(items, fuse(atom("..."), functionTypeParam(*fn.Rest)))
		trailing = noTrailing
	}
	return bracketed("(", ")", layout.BreakIfNeeded, commaSeparated(items, trailing))
}

func functionTypeParam(p FunctionTypeParam) layout.Node {
	if p.Name == nil {
		return locd(p.Loc, typeLayout(p.Type))
	}
	parts := []layout.Node{identifierLayout(p.Name)}
	if p.Optional {
		parts = append(parts, atom("?"))
	}
	parts = append(parts, atom(":"), prettySpace, typeLayout(p.Type))
	return locd(p.Loc, parts...)
}

// functionTypeWithColon is the method-signature form of a function type,
// with a colon instead of an arrow before the return type.
func functionTypeWithColon(fn *FunctionType) layout.Node {
	return fuse(typeParamsLayout(fn.TypeParams), functionTypeParams(fn),
		atom(":"), prettySpace, typeLayout(fn.Return))
}

func objectTypeLayout(t *ObjectType) layout.Node {
	open, close := "{", "}"
	if t.Exact {
		open, close = "{|", "|}"
	}
	items := make([]layout.Node, len(t.Properties))
	for i, m := range t.Properties {
		items[i] = objectTypeMember(m)
	}
	return locd(t.Loc, bracketed(open, close, layout.BreakIfNeeded,
		commaSeparated(items, trailingOnBreak)))
}

func objectTypeMember(m IObjectTypeMember) layout.Node {
	switch m := m.(type) {
	case *ObjectTypeProp:
		var parts []layout.Node
		if m.Static {
			parts = append(parts, atom("static"), space)
		}
		switch m.Kind {
		case GetProperty:
			parts = append(parts, atom("get"), space)
		case SetProperty:
			parts = append(parts, atom("set"), space)
		}
		if m.Variance != nil {
			parts = append(parts, atom(m.Variance.String()))
		}
		parts = append(parts, propertyKey(m.Key, false, false))
		if m.Method {
			fn, ok := m.Value.(*FunctionType)
			if !ok {
				fail(m.Loc, "method type property is missing a function type")
			}
			return locd(m.Loc, append(parts, functionTypeWithColon(fn))...)
		}
		if m.Optional {
			parts = append(parts, atom("?"))
		}
		parts = append(parts, atom(":"), prettySpace, typeLayout(m.Value))
		return locd(m.Loc, parts...)
	case *ObjectTypeIndexer:
		var parts []layout.Node
		if m.Static {
			parts = append(parts, atom("static"), space)
		}
		if m.Variance != nil {
			parts = append(parts, atom(m.Variance.String()))
		}
		parts = append(parts, atom("["))
		if m.ID != nil {
			parts = append(parts, identifierLayout(m.ID), atom(":"), prettySpace)
		}
		parts = append(parts, typeLayout(m.Key), atom("]"), atom(":"), prettySpace,
			typeLayout(m.Value))
		return locd(m.Loc, parts...)
	case *ObjectTypeCallProp:
		if m.Static {
			return locd(m.Loc, atom("static"), space, functionTypeWithColon(m.Value))
		}
		return locd(m.Loc, functionTypeWithColon(m.Value))
	case *ObjectTypeSpread:
		return locd(m.Loc, atom("..."), typeLayout(m.Argument))
	}
	fail(m.Location(), "unexpected object type member")
	return nil
}

func typeParamsLayout(p *TypeParams) layout.Node {
	if p == nil {
		return empty
	}
	items := make([]layout.Node, len(p.Params))
	for i, param := range p.Params {
		var parts []layout.Node
		if param.Variance != nil {
			parts = append(parts, atom(param.Variance.String()))
		}
		parts = append(parts, atom(param.Name))
		if param.Bound != nil {
			parts = append(parts, atom(":"), prettySpace, typeLayout(param.Bound))
		}
		if param.Default != nil {
			risky := param.Bound != nil && typeEndsWithAngle(param.Bound)
			parts = append(parts, equalsSign(risky), typeLayout(param.Default))
		}
		items[i] = locd(param.Loc, parts...)
	}
	return locd(p.Loc, bracketed("<", ">", layout.BreakIfNeeded,
		commaSeparated(items, trailingOnBreak)))
}

func typeArgsLayout(a *TypeArgs) layout.Node {
	items := make([]layout.Node, len(a.Types))
	for i, t := range a.Types {
		items[i] = typeLayout(t)
	}
	return locd(a.Loc, bracketed("<", ">", layout.BreakIfNeeded,
		commaSeparated(items, trailingOnBreak)))
}
