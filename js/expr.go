package js

import (
	"github.com/saima-dattuu/flow"
	"github.com/saima-dattuu/flow/layout"
)

// expressionWithParens emits an expression, parenthesizing it when it binds
// too loosely for its position or its context makes the bare form ambiguous.
// The parens clear the context for everything inside.
func expressionWithParens(minPrec int, ctxt exprContext, e IExpr) layout.Node {
	if needsParens(ctxt, e, minPrec) {
		return wrapInParens(expression(normalContext, e))
	}
	return expression(ctxt, e)
}

// expression emits an expression. The context travels to the leftmost child
// only; other children get a cleared left constraint, and the group
// constraint survives until a wrapper is emitted.
func expression(ctxt exprContext, e IExpr) layout.Node {
	switch e := e.(type) {
	case *ThisExpr:
		return locd(e.Loc, atom("this"))
	case *SuperExpr:
		return locd(e.Loc, atom("super"))
	case *Identifier:
		return identifierLayout(e)
	case *PrivateName:
		return locd(e.Loc, atom("#"+e.Name))
	case *LiteralExpr:
		return literal(e)
	case *ArrayExpr:
		return arrayLayout(e)
	case *ObjectExpr:
		return objectLayout(e)
	case *SequenceExpr:
		items := make([]layout.Node, len(e.Expressions))
		for i, x := range e.Expressions {
			c := ctxt.resetLeft()
			if i == 0 {
				c = ctxt
			}
			items[i] = expressionWithParens(precSequence+1, c, x)
		}
		return locd(e.Loc, group(commaSeparated(items, noTrailing)...))
	case *AssignExpr:
		return locd(e.Loc,
			assignTarget(ctxt, e.Target),
			prettySpace, atom(e.Op.String()), prettySpace,
			expressionWithParens(precAssignment, ctxt.resetLeft(), e.Value))
	case *BinaryExpr:
		return binaryLayout(ctxt, e)
	case *LogicalExpr:
		p := precedence(e)
		return locd(e.Loc, group(
			fuse(expressionWithParens(p, ctxt, e.X), prettySpace, atom(e.Op.String())),
			fuse(ifBreak(empty, prettySpace), expressionWithParens(p+1, ctxt.resetLeft(), e.Y)),
		))
	case *CondExpr:
		return locd(e.Loc, group(
			expressionWithParens(precCond+1, ctxt, e.Cond),
			fuse(ifBreak(empty, prettySpace), atom("?"), prettySpace,
				expressionWithParens(precMin, ctxt.resetLeft(), e.X)),
			fuse(ifBreak(empty, prettySpace), atom(":"), prettySpace,
				expressionWithParens(precMin, ctxt.resetLeft(), e.Y)),
		))
	case *CallExpr:
		return locd(e.Loc,
			expressionWithParens(precCall, ctxt, e.Callee),
			argumentsLayout(&e.Args))
	case *NewExpr:
		callee := expressionWithParens(precLHS, normalContext, e.Callee)
		if !needsParens(normalContext, e.Callee, precLHS) && containsCall(e.Callee) {
			callee = wrapInParens(expression(normalContext, e.Callee))
		}
		args := atom("()")
		if e.Args != nil {
			args = argumentsLayout(e.Args)
		}
		return locd(e.Loc, atom("new"), space, callee, args)
	case *MemberExpr:
		return memberLayout(ctxt, e)
	case *UnaryExpr:
		return unaryLayout(ctxt, e)
	case *UpdateExpr:
		if e.Prefix {
			return locd(e.Loc, atom(e.Op.String()),
				expressionWithParens(precUnary, ctxt.resetLeft(), e.Argument))
		}
		return locd(e.Loc,
			expressionWithParens(precUnary, ctxt, e.Argument), atom(e.Op.String()))
	case *YieldExpr:
		if e.Argument == nil {
			if e.Delegate {
				return locd(e.Loc, atom("yield*"))
			}
			return locd(e.Loc, atom("yield"))
		}
		arg := expressionWithParens(precYield, ctxt.resetLeft(), e.Argument)
		if e.Delegate {
			return locd(e.Loc, atom("yield*"), prettySpace, arg)
		}
		return locd(e.Loc, atom("yield"), space, arg)
	case *SpreadElement:
		return locd(e.Loc, atom("..."),
			expressionWithParens(precAssignment, ctxt.resetLeft(), e.Argument))
	case *TemplateLiteral:
		return templateLayout(e)
	case *TaggedTemplate:
		tag := expressionWithParens(precCall,
			exprContext{left: leftTaggedTemplate, group: ctxt.group}, e.Tag)
		return locd(e.Loc, tag, templateLayout(e.Quasi))
	case *TypeCastExpr:
		return locd(e.Loc, atom("("),
			expression(normalContext, e.Expression),
			atom(":"), prettySpace, typeLayout(e.Annotation), atom(")"))
	case *ImportExpr:
		return locd(e.Loc, atom("import("),
			expressionWithParens(precAssignment, normalContext, e.Argument), atom(")"))
	case *MetaProperty:
		return locd(e.Loc, identifierLayout(e.Meta), atom("."), identifierLayout(e.Property))
	case *FuncDecl:
		return functionLayout(e)
	case *ArrowFunc:
		return arrowLayout(ctxt, e)
	case *ClassDecl:
		return classLayout(e)
	case *JSXElement:
		return jsxElement(e)
	case *JSXFragment:
		return jsxFragment(e)
	case *ComprehensionExpr:
		fail(e.Loc, "comprehension not supported at %s", e.Loc)
	case *GeneratorExpr:
		fail(e.Loc, "generator not supported at %s", e.Loc)
	}
	fail(e.Location(), "unexpected expression")
	return nil
}

func identifierLayout(id *Identifier) layout.Node {
	return &layout.Identifier{Loc: id.Loc, Text: id.Name}
}

func literal(e *LiteralExpr) layout.Node {
	switch e.Kind {
	case StringLiteral:
		return locd(e.Loc, atom(flow.QuoteString(e.String)))
	case NumberLiteral:
		shortest := flow.NumberToString(e.Number)
		if e.Raw == "" || e.Raw == shortest {
			return locd(e.Loc, atom(shortest))
		}
		return locd(e.Loc, ifPretty(atom(e.Raw), atom(shortest)))
	case BooleanLiteral:
		if e.Boolean {
			return locd(e.Loc, atom("true"))
		}
		return locd(e.Loc, atom("false"))
	case NullLiteral:
		return locd(e.Loc, atom("null"))
	}
	return locd(e.Loc, atom(e.Raw))
}

func assignTarget(ctxt exprContext, target INode) layout.Node {
	switch t := target.(type) {
	case *Identifier:
		return identifierLayout(t)
	case *ExprPattern:
		return expressionWithParens(precLHS, ctxt, t.Value)
	case IPattern:
		return pattern(t)
	case IExpr:
		return expressionWithParens(precLHS, ctxt, t)
	}
	fail(target.Location(), "unexpected assignment target")
	return nil
}

func binaryLayout(ctxt exprContext, e *BinaryExpr) layout.Node {
	p := precedence(e)

	leftPrec, rightPrec := p, p+1
	if e.Op == ExpOp {
		// exponentiation is right associative and rejects a bare unary on
		// its left
		leftPrec, rightPrec = precPostfix, p
	}
	left := expressionWithParens(leftPrec, ctxt, e.X)

	// an abutting sign would fuse into ++ or --; a direct same-sign operand
	// keeps a hard space, a nested one is parenthesized via the context
	rightCtxt := ctxt.resetLeft()
	sep := prettySpace
	switch e.Op {
	case AddOp:
		if sameSign(e.Y, PosOp, IncrOp) {
			sep = space
		} else {
			rightCtxt.left = leftPlusOp
		}
	case SubOp:
		if sameSign(e.Y, NegOp, DecrOp) {
			sep = space
		} else {
			rightCtxt.left = leftMinusOp
		}
	}
	if IsIdentifierOp(e.Op) {
		sep = space
	}
	right := expressionWithParens(rightPrec, rightCtxt, e.Y)

	opSep := prettySpace
	if IsIdentifierOp(e.Op) {
		opSep = space
	}
	return locd(e.Loc, group(
		fuse(left, opSep, atom(e.Op.String())),
		fuse(ifBreak(empty, sep), right),
	))
}

// sameSign reports whether an operand starts with the sign that the
// enclosing additive operator also uses.
func sameSign(e IExpr, unaryOp, updateOp OperatorType) bool {
	if u, ok := e.(*UnaryExpr); ok {
		return u.Op == unaryOp
	}
	if u, ok := e.(*UpdateExpr); ok {
		return u.Prefix && u.Op == updateOp
	}
	return false
}

func unaryLayout(ctxt exprContext, e *UnaryExpr) layout.Node {
	arg := expressionWithParens(precUnary, ctxt.resetLeft(), e.Argument)

	if IsIdentifierOp(e.Op) {
		if _, ok := e.Argument.(*SequenceExpr); ok {
			// the argument renders parenthesized, no space needed
			return locd(e.Loc, atom(e.Op.String()), arg)
		}
		return locd(e.Loc, atom(e.Op.String()), space, arg)
	}

	switch e.Op {
	case NegOp:
		if sameSign(e.Argument, NegOp, DecrOp) {
			return locd(e.Loc, atom("-"), space, arg)
		}
	case PosOp:
		if sameSign(e.Argument, PosOp, IncrOp) {
			return locd(e.Loc, atom("+"), space, arg)
		}
	}
	return locd(e.Loc, atom(e.Op.String()), arg)
}

func memberLayout(ctxt exprContext, e *MemberExpr) layout.Node {
	object := expressionWithParens(precCall, ctxt, e.Object)

	if lit, ok := e.Object.(*LiteralExpr); ok && lit.Kind == NumberLiteral && !e.Computed {
		object = numberMemberObject(lit)
	}

	if e.Computed {
		return locd(e.Loc, object, atom("["),
			expression(normalContext, e.Property), atom("]"))
	}
	switch p := e.Property.(type) {
	case *Identifier:
		return locd(e.Loc, object, atom("."), identifierLayout(p))
	case *PrivateName:
		return locd(e.Loc, object, atom(".#"+p.Name))
	}
	fail(e.Loc, "unexpected member property")
	return nil
}

// numberMemberObject disambiguates a numeric literal used as the object of a
// dotted member access, where `1.foo` would misparse: the compact form gets
// a second dot when it has no dot or exponent of its own, and the pretty form
// keeps the source raw, parenthesized when the raw has no dot or exponent.
func numberMemberObject(lit *LiteralExpr) layout.Node {
	shortest := flow.NumberToString(lit.Number)
	ugly := shortest
	if flow.IsSimpleNumber(ugly) {
		ugly += "."
	}

	raw := lit.Raw
	if raw == "" {
		raw = shortest
	}
	pretty := raw
	if flow.IsSimpleNumber(raw) {
		pretty = "(" + raw + ")"
	}
	return locd(lit.Loc, ifPretty(atom(pretty), atom(ugly)))
}

func argumentsLayout(a *Arguments) layout.Node {
	items := make([]layout.Node, len(a.List))
	for i, arg := range a.List {
		items[i] = expressionWithParens(precMin, normalContext, arg)
	}
	return bracketed("(", ")", layout.BreakIfNeeded, commaSeparated(items, trailingOnBreak))
}

func templateLayout(t *TemplateLiteral) layout.Node {
	parts := []layout.Node{atom("`")}
	for i, q := range t.Quasis {
		parts = append(parts, atom(q.Raw))
		if i < len(t.Expressions) {
			parts = append(parts, atom("${"),
				expression(normalContext, t.Expressions[i]), atom("}"))
		}
	}
	parts = append(parts, atom("`"))
	return locd(t.Loc, parts...)
}

func arrayLayout(e *ArrayExpr) layout.Node {
	items := make([]layout.Node, len(e.Elements))
	trailing := trailingOnBreak
	for i, el := range e.Elements {
		if el == nil {
			items[i] = empty
			if i == len(e.Elements)-1 {
				// a trailing hole vanishes without its comma
				trailing = forcedTrailing
			}
			continue
		}
		items[i] = expressionWithParens(precAssignment, normalContext, el)
	}
	return locd(e.Loc, bracketed("[", "]", layout.BreakIfNeeded,
		commaSeparated(items, trailing)))
}

func objectLayout(e *ObjectExpr) layout.Node {
	items := make([]layout.Node, len(e.Properties))
	for i, m := range e.Properties {
		item := objectMember(m)
		if i != 0 && (memberContainsFunction(e.Properties[i-1]) || memberContainsFunction(m)) {
			// forces the object onto multiple lines in pretty mode, with a
			// blank line between the properties
			item = fuse(ifPretty(atom("\n"), empty), item)
		}
		items[i] = item
	}
	return locd(e.Loc, bracketed("{", "}", layout.BreakIfNeeded,
		commaSeparated(items, trailingOnBreak)))
}

func objectMember(m IObjectMember) layout.Node {
	switch m := m.(type) {
	case *SpreadProperty:
		return locd(m.Loc, atom("..."),
			expressionWithParens(precAssignment, normalContext, m.Argument))
	case *Property:
		if m.Kind != InitProperty || m.Method {
			fn, ok := m.Value.(*FuncDecl)
			if !ok {
				fail(m.Loc, "method property is missing a function value")
			}
			return locd(m.Loc, methodLayout(m.Kind, m.Key, m.Computed, false, fn))
		}
		key := propertyKey(m.Key, m.Computed, false)
		if m.Shorthand {
			return locd(m.Loc, key)
		}
		return locd(m.Loc, key, atom(":"), prettySpace,
			expressionWithParens(precAssignment, normalContext, m.Value))
	}
	fail(m.Location(), "unexpected object member")
	return nil
}

// memberContainsFunction implements the blank-line rule between object
// properties: a property whose value is a function, an accessor, or an
// object that transitively holds one, gets surrounding blank lines.
func memberContainsFunction(m IObjectMember) bool {
	p, ok := m.(*Property)
	if !ok {
		return false
	}
	if p.Kind == GetProperty || p.Kind == SetProperty || p.Method {
		return true
	}
	switch v := p.Value.(type) {
	case *FuncDecl, *ArrowFunc:
		return true
	case *ObjectExpr:
		for _, item := range v.Properties {
			if memberContainsFunction(item) {
				return true
			}
		}
	}
	return false
}

// propertyKey emits an object or class member key. Private names are only
// legal on class members.
func propertyKey(key IExpr, computed, allowPrivate bool) layout.Node {
	if computed {
		return fuse(atom("["), expression(normalContext, key), atom("]"))
	}
	switch k := key.(type) {
	case *Identifier:
		return identifierLayout(k)
	case *PrivateName:
		if !allowPrivate {
			fail(k.Loc, "private name can not be used as an object key")
		}
		return locd(k.Loc, atom("#"+k.Name))
	case *LiteralExpr:
		return literal(k)
	}
	fail(key.Location(), "unexpected property key")
	return nil
}
