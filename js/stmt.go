package js

import (
	"github.com/saima-dattuu/flow/layout"
)

// statement lays out a single statement. When prettySemicolon is set the
// statement sits in a position where ASI makes its terminator optional, so
// the terminator is emitted in pretty mode only; the flag propagates into
// tail positions of compound statements.
func statement(s IStmt, prettySemicolon bool) layout.Node {
	switch s := s.(type) {
	case *BlockStmt:
		return blockLayout(s)
	case *EmptyStmt:
		return locd(s.Loc, atom(";"))
	case *ExprStmt:
		if s.Directive != "" {
			return locd(s.Loc, atom(s.Directive), semicolon(prettySemicolon))
		}
		return locd(s.Loc,
			expressionWithParens(precSequence, exprContext{left: leftExprStmt}, s.Value),
			semicolon(prettySemicolon))
	case *IfStmt:
		return ifLayout(s, prettySemicolon)
	case *LabelledStmt:
		return locd(s.Loc, identifierLayout(s.Label), atom(":"), prettySpace,
			statement(s.Value, prettySemicolon))
	case *BranchStmt:
		if s.Label != nil {
			return locd(s.Loc, atom(s.Type.String()), space, identifierLayout(s.Label),
				semicolon(prettySemicolon))
		}
		return locd(s.Loc, atom(s.Type.String()), semicolon(prettySemicolon))
	case *ReturnStmt:
		if s.Value == nil {
			return locd(s.Loc, atom("return"), semicolon(prettySemicolon))
		}
		arg := expressionWithParens(precMin, normalContext, s.Value)
		switch s.Value.(type) {
		case *LogicalExpr, *BinaryExpr, *SequenceExpr, *JSXElement:
			arg = wrapInParensOnBreak(arg)
		}
		return locd(s.Loc, atom("return"), space, arg, semicolon(prettySemicolon))
	case *ThrowStmt:
		return locd(s.Loc, atom("throw"), space,
			wrapInParensOnBreak(expressionWithParens(precMin, normalContext, s.Value)),
			semicolon(prettySemicolon))
	case *TryStmt:
		parts := []layout.Node{atom("try"), prettySpace, blockLayout(s.Body)}
		if s.Catch != nil {
			parts = append(parts, prettySpace, atom("catch"), prettySpace)
			if s.Catch.Binding != nil {
				parts = append(parts, wrapInParens(pattern(s.Catch.Binding)), prettySpace)
			}
			parts = append(parts, blockLayout(s.Catch.Body))
		}
		if s.Finally != nil {
			parts = append(parts, prettySpace, atom("finally"), prettySpace, blockLayout(s.Finally))
		}
		return locd(s.Loc, parts...)
	case *WhileStmt:
		return locd(s.Loc, atom("while"), prettySpace,
			wrapInParens(expression(normalContext, s.Cond)),
			statementAfterTest(s.Body, prettySemicolon))
	case *DoWhileStmt:
		tail := fuse(atom("while"), prettySpace,
			wrapInParens(expression(normalContext, s.Cond)), atom(";"))
		if b, ok := s.Body.(*BlockStmt); ok {
			return locd(s.Loc, atom("do"), prettySpace, blockLayout(b), prettySpace, tail)
		}
		return locd(s.Loc, &layout.Sequence{
			Break:        layout.BreakIfPretty,
			InlineBefore: true,
			InlineAfter:  true,
			List: []layout.Node{
				fuse(atom("do"), statementAfterKeyword(s.Body, false)),
				tail,
			},
		})
	case *ForStmt:
		parts := []layout.Node{atom("for"), prettySpace, atom("(")}
		if s.Init != nil {
			parts = append(parts, forInit(s.Init, exprContext{group: groupForInit}))
		}
		parts = append(parts, atom(";"))
		if s.Cond != nil {
			parts = append(parts, prettySpace, expression(normalContext, s.Cond))
		}
		parts = append(parts, atom(";"))
		if s.Post != nil {
			parts = append(parts, prettySpace, expression(normalContext, s.Post))
		}
		parts = append(parts, atom(")"), statementAfterTest(s.Body, prettySemicolon))
		return locd(s.Loc, parts...)
	case *ForInStmt:
		return locd(s.Loc, atom("for"), prettySpace, atom("("),
			forInit(s.Left, normalContext), space, atom("in"), space,
			expression(normalContext, s.Right), atom(")"),
			statementAfterTest(s.Body, prettySemicolon))
	case *ForOfStmt:
		head := atom("for")
		if s.Await {
			head = atom("for await")
		}
		return locd(s.Loc, head, prettySpace, atom("("),
			forInit(s.Left, normalContext), space, atom("of"), space,
			expression(normalContext, s.Right), atom(")"),
			statementAfterTest(s.Body, prettySemicolon))
	case *SwitchStmt:
		cases := make([]layout.Node, len(s.Cases))
		for i, c := range s.Cases {
			cases[i] = caseLayout(c, i == len(s.Cases)-1)
		}
		return locd(s.Loc, atom("switch"), prettySpace,
			wrapInParens(expression(normalContext, s.Discriminant)), prettySpace,
			bracketed("{", "}", layout.BreakIfPretty, cases))
	case *WithStmt:
		return locd(s.Loc, atom("with"), prettySpace,
			wrapInParens(expression(normalContext, s.Object)),
			statementAfterTest(s.Body, prettySemicolon))
	case *DebuggerStmt:
		return locd(s.Loc, atom("debugger"), semicolon(prettySemicolon))
	case *VarDecl:
		return locd(s.Loc, varDeclLayout(s), semicolon(prettySemicolon))
	case *FuncDecl:
		return functionLayout(s)
	case *ClassDecl:
		return classLayout(s)
	case *ImportStmt:
		return importLayout(s, prettySemicolon)
	case *ExportNamedStmt:
		return exportNamedLayout(s, prettySemicolon)
	case *ExportDefaultStmt:
		return exportDefaultLayout(s, prettySemicolon)
	case *ExportAllStmt:
		parts := []layout.Node{atom("export"), space, atom("*")}
		if s.Exported != nil {
			parts = append(parts, space, atom("as"), space, identifierLayout(s.Exported))
		}
		parts = append(parts, space, atom("from"), prettySpace, literal(s.Source),
			semicolon(prettySemicolon))
		return locd(s.Loc, parts...)
	case *TypeAliasStmt:
		return locd(s.Loc, typeAliasCore(s), semicolon(prettySemicolon))
	case *OpaqueTypeStmt:
		return locd(s.Loc, opaqueTypeCore(s), semicolon(prettySemicolon))
	case *InterfaceStmt:
		return locd(s.Loc, interfaceCore(s))
	case *DeclareVarStmt:
		return locd(s.Loc, atom("declare"), space, declareVarCore(s), semicolon(prettySemicolon))
	case *DeclareFunctionStmt:
		return locd(s.Loc, atom("declare"), space, declareFunctionCore(s), semicolon(prettySemicolon))
	case *DeclareClassStmt:
		return locd(s.Loc, atom("declare"), space, declareClassCore(s))
	case *DeclareModuleStmt:
		var id layout.Node
		switch n := s.ID.(type) {
		case *Identifier:
			id = identifierLayout(n)
		case *LiteralExpr:
			id = literal(n)
		default:
			fail(s.Loc, "unexpected declare module id")
		}
		return locd(s.Loc, atom("declare module"), space, id, prettySpace, blockLayout(s.Body))
	case *DeclareModuleExportsStmt:
		return locd(s.Loc, atom("declare module.exports:"), prettySpace,
			typeLayout(s.Annotation), semicolon(prettySemicolon))
	case *DeclareTypeAliasStmt:
		return locd(s.Loc, atom("declare"), space, typeAliasCore(&s.Alias),
			semicolon(prettySemicolon))
	case *DeclareOpaqueTypeStmt:
		return locd(s.Loc, atom("declare"), space, opaqueTypeCore(&s.Opaque),
			semicolon(prettySemicolon))
	case *DeclareInterfaceStmt:
		return locd(s.Loc, atom("declare"), space, interfaceCore(&s.Interface))
	case *DeclareExportStmt:
		return declareExportLayout(s, prettySemicolon)
	}
	fail(s.Location(), "unexpected statement")
	return nil
}

// statementAfterTest lays out a loop or conditional body that follows a
// closing paren: blocks stay on the line, other statements indent onto their
// own line in pretty mode.
func statementAfterTest(body IStmt, prettySemicolon bool) layout.Node {
	switch b := body.(type) {
	case *BlockStmt:
		return fuse(prettySpace, blockLayout(b))
	case *EmptyStmt:
		return ifPretty(atom(" {}"), atom(";"))
	}
	return &layout.Sequence{
		Break:       layout.BreakIfPretty,
		InlineAfter: true,
		Indent:      2,
		List:        []layout.Node{statement(body, prettySemicolon)},
	}
}

// statementAfterKeyword is like statementAfterTest for bodies that follow a
// keyword directly, which needs a separating space in compact mode.
func statementAfterKeyword(body IStmt, prettySemicolon bool) layout.Node {
	switch b := body.(type) {
	case *BlockStmt:
		return fuse(prettySpace, blockLayout(b))
	case *EmptyStmt:
		return ifPretty(atom(" {}"), atom(";"))
	}
	return &layout.Sequence{
		Break:       layout.BreakIfPretty,
		InlineAfter: true,
		Indent:      2,
		List:        []layout.Node{fuse(ifPretty(empty, space), statement(body, prettySemicolon))},
	}
}

func ifLayout(s *IfStmt, prettySemicolon bool) layout.Node {
	head := fuse(atom("if"), prettySpace, wrapInParens(expression(normalContext, s.Cond)))
	if s.Else == nil {
		return locd(s.Loc, head, statementAfterTest(s.Body, prettySemicolon))
	}

	var elsePart layout.Node
	switch e := s.Else.(type) {
	case *IfStmt:
		elsePart = fuse(atom("else"), space, ifLayout(e, prettySemicolon))
	case *BlockStmt:
		elsePart = fuse(atom("else"), prettySpace, blockLayout(e))
	default:
		elsePart = fuse(atom("else"), statementAfterKeyword(s.Else, prettySemicolon))
	}

	if b, ok := s.Body.(*BlockStmt); ok {
		return locd(s.Loc, head, prettySpace, blockLayout(b), prettySpace, elsePart)
	}
	return locd(s.Loc, &layout.Sequence{
		Break:        layout.BreakIfPretty,
		InlineBefore: true,
		InlineAfter:  true,
		List: []layout.Node{
			fuse(head, statementAfterTest(s.Body, false)),
			elsePart,
		},
	})
}

func blockLayout(b *BlockStmt) layout.Node {
	return locd(b.Loc, bracketed("{", "}", layout.BreakIfPretty, statementList(b.List, true)))
}

func caseLayout(c CaseClause, last bool) layout.Node {
	var head layout.Node
	if c.Cond != nil {
		head = fuse(atom("case"), space, expression(normalContext, c.Cond), atom(":"))
	} else {
		head = atom("default:")
	}
	if len(c.Body) == 0 {
		return locd(c.Loc, head)
	}
	if b, ok := c.Body[0].(*BlockStmt); ok && len(c.Body) == 1 {
		return locd(c.Loc, head, prettySpace, blockLayout(b))
	}
	return locd(c.Loc, head, &layout.Sequence{
		Break:       layout.BreakIfPretty,
		InlineAfter: true,
		Indent:      2,
		List:        statementList(c.Body, last),
	})
}

// forInit lays out a for/for-in/for-of initializer, which is either a
// declaration or an expression constrained by the for-init context.
func forInit(init INode, ctxt exprContext) layout.Node {
	switch n := init.(type) {
	case *VarDecl:
		return varDeclLayout(n)
	case IExpr:
		return expressionWithParens(precMin, ctxt, n)
	case IPattern:
		return pattern(n)
	}
	fail(init.Location(), "unexpected for loop initializer")
	return nil
}

func varDeclLayout(d *VarDecl) layout.Node {
	items := make([]layout.Node, len(d.List))
	for i, dec := range d.List {
		if dec.Init != nil {
			items[i] = locd(dec.Loc, pattern(dec.ID), equalsSign(patternEndsWithAngle(dec.ID)),
				expressionWithParens(precAssignment, normalContext, dec.Init))
		} else {
			items[i] = locd(dec.Loc, pattern(dec.ID))
		}
	}
	return fuse(atom(d.Kind.String()), space,
		group(commaSeparated(items, noTrailing)...))
}

////////////////////////////////////////////////////////////////
// Modules

func importLayout(s *ImportStmt, prettySemicolon bool) layout.Node {
	parts := []layout.Node{atom("import")}
	if s.Kind != ImportValue {
		parts = append(parts, space, atom(s.Kind.String()))
	}

	hasClause := false
	if s.Default != nil {
		parts = append(parts, space, identifierLayout(s.Default))
		hasClause = true
	}
	if s.Namespace != nil {
		if hasClause {
			parts = append(parts, atom(","), prettySpace, atom("* as "), identifierLayout(s.Namespace))
		} else {
			parts = append(parts, space, atom("* as "), identifierLayout(s.Namespace))
		}
		hasClause = true
	}
	if len(s.Specifiers) != 0 {
		items := make([]layout.Node, len(s.Specifiers))
		for i, spec := range s.Specifiers {
			items[i] = importSpecifier(spec)
		}
		clause := bracketed("{", "}", layout.BreakIfNeeded, commaSeparated(items, trailingOnBreak))
		if hasClause {
			parts = append(parts, atom(","), prettySpace, clause)
		} else {
			parts = append(parts, prettySpace, clause)
		}
		hasClause = true
	}

	if hasClause {
		// after a closing brace the space is cosmetic, after an identifier
		// it separates tokens
		sep := space
		if len(s.Specifiers) != 0 {
			sep = prettySpace
		}
		parts = append(parts, sep, atom("from"), prettySpace, literal(s.Source))
	} else {
		parts = append(parts, space, literal(s.Source))
	}
	parts = append(parts, semicolon(prettySemicolon))
	return locd(s.Loc, parts...)
}

func importSpecifier(spec ImportSpecifier) layout.Node {
	parts := []layout.Node{}
	if spec.Kind != ImportValue {
		parts = append(parts, atom(spec.Kind.String()), space)
	}
	parts = append(parts, identifierLayout(spec.Imported))
	if spec.Local != nil {
		parts = append(parts, space, atom("as"), space, identifierLayout(spec.Local))
	}
	return locd(spec.Loc, parts...)
}

func exportSpecifiers(specs []ExportSpecifier) layout.Node {
	items := make([]layout.Node, len(specs))
	for i, spec := range specs {
		if spec.Exported != nil {
			items[i] = locd(spec.Loc, identifierLayout(spec.Local), space, atom("as"), space,
				identifierLayout(spec.Exported))
		} else {
			items[i] = locd(spec.Loc, identifierLayout(spec.Local))
		}
	}
	return bracketed("{", "}", layout.BreakIfNeeded, commaSeparated(items, trailingOnBreak))
}

func exportNamedLayout(s *ExportNamedStmt, prettySemicolon bool) layout.Node {
	if s.Declaration != nil {
		return locd(s.Loc, atom("export"), space, statement(s.Declaration, prettySemicolon))
	}
	parts := []layout.Node{atom("export")}
	if s.Kind != ImportValue {
		parts = append(parts, space, atom(s.Kind.String()))
	}
	parts = append(parts, prettySpace, exportSpecifiers(s.Specifiers))
	if s.Source != nil {
		parts = append(parts, prettySpace, atom("from"), prettySpace, literal(s.Source))
	}
	parts = append(parts, semicolon(prettySemicolon))
	return locd(s.Loc, parts...)
}

func exportDefaultLayout(s *ExportDefaultStmt, prettySemicolon bool) layout.Node {
	head := fuse(atom("export"), space, atom("default"), space)
	switch d := s.Declaration.(type) {
	case *FuncDecl:
		return locd(s.Loc, head, functionLayout(d))
	case *ClassDecl:
		return locd(s.Loc, head, classLayout(d))
	case IExpr:
		return locd(s.Loc, head,
			expressionWithParens(precAssignment, normalContext, d),
			semicolon(prettySemicolon))
	}
	fail(s.Loc, "unexpected export default declaration")
	return nil
}

func declareExportLayout(s *DeclareExportStmt, prettySemicolon bool) layout.Node {
	head := []layout.Node{atom("declare"), space, atom("export"), space}
	if s.Default {
		head = append(head, atom("default"), space)
	}

	if s.Declaration != nil {
		var core layout.Node
		switch d := s.Declaration.(type) {
		case *DeclareVarStmt:
			core = fuse(declareVarCore(d), semicolon(prettySemicolon))
		case *DeclareFunctionStmt:
			core = fuse(declareFunctionCore(d), semicolon(prettySemicolon))
		case *DeclareClassStmt:
			core = declareClassCore(d)
		case *TypeAliasStmt:
			core = fuse(typeAliasCore(d), semicolon(prettySemicolon))
		case *OpaqueTypeStmt:
			core = fuse(opaqueTypeCore(d), semicolon(prettySemicolon))
		case *InterfaceStmt:
			core = interfaceCore(d)
		default:
			fail(s.Loc, "unexpected declare export declaration")
		}
		return locd(s.Loc, append(head, core)...)
	}

	if len(s.Specifiers) == 0 {
		fail(s.Loc, "declare export needs a declaration or specifiers")
	}
	parts := append(head[:3], prettySpace, exportSpecifiers(s.Specifiers))
	if s.Source != nil {
		parts = append(parts, prettySpace, atom("from"), prettySpace, literal(s.Source))
	}
	parts = append(parts, semicolon(prettySemicolon))
	return locd(s.Loc, parts...)
}

////////////////////////////////////////////////////////////////
// Flow declaration cores, shared between the plain statements and the
// declare-export wrapper.

func typeAliasCore(s *TypeAliasStmt) layout.Node {
	return fuse(atom("type"), space, identifierLayout(s.Name), typeParamsLayout(s.TypeParams),
		equalsSign(s.TypeParams != nil), typeLayout(s.Right))
}

func opaqueTypeCore(s *OpaqueTypeStmt) layout.Node {
	parts := []layout.Node{atom("opaque type"), space, identifierLayout(s.Name),
		typeParamsLayout(s.TypeParams)}
	if s.Supertype != nil {
		parts = append(parts, atom(":"), prettySpace, typeLayout(s.Supertype))
	}
	if s.Impl != nil {
		risky := s.TypeParams != nil && s.Supertype == nil ||
			s.Supertype != nil && typeEndsWithAngle(s.Supertype)
		parts = append(parts, equalsSign(risky), typeLayout(s.Impl))
	}
	return fuse(parts...)
}

func interfaceCore(s *InterfaceStmt) layout.Node {
	parts := []layout.Node{atom("interface"), space, identifierLayout(s.Name),
		typeParamsLayout(s.TypeParams)}
	if len(s.Extends) != 0 {
		parts = append(parts, space, atom("extends"), space, genericList(s.Extends))
	}
	parts = append(parts, prettySpace, objectTypeLayout(s.Body))
	return fuse(parts...)
}

func declareVarCore(s *DeclareVarStmt) layout.Node {
	return fuse(atom("var"), space, pattern(s.Name))
}

func declareFunctionCore(s *DeclareFunctionStmt) layout.Node {
	fn, ok := s.Name.Annotation.(*FunctionType)
	if !ok {
		fail(s.Loc, "declare function is missing a function type annotation")
	}
	parts := []layout.Node{atom("function"), space,
		&layout.Identifier{Loc: s.Name.Loc, Text: s.Name.Name},
		typeParamsLayout(fn.TypeParams),
		functionTypeParams(fn),
		atom(":"), prettySpace, typeLayout(fn.Return)}
	if s.Predicate != nil {
		parts = append(parts, space, predicateLayout(s.Predicate))
	}
	return fuse(parts...)
}

func declareClassCore(s *DeclareClassStmt) layout.Node {
	parts := []layout.Node{atom("class"), space, identifierLayout(s.Name),
		typeParamsLayout(s.TypeParams)}
	if len(s.Extends) != 0 {
		parts = append(parts, space, atom("extends"), space, genericList(s.Extends))
	}
	if len(s.Mixins) != 0 {
		parts = append(parts, space, atom("mixins"), space, genericList(s.Mixins))
	}
	parts = append(parts, prettySpace, objectTypeLayout(s.Body))
	return fuse(parts...)
}

func genericList(list []*GenericType) layout.Node {
	items := make([]layout.Node, len(list))
	for i, g := range list {
		items[i] = typeLayout(g)
	}
	return fuse(commaSeparated(items, noTrailing)...)
}

func predicateLayout(p *Predicate) layout.Node {
	if p.Value == nil {
		return locd(p.Loc, atom("%checks"))
	}
	return locd(p.Loc, atom("%checks("), expression(normalContext, p.Value), atom(")"))
}
