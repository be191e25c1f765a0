package js

// IVisitor represents the AST visitor.
// Each INode encountered by Walk is passed to Enter; children nodes are
// ignored if the returned IVisitor is nil.
type IVisitor interface {
	Enter(n INode) IVisitor
}

// Walk traverses an AST in depth-first order.
func Walk(v IVisitor, n INode) {
	if n == nil {
		return
	}

	if v = v.Enter(n); v == nil {
		return
	}

	switch n := n.(type) {
	case *AST:
		for _, item := range n.List {
			Walk(v, item)
		}
	case *BlockStmt:
		for _, item := range n.List {
			Walk(v, item)
		}
	case *ExprStmt:
		Walk(v, n.Value)
	case *IfStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
		if n.Else != nil {
			Walk(v, n.Else)
		}
	case *LabelledStmt:
		Walk(v, n.Value)
	case *BranchStmt, *EmptyStmt, *DebuggerStmt:
		return
	case *ReturnStmt:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *ThrowStmt:
		Walk(v, n.Value)
	case *TryStmt:
		Walk(v, n.Body)
		if n.Catch != nil {
			if n.Catch.Binding != nil {
				Walk(v, n.Catch.Binding)
			}
			Walk(v, n.Catch.Body)
		}
		if n.Finally != nil {
			Walk(v, n.Finally)
		}
	case *WhileStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *DoWhileStmt:
		Walk(v, n.Body)
		Walk(v, n.Cond)
	case *ForStmt:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Cond != nil {
			Walk(v, n.Cond)
		}
		if n.Post != nil {
			Walk(v, n.Post)
		}
		Walk(v, n.Body)
	case *ForInStmt:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *ForOfStmt:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *SwitchStmt:
		Walk(v, n.Discriminant)
		for _, clause := range n.Cases {
			if clause.Cond != nil {
				Walk(v, clause.Cond)
			}
			for _, item := range clause.Body {
				Walk(v, item)
			}
		}
	case *WithStmt:
		Walk(v, n.Object)
		Walk(v, n.Body)
	case *VarDecl:
		for _, decl := range n.List {
			Walk(v, decl.ID)
			if decl.Init != nil {
				Walk(v, decl.Init)
			}
		}
	case *FuncDecl:
		walkParams(v, n.Params)
		Walk(v, n.Body)
	case *ArrowFunc:
		walkParams(v, n.Params)
		Walk(v, n.Body)
	case *ClassDecl:
		if n.Extends != nil {
			Walk(v, n.Extends)
		}
		if n.Body != nil {
			for _, item := range n.Body.List {
				Walk(v, item)
			}
		}
	case *ClassMethod:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *ClassProperty:
		Walk(v, n.Key)
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *ImportStmt, *ExportAllStmt:
		return
	case *ExportNamedStmt:
		if n.Declaration != nil {
			Walk(v, n.Declaration)
		}
	case *ExportDefaultStmt:
		Walk(v, n.Declaration)
	case *SequenceExpr:
		for _, item := range n.Expressions {
			Walk(v, item)
		}
	case *ArrayExpr:
		for _, item := range n.Elements {
			if item != nil {
				Walk(v, item)
			}
		}
	case *ObjectExpr:
		for _, item := range n.Properties {
			Walk(v, item)
		}
	case *Property:
		Walk(v, n.Key)
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *SpreadProperty:
		Walk(v, n.Argument)
	case *AssignExpr:
		Walk(v, n.Target)
		Walk(v, n.Value)
	case *BinaryExpr:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *LogicalExpr:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *CondExpr:
		Walk(v, n.Cond)
		Walk(v, n.X)
		Walk(v, n.Y)
	case *CallExpr:
		Walk(v, n.Callee)
		for _, item := range n.Args.List {
			Walk(v, item)
		}
	case *NewExpr:
		Walk(v, n.Callee)
		if n.Args != nil {
			for _, item := range n.Args.List {
				Walk(v, item)
			}
		}
	case *MemberExpr:
		Walk(v, n.Object)
		Walk(v, n.Property)
	case *UnaryExpr:
		Walk(v, n.Argument)
	case *UpdateExpr:
		Walk(v, n.Argument)
	case *YieldExpr:
		if n.Argument != nil {
			Walk(v, n.Argument)
		}
	case *SpreadElement:
		Walk(v, n.Argument)
	case *TemplateLiteral:
		for _, item := range n.Expressions {
			Walk(v, item)
		}
	case *TaggedTemplate:
		Walk(v, n.Tag)
		Walk(v, n.Quasi)
	case *TypeCastExpr:
		Walk(v, n.Expression)
	case *ImportExpr:
		Walk(v, n.Argument)
	case *JSXElement:
		for _, attr := range n.Attributes {
			Walk(v, attr)
		}
		for _, child := range n.Children {
			Walk(v, child)
		}
	case *JSXFragment:
		for _, child := range n.Children {
			Walk(v, child)
		}
	case *JSXAttribute:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *JSXSpreadAttribute:
		Walk(v, n.Argument)
	case *JSXExpressionContainer:
		if n.Expression != nil {
			Walk(v, n.Expression)
		}
	case *JSXSpreadChild:
		Walk(v, n.Expression)
	case *ObjectPattern:
		for _, item := range n.Properties {
			Walk(v, item.Value)
			if item.Default != nil {
				Walk(v, item.Default)
			}
		}
		if n.Rest != nil {
			Walk(v, n.Rest)
		}
	case *ArrayPattern:
		for _, item := range n.Elements {
			if item != nil {
				Walk(v, item)
			}
		}
	case *AssignmentPattern:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *RestElement:
		Walk(v, n.Argument)
	case *ExprPattern:
		Walk(v, n.Value)
	}
}

func walkParams(v IVisitor, params Params) {
	for _, item := range params.List {
		Walk(v, item)
	}
	if params.Rest != nil {
		Walk(v, params.Rest)
	}
}
