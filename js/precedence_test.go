package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPrecedence(t *testing.T) {
	var tests = []struct {
		name     string
		e        IExpr
		expected int
	}{
		{"sequence", &SequenceExpr{}, 0},
		{"arrow", &ArrowFunc{}, 1},
		{"yield", &YieldExpr{}, 2},
		{"assignment", &AssignExpr{}, 3},
		{"conditional", &CondExpr{}, 4},
		{"or", &LogicalExpr{Op: OrOp}, 5},
		{"and", &LogicalExpr{Op: AndOp}, 6},
		{"in", &BinaryExpr{Op: InOp}, 11},
		{"addition", &BinaryExpr{Op: AddOp}, 13},
		{"exponentiation", &BinaryExpr{Op: ExpOp}, 15},
		{"unary", &UnaryExpr{Op: NegOp}, 16},
		{"prefix update", &UpdateExpr{Op: IncrOp, Prefix: true}, 16},
		{"postfix update", &UpdateExpr{Op: IncrOp}, 17},
		{"call", &CallExpr{}, 18},
		{"member", &MemberExpr{}, 19},
		{"new", &NewExpr{}, 19},
		{"identifier", &Identifier{}, 20},
		{"comprehension", &ComprehensionExpr{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.T(t, precedence(tt.e), tt.expected)
		})
	}
}

func TestDefinitelyNeedsParens(t *testing.T) {
	objAssign := &AssignExpr{Op: AssignOp, Target: &ObjectPattern{}, Value: id("b")}
	idAssign := &AssignExpr{Op: AssignOp, Target: id("a"), Value: id("b")}

	var tests = []struct {
		name     string
		ctxt     exprContext
		e        IExpr
		expected bool
	}{
		{"arrow body object", exprContext{group: groupArrowBody}, &ObjectExpr{}, true},
		{"arrow body array", exprContext{group: groupArrowBody}, &ArrayExpr{}, false},
		{"for init in", exprContext{group: groupForInit}, &BinaryExpr{Op: InOp}, true},
		{"for init less than", exprContext{group: groupForInit}, &BinaryExpr{Op: LtOp}, false},
		{"statement function", exprContext{left: leftExprStmt}, &FuncDecl{}, true},
		{"statement class", exprContext{left: leftExprStmt}, &ClassDecl{}, true},
		{"statement object", exprContext{left: leftExprStmt}, &ObjectExpr{}, true},
		{"statement object pattern assignment", exprContext{left: leftExprStmt}, objAssign, true},
		{"statement identifier assignment", exprContext{left: leftExprStmt}, idAssign, false},
		{"tagged template new", exprContext{left: leftTaggedTemplate}, &NewExpr{}, true},
		{"tagged template import", exprContext{left: leftTaggedTemplate}, &ImportExpr{}, true},
		{"tagged template identifier", exprContext{left: leftTaggedTemplate}, id("a"), false},
		{"minus before negation", exprContext{left: leftMinusOp}, &UnaryExpr{Op: NegOp}, true},
		{"minus before plus", exprContext{left: leftMinusOp}, &UnaryExpr{Op: PosOp}, false},
		{"minus before prefix decrement", exprContext{left: leftMinusOp},
			&UpdateExpr{Op: DecrOp, Prefix: true}, true},
		{"plus before unary plus", exprContext{left: leftPlusOp}, &UnaryExpr{Op: PosOp}, true},
		{"plus before prefix increment", exprContext{left: leftPlusOp},
			&UpdateExpr{Op: IncrOp, Prefix: true}, true},
		{"plus before postfix increment", exprContext{left: leftPlusOp},
			&UpdateExpr{Op: IncrOp}, false},
		{"normal object", normalContext, &ObjectExpr{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.T(t, definitelyNeedsParens(tt.ctxt, tt.e), tt.expected)
		})
	}
}

func TestNeedsParens(t *testing.T) {
	test.T(t, needsParens(normalContext, &SequenceExpr{}, precMin), true)
	test.T(t, needsParens(normalContext, id("a"), precMax), false)
	test.T(t, needsParens(exprContext{left: leftExprStmt}, &ObjectExpr{}, precMin), true)
}

func TestContainsCall(t *testing.T) {
	test.T(t, containsCall(id("a")), false)
	test.T(t, containsCall(member(call(id("a")), "b")), true)
	test.T(t, containsCall(&ImportExpr{Argument: str("m")}), true)
	test.T(t, containsCall(&NewExpr{Callee: id("A")}), false)
}
