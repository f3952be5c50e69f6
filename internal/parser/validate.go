package parser

import (
	"nac/internal/ast"
	"nac/internal/errors"
)

// Validator inspects a parsed program. Implementations must not modify it.
type Validator interface {
	Validate(program *ast.Program) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(program *ast.Program) error

func (f ValidatorFunc) Validate(program *ast.Program) error {
	return f(program)
}

// DefaultValidators is the set run by ParseAndValidate when none are given.
func DefaultValidators() []Validator {
	return []Validator{ControlFlowValidator{}}
}

// ControlFlowValidator rejects break and continue outside a loop and return
// outside a function. A function body starts a new loop context.
type ControlFlowValidator struct{}

func (ControlFlowValidator) Validate(program *ast.Program) error {
	w := &controlFlowWalker{}
	ast.Inspect(program, w.visit)
	return w.err
}

type controlFlowWalker struct {
	loops int
	funcs int
	err   error
}

func (w *controlFlowWalker) fail(msg string, pos ast.Position) {
	e := errors.NewSyntaxError(msg, pos)
	e.Code = errors.ErrorMisplacedStatement
	w.err = e
}

func (w *controlFlowWalker) visit(n ast.Node) bool {
	if w.err != nil {
		return false
	}

	switch n := n.(type) {
	case *ast.BreakStmt:
		if w.loops == 0 {
			w.fail("'break' outside loop", n.Pos)
		}
	case *ast.ContinueStmt:
		if w.loops == 0 {
			w.fail("'continue' outside loop", n.Pos)
		}
	case *ast.ReturnStmt:
		if w.funcs == 0 {
			w.fail("'return' outside function", n.Pos)
			return false
		}

	case *ast.WhileStmt:
		ast.Inspect(n.Condition, w.visit)
		w.inLoop(n.Body)
		return false
	case *ast.ForStmt:
		ast.Inspect(n.Iterable, w.visit)
		w.inLoop(n.Body)
		return false

	case *ast.FunctionDecl:
		w.inFunction(n.Params, n.Body)
		return false
	case *ast.FunctionLiteral:
		w.inFunction(n.Params, n.Body, n.ExprBody)
		return false
	}
	return true
}

func (w *controlFlowWalker) inLoop(body *ast.Block) {
	w.loops++
	ast.Inspect(body, w.visit)
	w.loops--
}

func (w *controlFlowWalker) inFunction(params []*ast.Param, body ...ast.Node) {
	loops := w.loops
	w.loops = 0
	w.funcs++

	for _, param := range params {
		ast.Inspect(param, w.visit)
	}
	for _, b := range body {
		ast.Inspect(b, w.visit)
	}

	w.funcs--
	w.loops = loops
}
