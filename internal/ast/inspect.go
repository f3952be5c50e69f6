package ast

// Inspect traverses the tree rooted at n in depth-first order, calling fn for
// each node before its children. If fn returns false the children of that
// node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if isNil(n) || !fn(n) {
		return
	}

	walk := func(c Node) { Inspect(c, fn) }

	switch n := n.(type) {
	case *Program:
		for _, s := range n.Statements {
			walk(s)
		}
	case *Block:
		for _, s := range n.Statements {
			walk(s)
		}
	case *LetStmt:
		walk(n.Name)
		walk(n.Value)
	case *ExprStmt:
		walk(n.Expr)
	case *ReturnStmt:
		walk(n.Value)
	case *IfStmt:
		walk(n.Condition)
		walk(n.Body)
		for _, e := range n.Elifs {
			walk(e)
		}
		walk(n.Else)
	case *ElifClause:
		walk(n.Condition)
		walk(n.Body)
	case *WhileStmt:
		walk(n.Condition)
		walk(n.Body)
	case *ForStmt:
		for _, t := range n.Targets {
			walk(t)
		}
		walk(n.Iterable)
		walk(n.Body)
	case *FunctionDecl:
		walk(n.Name)
		for _, p := range n.Params {
			walk(p)
		}
		walk(n.Body)
	case *Param:
		walk(n.Name)
		walk(n.Default)
	case *ClassDecl:
		walk(n.Name)
		walk(n.Superclass)
		walk(n.Body)
	case *MatchStmt:
		walk(n.Subject)
		for _, a := range n.Arms {
			walk(a)
		}
	case *MatchArm:
		walk(n.Pattern)
		walk(n.Body)
	case *ImportStmt:
		walk(n.Default)
		walk(n.Namespace)
		for _, s := range n.Specs {
			walk(s)
		}
		walk(n.Source)
	case *ImportSpec:
		walk(n.Name)
		walk(n.Alias)
	case *ExportDecl:
		walk(n.Decl)
	case *ExportDefault:
		walk(n.Value)
	case *ExportNamed:
		for _, s := range n.Specs {
			walk(s)
		}
		walk(n.Source)
	case *TryStmt:
		walk(n.Body)
		for _, h := range n.Handlers {
			walk(h)
		}
		walk(n.Finally)
	case *ExceptClause:
		walk(n.Type)
		walk(n.Name)
		walk(n.Body)
	case *WithStmt:
		walk(n.Context)
		walk(n.Name)
		walk(n.Body)
	case *BinaryExpr:
		walk(n.Left)
		walk(n.Right)
	case *UnaryExpr:
		walk(n.Operand)
	case *CallExpr:
		walk(n.Callee)
		for _, a := range n.Args {
			walk(a)
		}
	case *MemberExpr:
		walk(n.Object)
		walk(n.Property)
	case *IndexExpr:
		walk(n.Object)
		walk(n.Index)
	case *ArrayLiteral:
		for _, e := range n.Elements {
			walk(e)
		}
	case *ObjectLiteral:
		for _, p := range n.Properties {
			walk(p)
		}
	case *Property:
		walk(n.Key)
		if !n.Shorthand {
			walk(n.Value)
		}
	case *FunctionLiteral:
		walk(n.Name)
		for _, p := range n.Params {
			walk(p)
		}
		walk(n.Body)
		walk(n.ExprBody)
	case *AssignExpr:
		walk(n.Target)
		walk(n.Value)
	case *ConditionalExpr:
		walk(n.Condition)
		walk(n.Consequent)
		walk(n.Alternate)
	case *TemplateLiteral:
		for _, e := range n.Exprs {
			walk(e)
		}
	case *MarkupElement:
		for _, a := range n.Attributes {
			walk(a)
		}
		for _, c := range n.Children {
			walk(c)
		}
	case *MarkupAttribute:
		walk(n.Value)
	case *MarkupExpr:
		walk(n.Expr)
	case *LiteralPattern:
		walk(n.Value)
	case *BreakStmt, *ContinueStmt, *PassStmt, *NumberLiteral, *StringLiteral,
		*BooleanLiteral, *NullLiteral, *Identifier, *MarkupText,
		*IdentifierPattern, *WildcardPattern:
		// leaves
	}
}
