package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders n as a position-free constructor form such as
// `Binary(Add, Literal(1), Literal(2))`. Two trees are structurally equal
// exactly when their dumps are equal.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n)
	return b.String()
}

func dumpList[T Node](b *strings.Builder, nodes []T) {
	b.WriteString("[")
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(", ")
		}
		dump(b, n)
	}
	b.WriteString("]")
}

func dumpOptional(b *strings.Builder, n Node) {
	if isNil(n) {
		b.WriteString("_")
		return
	}
	dump(b, n)
}

// isNil catches typed nil pointers stored in interfaces.
func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Identifier:
		return n == nil
	case *Block:
		return n == nil
	case *StringLiteral:
		return n == nil
	}
	return false
}

func node(b *strings.Builder, name string, fields ...func()) {
	b.WriteString(name)
	b.WriteString("(")
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		f()
	}
	b.WriteString(")")
}

func dump(b *strings.Builder, n Node) {
	text := func(s string) func() { return func() { b.WriteString(s) } }
	child := func(c Node) func() { return func() { dumpOptional(b, c) } }

	switch n := n.(type) {
	case *Program:
		node(b, "Program", func() { dumpList(b, n.Statements) })
	case *Block:
		dumpList(b, n.Statements)
	case *LetStmt:
		name := "Let"
		if n.Const {
			name = "Const"
		}
		node(b, name, text(n.Name.Name), child(n.Value))
	case *ExprStmt:
		node(b, "Expression", child(n.Expr))
	case *ReturnStmt:
		node(b, "Return", child(n.Value))
	case *IfStmt:
		node(b, "If", child(n.Condition), child(n.Body), func() { dumpList(b, n.Elifs) }, child(n.Else))
	case *ElifClause:
		node(b, "Elif", child(n.Condition), child(n.Body))
	case *WhileStmt:
		node(b, "While", child(n.Condition), child(n.Body))
	case *ForStmt:
		node(b, "For", func() { dumpList(b, n.Targets) }, child(n.Iterable), child(n.Body))
	case *FunctionDecl:
		name := "Def"
		if n.Async {
			name = "AsyncDef"
		}
		node(b, name, text(n.Name.Name), func() { dumpList(b, n.Params) }, child(n.Body))
	case *Param:
		node(b, "Param", text(n.Name.Name), child(n.Default))
	case *ClassDecl:
		node(b, "Class", text(n.Name.Name), child(n.Superclass), child(n.Body))
	case *MatchStmt:
		node(b, "Match", child(n.Subject), func() { dumpList(b, n.Arms) })
	case *MatchArm:
		node(b, "Arm", child(n.Pattern), child(n.Body))
	case *ImportStmt:
		node(b, "Import", child(n.Default), child(n.Namespace), func() { dumpList(b, n.Specs) }, child(n.Source))
	case *ImportSpec:
		node(b, "Spec", child(n.Name), child(n.Alias))
	case *ExportDecl:
		node(b, "ExportDecl", child(n.Decl))
	case *ExportDefault:
		node(b, "ExportDefault", child(n.Value))
	case *ExportNamed:
		node(b, "ExportNamed", func() { dumpList(b, n.Specs) }, child(n.Source))
	case *BreakStmt:
		b.WriteString("Break")
	case *ContinueStmt:
		b.WriteString("Continue")
	case *PassStmt:
		b.WriteString("Pass")
	case *TryStmt:
		node(b, "Try", child(n.Body), func() { dumpList(b, n.Handlers) }, child(n.Finally))
	case *ExceptClause:
		node(b, "Except", child(n.Type), child(n.Name), child(n.Body))
	case *WithStmt:
		node(b, "With", child(n.Context), child(n.Name), child(n.Body))
	case *NumberLiteral:
		node(b, "Literal", text(n.Raw))
	case *StringLiteral:
		node(b, "Literal", text(strconv.Quote(n.Value)))
	case *BooleanLiteral:
		node(b, "Literal", text(strconv.FormatBool(n.Value)))
	case *NullLiteral:
		node(b, "Literal", text("null"))
	case *Identifier:
		node(b, "Identifier", text(n.Name))
	case *BinaryExpr:
		node(b, "Binary", text(n.Op.Name()), child(n.Left), child(n.Right))
	case *UnaryExpr:
		node(b, "Unary", text(n.Op.Name()), child(n.Operand))
	case *CallExpr:
		node(b, "Call", child(n.Callee), func() { dumpList(b, n.Args) })
	case *MemberExpr:
		node(b, "Member", child(n.Object), text(n.Property.Name))
	case *IndexExpr:
		node(b, "Index", child(n.Object), child(n.Index))
	case *ArrayLiteral:
		node(b, "Array", func() { dumpList(b, n.Elements) })
	case *ObjectLiteral:
		node(b, "Object", func() { dumpList(b, n.Properties) })
	case *Property:
		node(b, "Property", child(n.Key), child(n.Value))
	case *FunctionLiteral:
		name := "Function"
		if n.Arrow {
			name = "Arrow"
		}
		body := child(n.Body)
		if n.Body == nil {
			body = child(n.ExprBody)
		}
		node(b, name, child(n.Name), func() { dumpList(b, n.Params) }, body)
	case *AssignExpr:
		node(b, "Assign", text(n.Op.String()), child(n.Target), child(n.Value))
	case *ConditionalExpr:
		node(b, "Conditional", child(n.Condition), child(n.Consequent), child(n.Alternate))
	case *TemplateLiteral:
		node(b, "Template", func() {
			quoted := make([]string, len(n.Quasis))
			for i, q := range n.Quasis {
				quoted[i] = strconv.Quote(q)
			}
			b.WriteString("[" + strings.Join(quoted, ", ") + "]")
		}, func() { dumpList(b, n.Exprs) })
	case *MarkupElement:
		node(b, "Element", text(n.Tag), func() { dumpList(b, n.Attributes) },
			text(strconv.FormatBool(n.SelfClosing)), func() { dumpList(b, n.Children) })
	case *MarkupAttribute:
		node(b, "Attribute", text(n.Name), child(n.Value))
	case *MarkupText:
		node(b, "Text", text(strconv.Quote(n.Text)))
	case *MarkupExpr:
		node(b, "Embed", child(n.Expr))
	case *LiteralPattern:
		node(b, "LiteralPattern", child(n.Value))
	case *IdentifierPattern:
		node(b, "Bind", text(n.Name))
	case *WildcardPattern:
		b.WriteString("Wildcard")
	default:
		b.WriteString(fmt.Sprintf("<%T>", n))
	}
}
