package ast

// Program is the root of every parse: the top-level statements in source order.
type Program struct {
	Pos        Position
	EndPos     Position
	Statements []Stmt
}

// Block is the body of an indented suite or a braced function literal.
type Block struct {
	Pos        Position
	EndPos     Position
	Statements []Stmt
}

// LetStmt is a `let` or `const` binding. Value is nil for a bare `let x`.
type LetStmt struct {
	Pos    Position
	EndPos Position
	Const  bool
	Name   *Identifier
	Value  Expr
}

type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil for a bare return
}

type IfStmt struct {
	Pos       Position
	EndPos    Position
	Condition Expr
	Body      *Block
	Elifs     []*ElifClause
	Else      *Block
}

type ElifClause struct {
	Pos       Position
	EndPos    Position
	Condition Expr
	Body      *Block
}

type WhileStmt struct {
	Pos       Position
	EndPos    Position
	Condition Expr
	Body      *Block
}

// ForStmt iterates `for a, b in iterable:`.
type ForStmt struct {
	Pos      Position
	EndPos   Position
	Targets  []*Identifier
	Iterable Expr
	Body     *Block
}

// FunctionDecl covers `def` and `function` declarations, optionally `async`.
type FunctionDecl struct {
	Pos     Position
	EndPos  Position
	Keyword string // "def" or "function"
	Async   bool
	Name    *Identifier
	Params  []*Param
	Body    *Block
}

type Param struct {
	Pos     Position
	EndPos  Position
	Name    *Identifier
	Default Expr
}

type ClassDecl struct {
	Pos        Position
	EndPos     Position
	Name       *Identifier
	Superclass Expr
	Body       *Block
}

type MatchStmt struct {
	Pos     Position
	EndPos  Position
	Subject Expr
	Arms    []*MatchArm
}

type MatchArm struct {
	Pos     Position
	EndPos  Position
	Pattern Pattern
	Body    *Block
}

// ImportStmt covers every import spelling:
//
//	import x from "m"
//	import { a, b as c } from "m"
//	import * as ns from "m"
//	import "m"
//	from "m" import a, b as c
type ImportStmt struct {
	Pos       Position
	EndPos    Position
	Default   *Identifier
	Namespace *Identifier
	Specs     []*ImportSpec
	Source    *StringLiteral
	FromFirst bool // written as `from "m" import ...`
}

// ImportSpec is one `name [as alias]` entry of an import or export list.
type ImportSpec struct {
	Pos    Position
	EndPos Position
	Name   *Identifier
	Alias  *Identifier
}

// ExportDecl is `export` in front of a let, const, function or class declaration.
type ExportDecl struct {
	Pos    Position
	EndPos Position
	Decl   Stmt
}

type ExportDefault struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// ExportNamed is `export { a, b as c }` with an optional re-export source.
type ExportNamed struct {
	Pos    Position
	EndPos Position
	Specs  []*ImportSpec
	Source *StringLiteral
}

type BreakStmt struct {
	Pos    Position
	EndPos Position
}

type ContinueStmt struct {
	Pos    Position
	EndPos Position
}

type PassStmt struct {
	Pos    Position
	EndPos Position
}

type TryStmt struct {
	Pos      Position
	EndPos   Position
	Body     *Block
	Handlers []*ExceptClause
	Finally  *Block
}

type ExceptClause struct {
	Pos    Position
	EndPos Position
	Type   *Identifier
	Name   *Identifier
	Body   *Block
}

type WithStmt struct {
	Pos     Position
	EndPos  Position
	Context Expr
	Name    *Identifier
	Body    *Block
}
