package ast

type Expr interface {
	Node
	isExpr()
}

// Literal is the closed set of literal values: number, string, boolean, null.
type Literal interface {
	Expr
	isLiteral()
}

// MarkupChild is the content of a markup element: nested elements, raw text
// runs and embedded `{expr}` segments.
type MarkupChild interface {
	Node
	isMarkupChild()
}

type NumberLiteral struct {
	Pos       Position
	EndPos    Position
	Raw       string
	Value     float64
	IsInteger bool
}

type StringLiteral struct {
	Pos    Position
	EndPos Position
	Value  string
}

type BooleanLiteral struct {
	Pos    Position
	EndPos Position
	Value  bool
}

type NullLiteral struct {
	Pos    Position
	EndPos Position
}

type Identifier struct {
	Pos    Position
	EndPos Position
	Name   string
}

type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     BinaryOperator
	Left   Expr
	Right  Expr
}

type UnaryExpr struct {
	Pos     Position
	EndPos  Position
	Op      UnaryOperator
	Operand Expr
}

type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

type MemberExpr struct {
	Pos      Position
	EndPos   Position
	Object   Expr
	Property *Identifier
}

type IndexExpr struct {
	Pos    Position
	EndPos Position
	Object Expr
	Index  Expr
}

type ArrayLiteral struct {
	Pos      Position
	EndPos   Position
	Elements []Expr
}

type ObjectLiteral struct {
	Pos        Position
	EndPos     Position
	Properties []*Property
}

// Property is one `key: value` entry. Key is an Identifier, StringLiteral or
// NumberLiteral; Shorthand marks `{name}`.
type Property struct {
	Pos       Position
	EndPos    Position
	Key       Expr
	Value     Expr
	Shorthand bool
}

// FunctionLiteral is a `function (...) { ... }` expression or an arrow
// function. Exactly one of Body and ExprBody is set.
type FunctionLiteral struct {
	Pos      Position
	EndPos   Position
	Arrow    bool
	Name     *Identifier
	Params   []*Param
	Body     *Block
	ExprBody Expr
}

type AssignExpr struct {
	Pos    Position
	EndPos Position
	Op     AssignOperator
	Target Expr
	Value  Expr
}

type ConditionalExpr struct {
	Pos        Position
	EndPos     Position
	Condition  Expr
	Consequent Expr
	Alternate  Expr
}

// TemplateLiteral holds the text segments of a backtick string and the
// expressions between them; len(Quasis) == len(Exprs)+1.
type TemplateLiteral struct {
	Pos    Position
	EndPos Position
	Quasis []string
	Exprs  []Expr
}

type MarkupElement struct {
	Pos         Position
	EndPos      Position
	Tag         string
	Attributes  []*MarkupAttribute
	SelfClosing bool
	Children    []MarkupChild
}

// MarkupAttribute is `name`, `name="text"` or `name={expr}`. Value is nil
// for a bare boolean attribute.
type MarkupAttribute struct {
	Pos    Position
	EndPos Position
	Name   string
	Value  Expr
}

type MarkupText struct {
	Pos    Position
	EndPos Position
	Text   string
}

type MarkupExpr struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

func (*NumberLiteral) isExpr()   {}
func (*StringLiteral) isExpr()   {}
func (*BooleanLiteral) isExpr()  {}
func (*NullLiteral) isExpr()     {}
func (*Identifier) isExpr()      {}
func (*BinaryExpr) isExpr()      {}
func (*UnaryExpr) isExpr()       {}
func (*CallExpr) isExpr()        {}
func (*MemberExpr) isExpr()      {}
func (*IndexExpr) isExpr()       {}
func (*ArrayLiteral) isExpr()    {}
func (*ObjectLiteral) isExpr()   {}
func (*FunctionLiteral) isExpr() {}
func (*AssignExpr) isExpr()      {}
func (*ConditionalExpr) isExpr() {}
func (*TemplateLiteral) isExpr() {}
func (*MarkupElement) isExpr()   {}

func (*NumberLiteral) isLiteral()  {}
func (*StringLiteral) isLiteral()  {}
func (*BooleanLiteral) isLiteral() {}
func (*NullLiteral) isLiteral()    {}

func (*MarkupElement) isMarkupChild() {}
func (*MarkupText) isMarkupChild()    {}
func (*MarkupExpr) isMarkupChild()    {}
