package ast

// Pattern appears only on the left of a match arm.
type Pattern interface {
	Node
	isPattern()
}

type LiteralPattern struct {
	Pos    Position
	EndPos Position
	Value  Literal
}

// IdentifierPattern binds the matched value to Name.
type IdentifierPattern struct {
	Pos    Position
	EndPos Position
	Name   string
}

// WildcardPattern is `_`.
type WildcardPattern struct {
	Pos    Position
	EndPos Position
}

func (*LiteralPattern) isPattern()    {}
func (*IdentifierPattern) isPattern() {}
func (*WildcardPattern) isPattern()   {}
