package ast

import "fmt"

type BinaryOperator int

const (
	ILLEGAL_BINARY BinaryOperator = iota
	Add
	Subtract
	Multiply
	Divide
	Modulo
	Power
	Equal
	NotEqual
	StrictEqual
	StrictNotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	ShiftLeft
	ShiftRight
	BitAnd
	BitOr
	BitXor
	LogicalAnd
	LogicalOr
)

var binaryOperators = [...]struct{ name, symbol string }{
	ILLEGAL_BINARY: {"Illegal", "?"},
	Add:            {"Add", "+"},
	Subtract:       {"Subtract", "-"},
	Multiply:       {"Multiply", "*"},
	Divide:         {"Divide", "/"},
	Modulo:         {"Modulo", "%"},
	Power:          {"Power", "**"},
	Equal:          {"Equal", "=="},
	NotEqual:       {"NotEqual", "!="},
	StrictEqual:    {"StrictEqual", "==="},
	StrictNotEqual: {"StrictNotEqual", "!=="},
	Less:           {"Less", "<"},
	LessEqual:      {"LessEqual", "<="},
	Greater:        {"Greater", ">"},
	GreaterEqual:   {"GreaterEqual", ">="},
	ShiftLeft:      {"ShiftLeft", "<<"},
	ShiftRight:     {"ShiftRight", ">>"},
	BitAnd:         {"BitAnd", "&"},
	BitOr:          {"BitOr", "|"},
	BitXor:         {"BitXor", "^"},
	LogicalAnd:     {"LogicalAnd", "&&"},
	LogicalOr:      {"LogicalOr", "||"},
}

// Name returns the operator's descriptive name, e.g. "Add".
func (op BinaryOperator) Name() string {
	if op >= 0 && int(op) < len(binaryOperators) {
		return binaryOperators[op].name
	}
	return fmt.Sprintf("BinaryOperator(%d)", int(op))
}

// String returns the operator's source spelling, e.g. "+".
func (op BinaryOperator) String() string {
	if op >= 0 && int(op) < len(binaryOperators) {
		return binaryOperators[op].symbol
	}
	return fmt.Sprintf("BinaryOperator(%d)", int(op))
}

type UnaryOperator int

const (
	ILLEGAL_UNARY UnaryOperator = iota
	Negate
	UnaryPlus
	Not
	BitNot
)

var unaryOperators = [...]struct{ name, symbol string }{
	ILLEGAL_UNARY: {"Illegal", "?"},
	Negate:        {"Negate", "-"},
	UnaryPlus:     {"Plus", "+"},
	Not:           {"Not", "!"},
	BitNot:        {"BitNot", "~"},
}

func (op UnaryOperator) Name() string {
	if op >= 0 && int(op) < len(unaryOperators) {
		return unaryOperators[op].name
	}
	return fmt.Sprintf("UnaryOperator(%d)", int(op))
}

func (op UnaryOperator) String() string {
	if op >= 0 && int(op) < len(unaryOperators) {
		return unaryOperators[op].symbol
	}
	return fmt.Sprintf("UnaryOperator(%d)", int(op))
}

type AssignOperator int

const (
	// Special / error
	ILLEGAL_ASSIGN AssignOperator = iota
	ASSIGN
	PLUS_ASSIGN
	MINUS_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
	POWER_ASSIGN
)

var assignOperators = [...]string{
	ILLEGAL_ASSIGN: "?=",
	ASSIGN:         "=",
	PLUS_ASSIGN:    "+=",
	MINUS_ASSIGN:   "-=",
	STAR_ASSIGN:    "*=",
	SLASH_ASSIGN:   "/=",
	PERCENT_ASSIGN: "%=",
	POWER_ASSIGN:   "**=",
}

func (op AssignOperator) String() string {
	if op >= 0 && int(op) < len(assignOperators) {
		return assignOperators[op]
	}
	return fmt.Sprintf("AssignOperator(%d)", int(op))
}

// Compound returns the binary operator a compound assignment applies, or
// ILLEGAL_BINARY for plain '='.
func (op AssignOperator) Compound() BinaryOperator {
	switch op {
	case PLUS_ASSIGN:
		return Add
	case MINUS_ASSIGN:
		return Subtract
	case STAR_ASSIGN:
		return Multiply
	case SLASH_ASSIGN:
		return Divide
	case PERCENT_ASSIGN:
		return Modulo
	case POWER_ASSIGN:
		return Power
	default:
		return ILLEGAL_BINARY
	}
}
