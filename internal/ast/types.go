package ast

import (
	"fmt"

	"nac/token"
)

// Position is the source location shared with the token package.
type Position = token.Position

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// Roots
	PROGRAM
	BLOCK

	// Statements
	LET_STMT
	EXPR_STMT
	RETURN_STMT
	IF_STMT
	ELIF_CLAUSE
	WHILE_STMT
	FOR_STMT
	FUNCTION_DECL
	PARAM
	CLASS_DECL
	MATCH_STMT
	MATCH_ARM
	IMPORT_STMT
	IMPORT_SPEC
	EXPORT_DECL
	EXPORT_DEFAULT
	EXPORT_NAMED
	BREAK_STMT
	CONTINUE_STMT
	PASS_STMT
	TRY_STMT
	EXCEPT_CLAUSE
	WITH_STMT

	// Literals
	NUMBER_LITERAL
	STRING_LITERAL
	BOOLEAN_LITERAL
	NULL_LITERAL

	// Expressions
	IDENTIFIER
	BINARY_EXPR
	UNARY_EXPR
	CALL_EXPR
	MEMBER_EXPR
	INDEX_EXPR
	ARRAY_LITERAL
	OBJECT_LITERAL
	PROPERTY
	FUNCTION_LITERAL
	ASSIGN_EXPR
	CONDITIONAL_EXPR
	TEMPLATE_LITERAL

	// Markup
	MARKUP_ELEMENT
	MARKUP_ATTRIBUTE
	MARKUP_TEXT
	MARKUP_EXPR

	// Patterns
	LITERAL_PATTERN
	IDENTIFIER_PATTERN
	WILDCARD_PATTERN
)

var nodeTypeNames = [...]string{
	ILLEGAL:            "Illegal",
	PROGRAM:            "Program",
	BLOCK:              "Block",
	LET_STMT:           "Let",
	EXPR_STMT:          "Expression",
	RETURN_STMT:        "Return",
	IF_STMT:            "If",
	ELIF_CLAUSE:        "Elif",
	WHILE_STMT:         "While",
	FOR_STMT:           "For",
	FUNCTION_DECL:      "Function",
	PARAM:              "Param",
	CLASS_DECL:         "Class",
	MATCH_STMT:         "Match",
	MATCH_ARM:          "Arm",
	IMPORT_STMT:        "Import",
	IMPORT_SPEC:        "ImportSpec",
	EXPORT_DECL:        "ExportDecl",
	EXPORT_DEFAULT:     "ExportDefault",
	EXPORT_NAMED:       "ExportNamed",
	BREAK_STMT:         "Break",
	CONTINUE_STMT:      "Continue",
	PASS_STMT:          "Pass",
	TRY_STMT:           "Try",
	EXCEPT_CLAUSE:      "Except",
	WITH_STMT:          "With",
	NUMBER_LITERAL:     "Number",
	STRING_LITERAL:     "String",
	BOOLEAN_LITERAL:    "Boolean",
	NULL_LITERAL:       "Null",
	IDENTIFIER:         "Identifier",
	BINARY_EXPR:        "Binary",
	UNARY_EXPR:         "Unary",
	CALL_EXPR:          "Call",
	MEMBER_EXPR:        "Member",
	INDEX_EXPR:         "Index",
	ARRAY_LITERAL:      "Array",
	OBJECT_LITERAL:     "Object",
	PROPERTY:           "Property",
	FUNCTION_LITERAL:   "FunctionLiteral",
	ASSIGN_EXPR:        "Assign",
	CONDITIONAL_EXPR:   "Conditional",
	TEMPLATE_LITERAL:   "Template",
	MARKUP_ELEMENT:     "Element",
	MARKUP_ATTRIBUTE:   "Attribute",
	MARKUP_TEXT:        "Text",
	MARKUP_EXPR:        "Embed",
	LITERAL_PATTERN:    "LiteralPattern",
	IDENTIFIER_PATTERN: "BindPattern",
	WILDCARD_PATTERN:   "Wildcard",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) && nodeTypeNames[t] != "" {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}
