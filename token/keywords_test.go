package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpensBlock(t *testing.T) {
	for _, tt := range []TokenType{DEF, FUNCTION, CLASS, IF, ELIF, ELSE, FOR, WHILE, TRY, EXCEPT, FINALLY, WITH, ASYNC, MATCH} {
		assert.True(t, OpensBlock(tt), tt.String())
	}
	for _, tt := range []TokenType{LET, CONST, RETURN, IMPORT, IDENTIFIER, COLON} {
		assert.False(t, OpensBlock(tt), tt.String())
	}
}
