package errors

// Error codes for the nac front end.
// These codes are used in diagnostics and documentation to provide
// consistent error identification across the CLI and language server.
//
// Error code ranges:
// E0100-E0199: Parser and scanner errors
// E0200-E0299: Post-parse validation errors
// E0900-E0999: Tooling errors

const (
	// E0100: Token with no valid production in the current context
	ErrorUnexpectedToken = "E0100"

	// E0101: Input ended in the middle of a construct
	ErrorUnexpectedEOF = "E0101"

	// E0102: Malformed numeric literal
	ErrorInvalidNumber = "E0102"

	// E0103: Malformed string literal
	ErrorInvalidString = "E0103"

	// E0104: String not closed before end of line or file
	ErrorUnterminatedString = "E0104"

	// E0105: Character the scanner cannot classify
	ErrorInvalidCharacter = "E0105"

	// E0106: A specific token was required
	ErrorExpected = "E0106"

	// E0107: Catch-all grammar violation (indentation, assignment targets, ...)
	ErrorSyntax = "E0107"

	// E0200: Statement not allowed in its enclosing context
	ErrorMisplacedStatement = "E0200"

	// E0900: Source exceeds the configured size limit
	ErrorSourceTooLarge = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedToken:
		return "Token is not valid at this point of the program"
	case ErrorUnexpectedEOF:
		return "Input ends before the construct is complete"
	case ErrorInvalidNumber:
		return "Numeric literal is malformed"
	case ErrorInvalidString:
		return "String literal contains a malformed escape"
	case ErrorUnterminatedString:
		return "String literal is not closed before the end of the line"
	case ErrorInvalidCharacter:
		return "Character cannot start any token"
	case ErrorExpected:
		return "A specific token was required here"
	case ErrorSyntax:
		return "Syntax error"
	case ErrorMisplacedStatement:
		return "Statement is not allowed in this context"
	case ErrorSourceTooLarge:
		return "Source file exceeds the configured size limit"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Validation"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
