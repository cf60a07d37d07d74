package opds

import "fmt"

// Error codes raised while parsing a document.
const (
	CodeMissingField   = "missing_required_field"
	CodeShapeMismatch  = "shape_mismatch"
	CodeInvalidEnum    = "invalid_enum_value"
	CodeInvalidLangTag = "invalid_language_tag"
	CodeInvalidIdent   = "invalid_identifier"
	CodeRecursionLimit = "recursion_limit"
	CodeMalformedInput = "malformed_input"
)

// DecodeError represents a parse failure at a specific location in the
// document. Path is a dotted field path with list indexes, e.g.
// "publications[2].metadata.title".
type DecodeError struct {
	Path    string
	Code    string
	Message string
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

func errMissingField(path string) error {
	return &DecodeError{
		Path:    path,
		Code:    CodeMissingField,
		Message: "missing required field",
	}
}

func errShape(path string, expected string, v any) error {
	return &DecodeError{
		Path:    path,
		Code:    CodeShapeMismatch,
		Message: fmt.Sprintf("expected %s, got %s", expected, kindOf(v)),
	}
}

func errEnum(path string, value string) error {
	return &DecodeError{
		Path:    path,
		Code:    CodeInvalidEnum,
		Message: fmt.Sprintf("invalid value %q", value),
	}
}

func errLangTag(path string, value string) error {
	return &DecodeError{
		Path:    path,
		Code:    CodeInvalidLangTag,
		Message: fmt.Sprintf("invalid language tag %q", value),
	}
}

func errIdentifier(path string, value string, cause error) error {
	return &DecodeError{
		Path:    path,
		Code:    CodeInvalidIdent,
		Message: fmt.Sprintf("invalid identifier %q: %v", value, cause),
	}
}

func errRecursionLimit(path string, depth int) error {
	return &DecodeError{
		Path:    path,
		Code:    CodeRecursionLimit,
		Message: fmt.Sprintf("nesting exceeds limit of %d levels", depth),
	}
}
