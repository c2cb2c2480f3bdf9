package contractkit

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes. Validation failures are mapped from the JSON Schema keyword
// that failed; keywords without a dedicated code keep the keyword as code.
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeUnknownSchema = "unknown_schema"
)

var keywordCodes = map[string]string{
	"type":                  CodeInvalidType,
	"required":              CodeRequired,
	"additionalProperties":  CodeUnknownKey,
	"unevaluatedProperties": CodeUnknownKey,
	"minimum":               CodeTooSmall,
	"exclusiveMinimum":      CodeTooSmall,
	"minItems":              CodeTooSmall,
	"minProperties":         CodeTooSmall,
	"maximum":               CodeTooBig,
	"exclusiveMaximum":      CodeTooBig,
	"maxItems":              CodeTooBig,
	"maxProperties":         CodeTooBig,
	"minLength":             CodeTooShort,
	"maxLength":             CodeTooLong,
	"pattern":               CodePattern,
	"enum":                  CodeInvalidEnum,
	"const":                 CodeInvalidEnum,
	"format":                CodeInvalidFormat,
}

// Configuration and usage errors. Data errors are never returned as errors;
// they are reported as Issues inside a result value.
var (
	ErrNotFound         = errors.New("contractkit: not found")
	ErrExists           = errors.New("contractkit: already exists")
	ErrInvalidIdentity  = errors.New("contractkit: invalid identity")
	ErrIdentityMismatch = errors.New("contractkit: identity mismatch")
	ErrDuplicateID      = errors.New("contractkit: duplicate schema $id")
	ErrUnresolvedRef    = errors.New("contractkit: unresolved $ref")
	ErrDialectMismatch  = errors.New("contractkit: schema dialect mismatch")
	ErrAmbiguous        = errors.New("contractkit: ambiguous document")
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer into the instance; "/" is the root. Empty when not tied to a location.
	Code    string
	Keyword string // Keyword location inside the schema, e.g. /properties/a/minLength.
	Message string
}

// String renders the issue as "path: message".
func (it Issue) String() string {
	if it.Path == "" {
		return it.Message
	}
	return it.Path + ": " + it.Message
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Messages renders every issue with String.
func (iss Issues) Messages() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.String()
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func codeForKeyword(keyword string) string {
	if c, ok := keywordCodes[keyword]; ok {
		return c
	}
	return keyword
}
