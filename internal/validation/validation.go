// Package validation checks user-supplied content fields. Each field kind has
// a fixed rule in the rules table; callers name the field explicitly.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/go-playground/validator/v10"
)

// Field identifies a validated input field
type Field string

const (
	FieldTitle   Field = "title"
	FieldBody    Field = "body"
	FieldComment Field = "comment"
)

// Code is a machine-readable failure reason; the presentation layer turns it
// into user-facing text
type Code string

const (
	CodeEmpty   Code = "empty"
	CodeTooLong Code = "too_long"
)

type rule struct {
	tag  string
	code Code
}

// rules is the dispatch table: every field has an ordered list of checks and
// the first failing check decides the code
var rules = map[Field][]rule{
	FieldTitle: {
		{tag: "required", code: CodeEmpty},
		{tag: "max=255", code: CodeTooLong},
	},
	FieldBody: {
		{tag: "required", code: CodeEmpty},
		{tag: "max=255", code: CodeTooLong},
	},
	FieldComment: {
		{tag: "required", code: CodeEmpty},
		{tag: "max=255", code: CodeTooLong},
	},
}

var validate = validator.New()

// FieldError reports one failing field. It matches common.ErrInvalidInput.
type FieldError struct {
	Field Field
	Code  Code
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Code)
}

func (e *FieldError) Unwrap() error {
	return common.ErrInvalidInput
}

// Check validates value against the rules of field. Whitespace-only values
// count as empty.
func Check(field Field, value string) error {
	checks, ok := rules[field]
	if !ok {
		return fmt.Errorf("%w: unknown field %q", common.ErrInvalidInput, field)
	}

	trimmed := strings.TrimSpace(value)
	for _, c := range checks {
		subject := value
		if c.code == CodeEmpty {
			subject = trimmed
		}
		if err := validate.Var(subject, c.tag); err != nil {
			return &FieldError{Field: field, Code: c.code}
		}
	}
	return nil
}

// Value pairs a field with its submitted value
type Value struct {
	Field Field
	Value string
}

// CheckAll validates every value and joins the failures
func CheckAll(values ...Value) error {
	var errs []error
	for _, v := range values {
		if err := Check(v.Field, v.Value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// MessageKey is the translation key of the failure, e.g. validation.title.empty
func (e *FieldError) MessageKey() string {
	return "validation." + string(e.Field) + "." + string(e.Code)
}

// Fields returns every FieldError in err, including those joined by CheckAll
func Fields(err error) []*FieldError {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*FieldError); ok {
		return []*FieldError{fe}
	}

	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		var out []*FieldError
		for _, e := range u.Unwrap() {
			out = append(out, Fields(e)...)
		}
		return out
	case interface{ Unwrap() error }:
		return Fields(u.Unwrap())
	}
	return nil
}
