package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies the category of a validation violation.
type Code string

const (
	CodeEmptyField            Code = "empty_field"
	CodeEmptyCollection       Code = "empty_collection"
	CodeInvalidFormat         Code = "invalid_format"
	CodeInvalidEnumValue      Code = "invalid_enum_value"
	CodeInconsistentPriority  Code = "inconsistent_priority"
	CodeDiscriminatorMismatch Code = "discriminator_mismatch"
)

// Violation describes a single failed check on one field.
type Violation struct {
	Field   string   `json:"field"`
	Code    Code     `json:"code"`
	Value   string   `json:"value,omitempty"`
	Allowed []string `json:"allowed,omitempty"`
}

func (v Violation) String() string {
	switch {
	case v.Value != "" && len(v.Allowed) > 0:
		return fmt.Sprintf("%s: %s (got %q, allowed %s)", v.Field, v.Code, v.Value, strings.Join(v.Allowed, ", "))
	case v.Value != "":
		return fmt.Sprintf("%s: %s (got %q)", v.Field, v.Code, v.Value)
	default:
		return fmt.Sprintf("%s: %s", v.Field, v.Code)
	}
}

// EmptyField reports a required string field that is blank.
func EmptyField(field string) Violation {
	return Violation{Field: field, Code: CodeEmptyField}
}

// EmptyCollection reports a required collection field with zero elements.
func EmptyCollection(field string) Violation {
	return Violation{Field: field, Code: CodeEmptyCollection}
}

// InvalidFormat reports a value that fails a shape check.
func InvalidFormat(field, value string) Violation {
	return Violation{Field: field, Code: CodeInvalidFormat, Value: value}
}

// InvalidEnumValue reports a value outside a closed enumeration.
func InvalidEnumValue(field, value string, allowed []string) Violation {
	return Violation{Field: field, Code: CodeInvalidEnumValue, Value: value, Allowed: allowed}
}

// InconsistentPriority reports a priority that contradicts the lead variant.
func InconsistentPriority(value string, allowed []string) Violation {
	return Violation{Field: "priority", Code: CodeInconsistentPriority, Value: value, Allowed: allowed}
}

// DiscriminatorMismatch reports a caller-supplied type that disagrees with
// the variant being constructed.
func DiscriminatorMismatch(offered, expected string) Violation {
	return Violation{Field: "type", Code: CodeDiscriminatorMismatch, Value: offered, Allowed: []string{expected}}
}

// ValidationError aggregates every violation found during one construction
// attempt so the caller can correct all of them in a single round trip.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "lead validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the aggregate contains a violation with the given
// field and code.
func (e *ValidationError) Has(field string, code Code) bool {
	for _, v := range e.Violations {
		if v.Field == field && v.Code == code {
			return true
		}
	}
	return false
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
