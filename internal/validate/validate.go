package validate

import (
	"errors"
	"strings"
)

// Violation codes.
const (
	CodeRequired    = "required"
	CodeInvalidType = "invalid_type"
	CodeTooSmall    = "too_small"
	CodeInvalidEnum = "invalid_enum_value"
	CodeOutOfRange  = "out_of_range"
	CodeInvalidRef  = "invalid_reference"
)

type ErrField struct {
	Field string `json:"field"`
	Code  string `json:"code"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		if ef.Field == "" {
			b.WriteString(ef.Msg)
			continue
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Has reports whether any violation is addressed to field.
func (e Errs) Has(field string) bool {
	for _, ef := range e {
		if ef.Field == field {
			return true
		}
	}
	return false
}

// As unwraps err into Errs when it carries field violations.
func As(err error) (Errs, bool) {
	var errs Errs
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Code: CodeRequired, Msg: "required"}
	}
	return nil
}

// Collect drops nil results and returns nil when nothing failed.
func Collect(fields ...*ErrField) error {
	var out Errs
	for _, f := range fields {
		if f != nil {
			out = append(out, *f)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
