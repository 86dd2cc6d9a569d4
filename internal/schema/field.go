// Package schema declares the persisted entity contracts (users, projects)
// and the request shapes derived from them.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/baharkarakas/sitecraft-backend/internal/validate"
)

type Kind int

const (
	Integer Kind = iota + 1
	Text
	Boolean
	Timestamp
	JSON
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Text:
		return "string"
	case Boolean:
		return "boolean"
	case Timestamp:
		return "date"
	case JSON:
		return "object"
	}
	return "unknown"
}

// SQLType is the postgres column type for k.
func (k Kind) SQLType() string {
	switch k {
	case Integer:
		return "integer"
	case Text:
		return "text"
	case Boolean:
		return "boolean"
	case Timestamp:
		return "timestamp"
	case JSON:
		return "jsonb"
	}
	return ""
}

type Reference struct {
	Table  string
	Column string
}

// Field describes one attribute: its column shape for storage and the
// predicates a request value must satisfy. Column is empty for fields of
// request-only shapes.
type Field struct {
	Name       string
	Column     string
	Kind       Kind
	NotNull    bool
	Unique     bool
	PrimaryKey bool
	Serial     bool
	References *Reference
	Default    any
	DefaultNow bool

	MinLen  int
	Enum    []string
	Message string // overrides the MinLen message
}

// Generated reports whether storage always supplies the value.
func (f Field) Generated() bool { return f.Serial || f.DefaultNow }

func (f Field) columnDef() string {
	parts := []string{f.Column}
	if f.Serial {
		parts = append(parts, "serial")
	} else {
		parts = append(parts, f.Kind.SQLType())
	}
	switch {
	case f.PrimaryKey:
		parts = append(parts, "PRIMARY KEY")
	case f.NotNull:
		parts = append(parts, "NOT NULL")
	}
	if f.Unique {
		parts = append(parts, "UNIQUE")
	}
	if f.DefaultNow {
		parts = append(parts, "DEFAULT now()")
	} else if f.Default != nil {
		parts = append(parts, "DEFAULT "+sqlLiteral(f.Default))
	}
	if f.References != nil {
		parts = append(parts, fmt.Sprintf("REFERENCES %s (%s)", f.References.Table, f.References.Column))
	}
	return strings.Join(parts, " ")
}

func sqlLiteral(v any) string {
	switch x := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case bool:
		return strconv.FormatBool(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int:
		return strconv.Itoa(x)
	}
	return fmt.Sprint(v)
}

func (f Field) check(raw any) (any, *validate.ErrField) {
	switch f.Kind {
	case Integer:
		return f.checkInteger(raw)
	case Text:
		s, ok := raw.(string)
		if !ok {
			return nil, f.invalidType(raw)
		}
		if f.MinLen > 0 && textLen(s) < f.MinLen {
			msg := f.Message
			if msg == "" {
				msg = fmt.Sprintf("String must contain at least %d character(s)", f.MinLen)
			}
			return nil, &validate.ErrField{Field: f.Name, Code: validate.CodeTooSmall, Msg: msg}
		}
		if len(f.Enum) > 0 && !slices.Contains(f.Enum, s) {
			return nil, &validate.ErrField{
				Field: f.Name,
				Code:  validate.CodeInvalidEnum,
				Msg:   fmt.Sprintf("Invalid enum value. Expected %s, received '%s'", quoteList(f.Enum), s),
			}
		}
		return s, nil
	case Boolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, f.invalidType(raw)
		}
		return b, nil
	case Timestamp:
		switch t := raw.(type) {
		case time.Time:
			return t, nil
		case string:
			parsed, err := time.Parse(time.RFC3339Nano, t)
			if err != nil {
				return nil, &validate.ErrField{Field: f.Name, Code: validate.CodeInvalidType, Msg: "Invalid date"}
			}
			return parsed, nil
		}
		return nil, f.invalidType(raw)
	case JSON:
		switch doc := raw.(type) {
		case map[string]any:
			return doc, nil
		case Values:
			return map[string]any(doc), nil
		}
		return nil, f.invalidType(raw)
	}
	return nil, &validate.ErrField{Field: f.Name, Code: validate.CodeInvalidType, Msg: "unsupported field kind"}
}

// textLen counts UTF-16 code units, the unit JSON clients measure strings in.
func textLen(s string) int { return len(utf16.Encode([]rune(s))) }

func (f Field) checkInteger(raw any) (any, *validate.ErrField) {
	var n int64
	switch x := raw.(type) {
	case int:
		n = int64(x)
	case int32:
		return x, nil
	case int64:
		n = x
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
			return nil, &validate.ErrField{Field: f.Name, Code: validate.CodeInvalidType, Msg: "Expected integer, received float"}
		}
		if x < math.MinInt32 || x > math.MaxInt32 {
			return nil, f.outOfRange()
		}
		return int32(x), nil
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			fl, ferr := x.Float64()
			if ferr != nil {
				return nil, f.invalidType(raw)
			}
			return f.checkInteger(fl)
		}
		n = i
	default:
		return nil, f.invalidType(raw)
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return nil, f.outOfRange()
	}
	return int32(n), nil
}

func (f Field) invalidType(raw any) *validate.ErrField {
	return &validate.ErrField{
		Field: f.Name,
		Code:  validate.CodeInvalidType,
		Msg:   fmt.Sprintf("Expected %s, received %s", f.Kind, typeName(raw)),
	}
}

func (f Field) outOfRange() *validate.ErrField {
	return &validate.ErrField{Field: f.Name, Code: validate.CodeOutOfRange, Msg: "Number must be within integer range"}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int32, int64, float64, json.Number:
		return "number"
	case map[string]any, Values:
		return "object"
	case []any:
		return "array"
	}
	return fmt.Sprintf("%T", v)
}

func quoteList(vals []string) string {
	q := make([]string, len(vals))
	for i, v := range vals {
		q[i] = "'" + v + "'"
	}
	return strings.Join(q, " | ")
}
