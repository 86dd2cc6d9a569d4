package schema

import "github.com/baharkarakas/sitecraft-backend/internal/validate"

type rule struct {
	Field
	optional bool
	nullable bool
	defaults bool
}

// Shape validates request input against an ordered set of field rules.
// Shapes are immutable and safe for concurrent use.
type Shape struct {
	name  string
	rules []rule
}

// Object builds a request-only shape. Every field is required and
// non-null unless it declares a Default, which is applied when absent.
func Object(name string, fields ...Field) Shape {
	rules := make([]rule, len(fields))
	for i, f := range fields {
		rules[i] = rule{Field: f, optional: f.Default != nil, defaults: f.Default != nil}
	}
	return Shape{name: name, rules: rules}
}

func (s Shape) Name() string { return s.name }

func (s Shape) Named(name string) Shape {
	s.name = name
	return s
}

// Fields lists the permitted field names in order.
func (s Shape) Fields() []string {
	out := make([]string, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.Name
	}
	return out
}

// Partial makes every field optional and disables defaults, for patches.
func (s Shape) Partial() Shape {
	rules := make([]rule, len(s.rules))
	for i, r := range s.rules {
		r.optional = true
		r.defaults = false
		rules[i] = r
	}
	return Shape{name: s.name, rules: rules}
}

// Validate accepts an object holding the shape's fields and returns only
// those fields. Keys outside the shape are dropped. Every violation is
// reported; nothing is returned unless all fields pass.
func (s Shape) Validate(input any) (Values, error) {
	var obj map[string]any
	switch in := input.(type) {
	case map[string]any:
		obj = in
	case Values:
		obj = in
	default:
		return nil, validate.Errs{{
			Code: validate.CodeInvalidType,
			Msg:  "Expected object, received " + typeName(input),
		}}
	}

	out := make(Values, len(s.rules))
	var errs validate.Errs
	for _, r := range s.rules {
		raw, present := obj[r.Name]
		if !present {
			switch {
			case r.defaults:
				out[r.Name] = r.Default
			case !r.optional:
				errs = append(errs, validate.ErrField{Field: r.Name, Code: validate.CodeRequired, Msg: "Required"})
			}
			continue
		}
		if raw == nil {
			if r.nullable {
				out[r.Name] = nil
				continue
			}
			errs = append(errs, validate.ErrField{
				Field: r.Name,
				Code:  validate.CodeInvalidType,
				Msg:   "Expected " + r.Kind.String() + ", received null",
			})
			continue
		}
		v, ef := r.check(raw)
		if ef != nil {
			errs = append(errs, *ef)
			continue
		}
		out[r.Name] = v
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// Assignment pairs a column with the accepted value bound for it.
type Assignment struct {
	Column string
	Value  any
}

// Assignments maps accepted values onto their columns, in declaration order.
func (s Shape) Assignments(v Values) []Assignment {
	var out []Assignment
	for _, r := range s.rules {
		if r.Column == "" {
			continue
		}
		val, ok := v[r.Name]
		if !ok {
			continue
		}
		out = append(out, Assignment{Column: r.Column, Value: val})
	}
	return out
}

// Values holds the fields accepted by a Shape, keyed by field name.
type Values map[string]any

func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v Values) StringPtr(name string) *string {
	s, ok := v[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func (v Values) Int(name string) int32 {
	n, _ := v[name].(int32)
	return n
}

func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

func (v Values) BoolPtr(name string) *bool {
	b, ok := v[name].(bool)
	if !ok {
		return nil
	}
	return &b
}

func (v Values) Document(name string) map[string]any {
	doc, _ := v[name].(map[string]any)
	return doc
}
