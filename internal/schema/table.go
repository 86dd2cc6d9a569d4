package schema

import (
	"fmt"
	"strings"
)

// Table is an entity contract: the authoritative column set of a persisted
// record type.
type Table struct {
	Name   string
	Fields []Field
}

func (t Table) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Columns lists column names in declaration order.
func (t Table) Columns() []string {
	out := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		out[i] = f.Column
	}
	return out
}

// Pick projects the table onto the named fields, producing the shape a
// caller may supply on insert. A picked field is required when it is NOT
// NULL without a default, accepts null when the column is nullable, and
// receives its literal default only when absent from the input.
func (t Table) Pick(names ...string) (Shape, error) {
	seen := make(map[string]struct{}, len(names))
	rules := make([]rule, 0, len(names))
	for _, name := range names {
		f, ok := t.Field(name)
		if !ok {
			return Shape{}, fmt.Errorf("schema: table %s has no field %q", t.Name, name)
		}
		if _, dup := seen[name]; dup {
			return Shape{}, fmt.Errorf("schema: field %q picked twice", name)
		}
		seen[name] = struct{}{}
		rules = append(rules, rule{
			Field:    f,
			optional: !f.NotNull || f.Default != nil || f.Generated(),
			nullable: !f.NotNull,
			defaults: f.Default != nil,
		})
	}
	return Shape{name: t.Name, rules: rules}, nil
}

func (t Table) MustPick(names ...string) Shape {
	s, err := t.Pick(names...)
	if err != nil {
		panic(err)
	}
	return s
}

// DDL renders the CREATE TABLE statement the migrations must carry.
func (t Table) DDL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", t.Name)
	for i, f := range t.Fields {
		b.WriteString("  ")
		b.WriteString(f.columnDef())
		if i < len(t.Fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(");")
	return b.String()
}
