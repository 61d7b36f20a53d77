package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var fieldValidate = validator.New()

// FieldKind is the semantic type raw text is coerced to.
type FieldKind int

const (
	KindText FieldKind = iota
	KindEmail
	KindInteger
	KindDecimal
)

type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
}

// Form describes the fields an add or update command accepts.
type Form struct {
	Fields []Field
}

// ValidationError lists every field that was missing or did not parse.
type ValidationError struct {
	Problems map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Problems))
	for name := range e.Problems {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Problems[name])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Values holds parsed form input keyed by field name. Absent optional
// fields are simply not present.
type Values map[string]interface{}

func (v Values) Has(name string) bool { _, ok := v[name]; return ok }

func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v Values) Int(name string) int64 {
	n, _ := v[name].(int64)
	return n
}

func (v Values) Decimal(name string) decimal.Decimal {
	d, _ := v[name].(decimal.Decimal)
	return d
}

// Parse coerces raw text into typed values. Unknown keys, missing required
// fields and unparsable values are all reported together.
func (f Form) Parse(raw map[string]string) (Values, error) {
	values := make(Values, len(f.Fields))
	problems := make(map[string]string)

	known := make(map[string]bool, len(f.Fields))
	for _, field := range f.Fields {
		known[field.Name] = true
		text, ok := raw[field.Name]
		text = strings.TrimSpace(text)
		if !ok || text == "" {
			if field.Required {
				problems[field.Name] = "is required"
			}
			continue
		}
		v, err := field.coerce(text)
		if err != nil {
			problems[field.Name] = err.Error()
			continue
		}
		values[field.Name] = v
	}
	for name := range raw {
		if !known[name] {
			problems[name] = "is not a field of this form"
		}
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return values, nil
}

func (f Field) coerce(text string) (interface{}, error) {
	switch f.Kind {
	case KindInteger:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("must be a whole number, got %q", text)
		}
		if n < 0 {
			return nil, fmt.Errorf("must not be negative")
		}
		return n, nil
	case KindDecimal:
		d, err := decimal.NewFromString(text)
		if err != nil {
			return nil, fmt.Errorf("must be a number, got %q", text)
		}
		if d.IsNegative() {
			return nil, fmt.Errorf("must not be negative")
		}
		return d, nil
	case KindEmail:
		if err := fieldValidate.Var(text, "email"); err != nil {
			return nil, fmt.Errorf("must be an email address, got %q", text)
		}
		return text, nil
	default:
		return text, nil
	}
}

// optional returns a copy of the form with every field optional, for
// partial updates.
func (f Form) optional() Form {
	fields := make([]Field, len(f.Fields))
	for i, field := range f.Fields {
		field.Required = false
		fields[i] = field
	}
	return Form{Fields: fields}
}
