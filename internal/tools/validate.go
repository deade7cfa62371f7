package tools

import (
	"fmt"
	"math"
	"strings"
)

// Args holds the validated, default-applied arguments of one call. Values
// are keyed by field name; numeric values are stored as float64 as they
// arrive from JSON.
type Args map[string]any

// Has reports whether the caller supplied (or a default filled) the field.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

func (a Args) Float(name string) float64 {
	v, _ := toFloat(a[name])
	return v
}

func (a Args) Int(name string) int {
	v, _ := toFloat(a[name])
	return int(v)
}

func (a Args) Int64(name string) int64 {
	v, _ := toFloat(a[name])
	return int64(v)
}

func (a Args) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

func (a Args) StringList(name string) []string {
	v, _ := a[name].([]string)
	return v
}

func (a Args) Int64List(name string) []int64 {
	v, _ := a[name].([]int64)
	return v
}

func (a Args) ObjectList(name string) []Args {
	v, _ := a[name].([]Args)
	return v
}

// Validate checks raw arguments against a field contract and returns the
// validated set with defaults applied. Unknown extra fields are ignored.
// The first violation is returned as a *ValidationError naming the field.
func Validate(fields []Field, raw map[string]any) (Args, error) {
	return validate(fields, raw, "")
}

func validate(fields []Field, raw map[string]any, prefix string) (Args, error) {
	out := make(Args, len(fields))

	for _, field := range fields {
		path := prefix + field.Name
		value, present := raw[field.Name]
		if value == nil {
			present = false
		}

		if !present {
			if field.Required {
				return nil, validationErr(path, "required")
			}
			if field.Default != nil {
				out[field.Name] = field.Default
			}
			continue
		}

		checked, err := checkField(field, path, value)
		if err != nil {
			return nil, err
		}
		out[field.Name] = checked
	}

	return out, nil
}

func checkField(field Field, path string, value any) (any, error) {
	switch field.Type {
	case FieldString:
		s, ok := value.(string)
		if !ok {
			return nil, validationErr(path, "must be a string")
		}
		if len(s) < field.MinLen {
			return nil, validationErr(path, "must be at least %d character%s", field.MinLen, plural(field.MinLen))
		}
		if len(field.Enum) > 0 && !contains(field.Enum, s) {
			return nil, validationErr(path, "must be one of %s", strings.Join(field.Enum, ", "))
		}
		return s, nil

	case FieldNumber, FieldInteger:
		n, ok := toFloat(value)
		if !ok {
			return nil, validationErr(path, "must be a number")
		}
		if field.Type == FieldInteger && n != math.Trunc(n) {
			return nil, validationErr(path, "must be an integer")
		}
		if field.Min != nil && n < *field.Min {
			return nil, validationErr(path, "must be at least %s", formatBound(*field.Min))
		}
		if field.Max != nil && n > *field.Max {
			return nil, validationErr(path, "must be at most %s", formatBound(*field.Max))
		}
		return n, nil

	case FieldBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, validationErr(path, "must be a boolean")
		}
		return b, nil

	case FieldStringList:
		items, ok := value.([]any)
		if !ok {
			return nil, validationErr(path, "must be a list of strings")
		}
		out := make([]string, 0, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, validationErr(elemPath(path, i), "must be a string")
			}
			out = append(out, s)
		}
		if len(out) < field.MinLen {
			return nil, validationErr(path, "must contain at least %d item%s", field.MinLen, plural(field.MinLen))
		}
		return out, nil

	case FieldIntegerList:
		items, ok := value.([]any)
		if !ok {
			return nil, validationErr(path, "must be a list of integers")
		}
		out := make([]int64, 0, len(items))
		for i, item := range items {
			n, ok := toFloat(item)
			if !ok || n != math.Trunc(n) {
				return nil, validationErr(elemPath(path, i), "must be an integer")
			}
			out = append(out, int64(n))
		}
		if len(out) < field.MinLen {
			return nil, validationErr(path, "must contain at least %d item%s", field.MinLen, plural(field.MinLen))
		}
		return out, nil

	case FieldObjectList:
		items, ok := value.([]any)
		if !ok {
			return nil, validationErr(path, "must be a list of objects")
		}
		if len(items) < field.MinLen {
			return nil, validationErr(path, "must contain at least %d item%s", field.MinLen, plural(field.MinLen))
		}
		out := make([]Args, 0, len(items))
		for i, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, validationErr(elemPath(path, i), "must be an object")
			}
			checked, err := validate(field.Elem, obj, elemPath(path, i)+".")
			if err != nil {
				return nil, err
			}
			out = append(out, checked)
		}
		return out, nil

	default:
		return nil, validationErr(path, "unsupported field type")
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func elemPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func formatBound(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
