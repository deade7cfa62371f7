// Package codec renders tool results as JSON text. Values of 64-bit
// integer class (int64, uint64, *big.Int) are rendered as decimal strings
// because interchange JSON consumers cannot represent them losslessly as
// numbers.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// Render deep-serializes v to indented JSON text.
func Render(v any) (string, error) {
	norm, err := normalize(v)
	if err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(norm, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render result: %w", err)
	}
	return string(b), nil
}

func normalize(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch t := v.(type) {
	case *big.Int:
		if t == nil {
			return nil, nil
		}
		return t.String(), nil
	case big.Int:
		return t.String(), nil
	case json.RawMessage:
		return decodeRaw(t)
	case json.Number:
		return t, nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case error:
		return t.Error(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return normalize(rv.Elem().Interface())
	case reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := fmt.Sprint(iter.Key().Interface())
			val, err := normalize(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[key] = val
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			val, err := normalize(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = val
		}
		return out, nil
	case reflect.Struct:
		return normalizeStruct(rv)
	default:
		return v, nil
	}
}

func normalizeStruct(rv reflect.Value) (any, error) {
	rt := rv.Type()
	out := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitempty := jsonName(field)
		if name == "-" {
			continue
		}
		fv := rv.Field(i)
		if omitempty && fv.IsZero() {
			continue
		}
		val, err := normalize(fv.Interface())
		if err != nil {
			return nil, err
		}
		out[name] = val
	}
	return out, nil
}

func jsonName(field reflect.StructField) (name string, omitempty bool) {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name, false
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty
}

// decodeRaw reparses upstream JSON with UseNumber so numeric literals keep
// their exact textual form instead of collapsing through float64.
func decodeRaw(raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("malformed upstream payload: %w", err)
	}
	return v, nil
}
