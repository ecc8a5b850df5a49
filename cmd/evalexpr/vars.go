package main

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/myfstd/evalexpr/value"
)

// inferLiteral converts a raw --vars string into the narrowest Value it
// parses as: Int, then Float, then Bool, falling back to String.
func inferLiteral(text string) value.Value {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return value.Int(i)
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return value.Float(f)
	}
	if b, err := strconv.ParseBool(text); err == nil {
		return value.Bool(b)
	}
	return value.String(text)
}

// fromYAML converts a value decoded from a YAML scalar (int, float,
// bool or string, per yaml.v3's default Go type mapping) into a Value.
func fromYAML(raw interface{}) (value.Value, error) {
	switch v := raw.(type) {
	case int:
		return value.Int(int64(v)), nil
	case int64:
		return value.Int(v), nil
	case float64:
		return value.Float(v), nil
	case bool:
		return value.Bool(v), nil
	case string:
		return value.String(v), nil
	default:
		return value.Value{}, errors.Errorf("unsupported YAML value %v (%T)", v, v)
	}
}
