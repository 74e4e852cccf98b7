package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is one raw row fetched from the row store, keyed by column
// name. Values arrive as whatever the backend produced: strings,
// numbers, or nothing at all for cells that were never filled.
type Record map[string]interface{}

// Has reports whether the row carries a value under key.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// String renders the value under key as text. Missing keys come back
// as an empty string, numbers as their shortest decimal form.
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Float parses the value under key as a decimal number. Numeric
// strings are accepted after trimming surrounding whitespace.
func (r Record) Float(key string) (float64, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("field %q is missing", key)
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("field %q is not a number: %q", key, t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("field %q is not a number: %v", key, v)
	}
}

// Int parses the value under key as an integer. A float is accepted
// only when it carries no fractional part.
func (r Record) Int(key string) (int, error) {
	f, err := r.Float(key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("field %q is not an integer: %v", key, r[key])
	}
	return int(f), nil
}
