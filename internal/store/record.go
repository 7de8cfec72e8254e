// ABOUTME: Record and Fields types for the CSV table store.
// ABOUTME: All boolean/number parsing happens here, once, at the store boundary.
package store

import (
	"strconv"
	"strings"
	"time"
)

// Record is one row of a table. System fields (id, created_at, updated_at)
// live outside the Fields map and are managed by the store.
type Record struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Fields    Fields
}

// Fields maps column names to cell values. Cells are stored in their CSV
// encoding; the typed accessors below are the only place that encoding is
// interpreted.
type Fields map[string]string

// Get returns the raw cell value, or "" if the field is absent.
func (f Fields) Get(key string) string {
	return f[key]
}

// Has reports whether the field is present.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Float returns the field parsed as a float, or def if absent or unparsable.
func (f Fields) Float(key string, def float64) float64 {
	v, ok := f[key]
	if !ok {
		return def
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return n
}

// Int returns the field parsed as an integer, or def if absent or unparsable.
// Values written as floats ("7.0") are accepted and truncated.
func (f Fields) Int(key string, def int) int {
	v, ok := f[key]
	if !ok {
		return def
	}
	s := strings.TrimSpace(v)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return int(n)
	}
	return def
}

// Bool returns the field parsed as a boolean, or def if absent or unparsable.
// Accepts the legacy "True"/"False" spellings alongside "true"/"false"/"1"/"0".
func (f Fields) Bool(key string, def bool) bool {
	v, ok := f[key]
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return def
}

// Set stores a string value.
func (f Fields) Set(key, value string) {
	f[key] = value
}

// SetFloat stores a float in minimal decimal form.
func (f Fields) SetFloat(key string, value float64) {
	f[key] = strconv.FormatFloat(value, 'f', -1, 64)
}

// SetInt stores an integer.
func (f Fields) SetInt(key string, value int) {
	f[key] = strconv.Itoa(value)
}

// SetBool stores a boolean as "true" or "false".
func (f Fields) SetBool(key string, value bool) {
	f[key] = strconv.FormatBool(value)
}

// clone returns a shallow copy of the field map.
func (f Fields) clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
