package storage

import (
	"strconv"
	"strings"
)

// Record is one flat JSON object from a collection file. Collections keep
// records as maps so a merge update preserves fields the current schema does
// not know about; typed views live in the domain packages.
type Record map[string]any

// Merge overwrites the fields present in partial and leaves all others
// untouched.
func (r Record) Merge(partial Record) {
	for k, v := range partial {
		r[k] = v
	}
}

// Clone returns a shallow copy, so callers can hand records out without
// exposing the stored map.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// String reads a field as a string. Numeric values are rendered in decimal
// form, since id columns arrive as numbers from some import sources.
func (r Record) String(key string) string {
	return stringify(r[key])
}

// StringPtr reads an optional field; nil and absent both map to nil.
func (r Record) StringPtr(key string) *string {
	v, ok := r[key]
	if !ok || v == nil {
		return nil
	}
	s := stringify(v)
	return &s
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// matches compares a stored field against a lookup key: both sides as
// strings, exact match, no case folding. An empty key never matches.
func (r Record) matches(field, key string) bool {
	if strings.TrimSpace(key) == "" {
		return false
	}
	return r.String(field) == key
}
