package adminsdk

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Query builds a URL query string for list operations. Unlike url.Values it
// preserves insertion order, so serialized requests are reproducible.
//
// Encoding rules:
//   - nil and empty-string values are omitted entirely
//   - booleans are stringified as "true"/"false"
//   - slice values are encoded as repeated keys (tags=a&tags=b)
//   - everything else uses its default string form
type Query struct {
	pairs []queryPair
}

type queryPair struct {
	key   string
	value any
}

// NewQuery returns an empty query builder.
func NewQuery() *Query {
	return &Query{}
}

// Set appends a key/value pair to the query. Calling Set twice with the same
// key appends a second pair rather than replacing the first.
func (q *Query) Set(key string, value any) *Query {
	q.pairs = append(q.pairs, queryPair{key: key, value: value})
	return q
}

// Encode serializes the query. An empty or nil query encodes to "" so that
// callers can issue requests to the bare endpoint without a "?" suffix.
func (q *Query) Encode() string {
	if q == nil || len(q.pairs) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, p := range q.pairs {
		if skipValue(p.value) {
			continue
		}

		rv := reflect.ValueOf(p.value)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				appendPair(&sb, p.key, stringify(rv.Index(i).Interface()))
			}
			continue
		}

		appendPair(&sb, p.key, stringify(p.value))
	}
	return sb.String()
}

// skipValue reports whether a value must be omitted from the query string.
func skipValue(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok && s == "" {
		return true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return true
	}
	return false
}

func stringify(v any) string {
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", v)
	}
}

func appendPair(sb *strings.Builder, key, value string) {
	if sb.Len() > 0 {
		sb.WriteByte('&')
	}
	sb.WriteString(url.QueryEscape(key))
	sb.WriteByte('=')
	sb.WriteString(url.QueryEscape(value))
}
