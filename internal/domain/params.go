package domain

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
)

// Params maps query-parameter names to values. Nil and empty-string values
// are dropped before a request is sent.
type Params map[string]any

// Encode serializes the non-empty parameters in key order.
func (p Params) Encode() string {
	values := url.Values{}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if s, ok := p.value(k); ok {
			values.Add(k, s)
		}
	}
	return values.Encode()
}

func (p Params) value(key string) (string, bool) {
	v := p[key]
	if v == nil {
		return "", false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		v = rv.Elem().Interface()
	}

	var s string
	switch t := v.(type) {
	case string:
		s = t
	case fmt.Stringer:
		s = t.String()
	default:
		s = fmt.Sprint(t)
	}
	return s, s != ""
}
