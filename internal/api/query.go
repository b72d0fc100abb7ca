package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Params is an ordered query-parameter set. Unlike url.Values it preserves
// insertion order when encoding, and it silently drops any parameter whose
// value is empty, zero, or unset. Callers therefore cannot send a zero or
// empty-string value through this path; that rule is part of the wire
// contract, not an accident of string building.
type Params struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{}
}

// Set appends key=value unless the value is empty, zero, false, or nil.
// Setting the same key twice appends twice; callers are expected to set
// each key at most once.
func (p *Params) Set(key string, value any) {
	s, ok := stringify(value)
	if !ok {
		return
	}
	p.pairs = append(p.pairs, pair{key: key, value: s})
}

// SetLeading inserts key=value at the front of the set, replacing any
// existing occurrence of key. The token parameter uses this so it always
// encodes first.
func (p *Params) SetLeading(key string, value any) {
	existing := ""
	kept := p.pairs[:0]
	for _, kv := range p.pairs {
		if kv.key == key {
			existing = kv.value
			continue
		}
		kept = append(kept, kv)
	}
	p.pairs = kept

	s, ok := stringify(value)
	if !ok {
		s, ok = existing, existing != ""
	}
	if !ok {
		return
	}
	p.pairs = append([]pair{{key: key, value: s}}, p.pairs...)
}

// Get returns the first value recorded for key, or "".
func (p *Params) Get(key string) string {
	for _, kv := range p.pairs {
		if kv.key == key {
			return kv.value
		}
	}
	return ""
}

// Len returns the number of encoded parameters.
func (p *Params) Len() int {
	return len(p.pairs)
}

// Encode renders the set as a query string in insertion order. Keys and
// values are percent-encoded.
func (p *Params) Encode() string {
	var b strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}

// stringify converts a scalar parameter value to its wire form. The second
// return is false when the value must be omitted.
func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		if !v {
			return "", false
		}
		return "true", true
	case int:
		return strconv.Itoa(v), v != 0
	case int64:
		return strconv.FormatInt(v, 10), v != 0
	case uint64:
		return strconv.FormatUint(v, 10), v != 0
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), v != 0
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), v != 0
	case fmt.Stringer:
		s := v.String()
		return s, s != ""
	default:
		s := fmt.Sprint(v)
		return s, s != ""
	}
}
