package source

import (
	"errors"
	"sort"
	"strings"
)

// ErrReadOnly is returned by every mutation attempt on a read-only source.
var ErrReadOnly = errors.New("unsupported operation: source is read-only")

// Source exposes uniform read access to a named property collection. A value
// is a scalar or, when delimiter parsing applies, an ordered []string list.
type Source interface {
	Get(key string) (any, bool)
	Keys() []string
}

// Options controls how raw property values are interpreted.
type Options struct {
	Delimiter               rune // list delimiter within a raw value
	DisableDelimiterParsing bool // keep raw values scalar
}

// DefaultOptions returns options with comma delimiter parsing enabled.
func DefaultOptions() *Options {
	return &Options{Delimiter: ','}
}

// Split splits a raw value on the delimiter into trimmed tokens. The
// delimiter and the backslash can be escaped with a backslash; any other
// escape sequence is kept verbatim.
func Split(value string, delimiter rune) []string {
	var parts []string
	var token strings.Builder
	escaped := false
	for _, r := range value {
		switch {
		case escaped:
			if r != delimiter && r != '\\' {
				token.WriteRune('\\')
			}
			token.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == delimiter:
			parts = append(parts, strings.TrimSpace(token.String()))
			token.Reset()
		default:
			token.WriteRune(r)
		}
	}
	if escaped {
		token.WriteRune('\\')
	}
	return append(parts, strings.TrimSpace(token.String()))
}

// splitValue applies the delimiter policy to a raw value: a value containing
// the delimiter becomes an ordered list, anything else stays a scalar with
// escapes resolved and surrounding spaces trimmed.
func splitValue(value string, options *Options) any {
	if options.DisableDelimiterParsing {
		return value
	}
	parts := Split(value, options.Delimiter)
	if len(parts) > 1 {
		return parts
	}
	return parts[0]
}

// MapSource is a read-only Source backed by a plain map. Keys are reported
// in sorted order.
type MapSource struct {
	values  map[string]string
	options Options
}

// NewMapSource creates a map-backed source. A nil options applies
// DefaultOptions.
func NewMapSource(values map[string]string, options *Options) *MapSource {
	if options == nil {
		options = DefaultOptions()
	}
	return &MapSource{values: values, options: *options}
}

// Get returns the value for the key, split on the delimiter when applicable.
func (s *MapSource) Get(key string) (any, bool) {
	value, ok := s.values[key]
	if !ok {
		return nil, false
	}
	return splitValue(value, &s.options), true
}

// Keys returns all property names in sorted order.
func (s *MapSource) Keys() []string {
	result := make([]string, 0, len(s.values))
	for key := range s.values {
		result = append(result, key)
	}
	sort.Strings(result)
	return result
}

// Set always fails: the source is read-only.
func (s *MapSource) Set(key string, value any) error {
	return ErrReadOnly
}

// Clear always fails: the source is read-only.
func (s *MapSource) Clear() error {
	return ErrReadOnly
}
