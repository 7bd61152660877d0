// Package compact renders values as a restricted, compact JSON dialect
// suitable for embedding inside a larger double-quoted or template document.
//
// The dialect differs from standard JSON in two ways: no whitespace is
// emitted between tokens, and strings are quoted with a single quote (')
// rather than a double quote, so the output never needs escaping when placed
// inside a double-quoted context. Reversing the quote substitution yields
// standard JSON.
//
// Object members are written in the order provided by the caller; the
// encoder never re-sorts keys. Given identical input the output is
// byte-identical.
//
// Known limitation, inherited from the data this dialect was built for:
// string values must not themselves contain a quote character. The catalog
// data encoded here (constellation codes and color names) never does, and
// Marshal rejects such strings rather than emitting a corrupt document.
package compact

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/skymap/pkg/errors"
)

// Quote is the string-quoting character of the dialect.
const Quote = '\''

// Object is an ordered sequence of key/value members. Unlike a Go map it
// preserves insertion order, which the encoder writes verbatim.
type Object []Member

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Array is an ordered sequence of values.
type Array []any

// Marshal renders v as compact dialect text.
//
// Supported values: nil, bool, string, int, int64, float64, Object, and
// Array. Anything else is a programming error and returns ErrInvalidInput.
func Marshal(v any) ([]byte, error) {
	return appendValue(nil, v)
}

// MarshalString is Marshal returning a string.
func MarshalString(v any) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func appendValue(dst []byte, v any) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return append(dst, "null"...), nil
	case bool:
		if val {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case string:
		return appendString(dst, val)
	case int:
		return strconv.AppendInt(dst, int64(val), 10), nil
	case int64:
		return strconv.AppendInt(dst, val, 10), nil
	case float64:
		return appendFloat(dst, val)
	case Object:
		return appendObject(dst, val)
	case Array:
		return appendArray(dst, val)
	default:
		return nil, errors.NewValidationError("value", v,
			fmt.Sprintf("unsupported type %T", v))
	}
}

func appendString(dst []byte, s string) ([]byte, error) {
	if strings.ContainsAny(s, `'"`) {
		return nil, errors.NewValidationError("string", s,
			"value contains a quote character, which the compact dialect cannot represent")
	}
	dst = append(dst, Quote)
	dst = append(dst, s...)
	return append(dst, Quote), nil
}

// appendFloat writes the shortest decimal text that round-trips to the same
// float64, matching the "no extraneous precision" contract.
func appendFloat(dst []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.NewValidationError("number", f, "not representable in JSON")
	}
	return strconv.AppendFloat(dst, f, 'g', -1, 64), nil
}

func appendObject(dst []byte, obj Object) ([]byte, error) {
	var err error
	dst = append(dst, '{')
	for i, m := range obj {
		if i > 0 {
			dst = append(dst, ',')
		}
		if dst, err = appendString(dst, m.Key); err != nil {
			return nil, err
		}
		dst = append(dst, ':')
		if dst, err = appendValue(dst, m.Value); err != nil {
			return nil, err
		}
	}
	return append(dst, '}'), nil
}

func appendArray(dst []byte, arr Array) ([]byte, error) {
	var err error
	dst = append(dst, '[')
	for i, v := range arr {
		if i > 0 {
			dst = append(dst, ',')
		}
		if dst, err = appendValue(dst, v); err != nil {
			return nil, err
		}
	}
	return append(dst, ']'), nil
}
