package movie

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	MinYear     = 1900
	MaxYear     = 2024
	MinRate     = 0
	MaxRate     = 10
	DefaultRate = 5.5

	MinDirectorLength = 5
	MaxDirectorLength = 50

	maxSafeInteger = 1<<53 - 1
)

var validate = validator.New()

// isString returns v as a string when it holds one.
func isString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// isNumber returns v as a float64 when it holds any numeric kind.
func isNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func isInteger(n float64) bool {
	return !math.IsInf(n, 0) && n == math.Trunc(n)
}

func isAtLeast(n, min float64) bool {
	return n >= min
}

func isAtMost(n, max float64) bool {
	return n <= max
}

func isPositive(n float64) bool {
	return n > 0
}

// lengthBetween counts characters, not bytes.
func lengthBetween(s string, min, max int) bool {
	l := utf8.RuneCountInString(s)
	return l >= min && l <= max
}

// isURL reports whether s is an absolute URL with a scheme.
func isURL(s string) bool {
	return validate.Var(s, "required,url") == nil
}

// isList returns v as a slice of values when it holds a list.
func isList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	case []Genre:
		out := make([]any, len(l))
		for i, g := range l {
			out[i] = string(g)
		}
		return out, true
	}
	return nil, false
}

// typeName names the kind of a decoded JSON value for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	}
	if _, ok := isNumber(v); ok {
		return "number"
	}
	if _, ok := isList(v); ok {
		return "array"
	}
	return fmt.Sprintf("%T", v)
}

func expected(kind string, v any) string {
	return fmt.Sprintf("Expected %s, received %s", kind, typeName(v))
}

func invalidGenre(s string) string {
	quoted := make([]string, len(Genres))
	for i, g := range Genres {
		quoted[i] = "'" + string(g) + "'"
	}
	return fmt.Sprintf("Invalid enum value. Expected %s, received '%s'", strings.Join(quoted, " | "), s)
}
