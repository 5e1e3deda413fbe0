package validator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotUsable marks a supplied value that could not be turned into something
// the caller can filter on.
var ErrNotUsable = errors.New("value not usable")

var EmailRX = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lower-cases v. Anything that is not a string
// normalizes to "".
func NormalizeEmail(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(s))
}

func IsValidEmail(v any) bool {
	return EmailRX.MatchString(NormalizeEmail(v))
}

// IsValidPassword only requires a non-blank string.
func IsValidPassword(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// NonBlank returns the string held by v when it is non-empty after trimming.
// The value is returned untrimmed.
func NonBlank(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// ParseIDs parses every value as an integer, dropping those that are not.
// A blank value reads as 0. It fails when nothing survives.
func ParseIDs(raw []string) ([]int, error) {
	ids := make([]int, 0, len(raw))
	for _, v := range raw {
		if n, ok := parseInteger(v); ok {
			ids = append(ids, n)
		}
	}
	if len(ids) == 0 {
		return nil, ErrNotUsable
	}
	return ids, nil
}

// ParseYear accepts positive integers only.
func ParseYear(raw string) (int, error) {
	n, ok := parseInteger(raw)
	if !ok || n <= 0 {
		return 0, ErrNotUsable
	}
	return n, nil
}

// In reports whether value is one of the permitted values.
func In(value string, list ...string) bool {
	for _, v := range list {
		if value == v {
			return true
		}
	}
	return false
}

// parseInteger reads v the way a browser would read a numeric query value:
// surrounding space is ignored, blank means 0, and 0x, 0o and 0b prefixes
// select a base. Only integer-valued results that fit an int are accepted,
// so "2" and "2.0" both parse to 2.
func parseInteger(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, true
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n, true
	}
	if len(v) > 2 && v[0] == '0' {
		if base, ok := radixPrefixes[v[1]]; ok {
			n, err := strconv.ParseUint(v[2:], base, 63)
			if err != nil {
				return 0, false
			}
			return int(n), true
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int(f), true
}

var radixPrefixes = map[byte]int{
	'x': 16, 'X': 16,
	'o': 8, 'O': 8,
	'b': 2, 'B': 2,
}
