// Package fields resolves logical fields across the inconsistent key spellings
// the upstream data sources use. The same column arrives as "TÍTULO", "Titulo"
// or "titulo", sometimes nested inside an unrelated wrapper object; every reader
// of inventory and person records goes through this package instead of guessing
// key names inline.
package fields

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize strips accents, uppercases and removes spaces, producing the
// canonical form used for fuzzy key comparison.
func Normalize(key string) string {
	folded, _, err := transform.String(deaccent, key)
	if err != nil {
		folded = key
	}
	return strings.ReplaceAll(strings.ToUpper(folded), " ", "")
}

func empty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}

// Resolve returns the first non-empty value for any of the candidate keys.
// Candidates are tried verbatim in order first; failing that, record keys and
// candidates are normalized and matched on equality or substring containment in
// either direction; failing that, nested objects are searched recursively.
// Non-object records resolve to nil.
func Resolve(record any, candidates ...string) any {
	doc, ok := record.(map[string]any)
	if !ok {
		return nil
	}

	for _, c := range candidates {
		if v, ok := doc[c]; ok && !empty(v) {
			return v
		}
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		kn := Normalize(k)
		for _, c := range candidates {
			cn := Normalize(c)
			if kn == cn || strings.Contains(kn, cn) || strings.Contains(cn, kn) {
				if v := doc[k]; !empty(v) {
					return v
				}
			}
		}
	}

	for _, k := range keys {
		if sub, ok := doc[k].(map[string]any); ok {
			if v := Resolve(sub, candidates...); !empty(v) {
				return v
			}
		}
	}
	return nil
}

// ResolveString resolves and coerces to a string, returning "" when absent.
func ResolveString(record any, candidates ...string) string {
	v := Resolve(record, candidates...)
	if empty(v) {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

var digits = regexp.MustCompile(`[^0-9]`)

// Number extracts the first integer obtainable from v: numeric types directly,
// strings by dropping non-digit characters, maps by trying common availability
// keys before all values, slices element by element. The second return reports
// whether anything numeric was found.
func Number(v any) (int, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case int:
		return t, true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case float32:
		return int(t), true
	case string:
		s := digits.ReplaceAllString(t, "")
		if s == "" {
			return 0, false
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return n, true
	case map[string]any:
		for _, k := range []string{"DISPONIBLES", "Disponibles", "disponible", "DISPONIBLE", "Disponible", "EXIST"} {
			if sub, ok := t[k]; ok {
				if n, ok := Number(sub); ok {
					return n, true
				}
			}
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if n, ok := Number(t[k]); ok {
				return n, true
			}
		}
		return 0, false
	case []any:
		for _, item := range t {
			if n, ok := Number(item); ok {
				return n, true
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

var availableCandidates = []string{"DISPONIBLES", "Disponibles", "disponibles", "DISPONIBLE", "Disponible"}

// ResolveCount finds the available-copies counter of an inventory document.
// It prefers the canonical DISPONIBLES spellings, then any key whose normalized
// form mentions DISPON or EXIST, then the legacy nested U.EXIST shape (which may
// itself be an object keyed by the empty string). Unresolvable counts report
// false so callers can write a defensive zero.
func ResolveCount(doc map[string]any) (int, bool) {
	for _, k := range availableCandidates {
		if v, ok := doc[k]; ok && !empty(v) {
			if n, ok := Number(v); ok {
				return n, true
			}
		}
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		kn := Normalize(k)
		if strings.Contains(kn, "DISPON") || strings.Contains(kn, "EXIST") {
			if n, ok := Number(doc[k]); ok {
				return n, true
			}
		}
	}

	// Legacy shape: {"U": {"EXIST": {"": 3}}} and variations thereof.
	if u, ok := doc["U"].(map[string]any); ok {
		for k, v := range u {
			if strings.ToUpper(strings.TrimSpace(k)) != "EXIST" {
				continue
			}
			if n, ok := Number(v); ok {
				return n, true
			}
		}
	}
	return 0, false
}
