// Package validate holds the declarative per-form field rules. Validation
// is pure: it reports field-level messages for display and never reaches
// the network or returns a Go error.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// FormKey is the pseudo-field that carries cross-field messages, e.g. the
// track-claim "at least two fields" rule.
const FormKey = "form"

// Errors maps field name to a human-readable message.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

// Rule checks one already-trimmed value and returns a message or "".
type Rule func(value string) string

// CrossRule sees the whole normalized value set.
type CrossRule func(values map[string]string) string

type Field struct {
	Name  string
	Rules []Rule
}

// Schema is a declarative form description. Validate trims every declared
// field, applies the first failing rule per field, then the cross rules.
type Schema struct {
	Fields []Field
	Cross  []CrossRule
}

// Validate returns the normalized (trimmed, schema-limited) value set and
// any field errors. The normalized set only contains declared fields.
func (s Schema) Validate(values map[string]string) (map[string]string, Errors) {
	normalized := make(map[string]string, len(s.Fields))
	errs := Errors{}
	for _, f := range s.Fields {
		v := strings.TrimSpace(values[f.Name])
		normalized[f.Name] = v
		for _, rule := range f.Rules {
			if msg := rule(v); msg != "" {
				errs[f.Name] = msg
				break
			}
		}
	}
	for _, cross := range s.Cross {
		if msg := cross(normalized); msg != "" {
			errs[FormKey] = msg
			break
		}
	}
	return normalized, errs
}

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe  = regexp.MustCompile(`^[0-9\-\+\(\) ]{7,20}$`)
	postalRe = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z] ?\d[A-Za-z]\d$`)
)

func Required(label string) Rule {
	return func(v string) string {
		if v == "" {
			return label + " is required"
		}
		return ""
	}
}

// Email passes on empty input; pair with Required when the field is mandatory.
func Email(v string) string {
	if v != "" && !emailRe.MatchString(v) {
		return "Invalid email format"
	}
	return ""
}

func Phone(v string) string {
	if v != "" && !phoneRe.MatchString(v) {
		return "Invalid phone number format"
	}
	return ""
}

func PostalCode(v string) string {
	if v != "" && !postalRe.MatchString(v) {
		return "Invalid Canadian postal code"
	}
	return ""
}

// OneOf requires a selection from the closed set; no selection is an error.
func OneOf(label string, allowed []string) Rule {
	return func(v string) string {
		if v == "" {
			return label + " is required"
		}
		for _, a := range allowed {
			if v == a {
				return ""
			}
		}
		return "Invalid " + strings.ToLower(label)
	}
}

// NonNegative accepts an absent amount; a present one must parse and be >= 0.
func NonNegative(label string) Rule {
	return func(v string) string {
		if v == "" {
			return ""
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return label + " must be a number"
		}
		if f < 0 {
			return label + " must be non-negative"
		}
		return ""
	}
}

// ValidDate requires an ISO calendar date.
func ValidDate(v string) string {
	if v == "" {
		return ""
	}
	if _, err := time.Parse("2006-01-02", v); err != nil {
		return "Invalid date"
	}
	return ""
}

// MaxLen caps the length in characters, not bytes.
func MaxLen(n int, msg string) Rule {
	return func(v string) string {
		if utf8.RuneCountInString(v) > n {
			return msg
		}
		return ""
	}
}

// Integer requires a whole number; used for adjuster ids.
func Integer(label string) Rule {
	return func(v string) string {
		if v == "" {
			return label + " is required"
		}
		if n, err := strconv.ParseInt(v, 10, 64); err != nil || n < 0 {
			return fmt.Sprintf("Invalid %s", strings.ToLower(label))
		}
		return ""
	}
}
