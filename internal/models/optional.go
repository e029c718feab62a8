package models

import "strconv"

// The backend distinguishes null from empty; HTML forms only have "".
// These helpers are the single place that conversion happens: wire null
// becomes the empty string at the form boundary and "" becomes null again
// at serialization time.

// OptStr maps a nullable wire string to its form representation.
func OptStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// StrOpt maps a form value back to a nullable wire string.
func StrOpt(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// OptMoney formats a nullable amount for form binding. Whole dollars drop
// the fraction, matching what the backend echoes.
func OptMoney(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

// MoneyOpt parses a form amount back to a nullable wire value. The field is
// validated before this runs; an unparseable string maps to null.
func MoneyOpt(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
