package services

import (
	"regexp"
	"strings"
	"time"
)

const priceUnit = "рублей"

const dateLayout = "2.1.2006"

var digitsRegexp = regexp.MustCompile(`^[0-9]+$`)

// ValidateDate reports whether s is a real calendar date in day.month.year
// form (e.g. 25.12.2024). No other format is accepted.
func ValidateDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ValidatePrice reports whether s, with spaces stripped, is either a plain
// number or a range of two numbers joined by a single dash.
func ValidatePrice(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	if digitsRegexp.MatchString(s) {
		return true
	}
	if strings.Contains(s, "-") {
		parts := strings.Split(s, "-")
		return len(parts) == 2 && digitsRegexp.MatchString(parts[0]) && digitsRegexp.MatchString(parts[1])
	}
	return false
}

// FormatPrice turns validated price text into its display form with the
// currency unit appended. Must only be called on text accepted by
// ValidatePrice.
func FormatPrice(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, "-") {
		parts := strings.SplitN(s, "-", 2)
		return parts[0] + "-" + parts[1] + " " + priceUnit
	}
	return s + " " + priceUnit
}
