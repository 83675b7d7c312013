package espn

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// non-breaking space, the page's placeholder for an unpublished salary
const nbsp = " "

var nonDigitRe = regexp.MustCompile(`[^\d]`)

// ParseSalary strips currency formatting from a salary string. An empty,
// non-breaking-space or dash placeholder means the salary was never
// published and yields the undisclosed sentinel, never zero.
func ParseSalary(s string) Salary {
	s = strings.TrimSpace(s)
	switch s {
	case "", nbsp, "&nbsp;", "--":
		return Salary{}
	}
	digits := nonDigitRe.ReplaceAllString(s, "")
	if digits == "" {
		return Salary{}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Salary{}
	}
	return Salary{Amount: n, Disclosed: true}
}

// ConvertHeight turns a feet-and-inches string like `6' 3"` into total
// inches.
func ConvertHeight(h string) (float64, error) {
	parts := strings.Fields(strings.TrimSpace(h))
	if len(parts) != 2 {
		return 0, fmt.Errorf("height %q: want two space-separated components", h)
	}
	feet, err := strconv.ParseFloat(strings.Trim(parts[0], "'"), 64)
	if err != nil {
		return 0, fmt.Errorf("height %q: %w", h, err)
	}
	inches, err := strconv.ParseFloat(strings.Trim(parts[1], `"`), 64)
	if err != nil {
		return 0, fmt.Errorf("height %q: %w", h, err)
	}
	return feet*12 + inches, nil
}

// ConvertWeight takes the leading numeric token of a weight string like
// "190 lbs" and discards the unit suffix.
func ConvertWeight(w string) (float64, error) {
	parts := strings.Fields(strings.TrimSpace(w))
	if len(parts) == 0 {
		return 0, fmt.Errorf("weight %q: empty", w)
	}
	f, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, fmt.Errorf("weight %q: %w", w, err)
	}
	return f, nil
}
