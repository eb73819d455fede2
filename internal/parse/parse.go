// Package parse normalizes the free-text fields candidates type into their
// profiles (salary ranges, contract-type preferences) before persistence.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyRe  = regexp.MustCompile(`(?i)[€$£]|euro|eur|usd`)
	kNotationRe = regexp.MustCompile(`(?i)(\d+)k`)
	numberRe    = regexp.MustCompile(`\d+`)
)

// SalaryRange extracts (min, max) from a free-text salary string such as
// "€4,000 - €5,000", "4k-6k" or "5000". A single number is both floor and
// ceiling; unparseable input yields (nil, nil).
func SalaryRange(value string) (*int, *int) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	cleaned := currencyRe.ReplaceAllString(value, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = kNotationRe.ReplaceAllStringFunc(cleaned, func(m string) string {
		digits := kNotationRe.FindStringSubmatch(m)[1]
		n, err := strconv.Atoi(digits)
		if err != nil {
			return m
		}
		return strconv.Itoa(n * 1000)
	})

	numbers := numberRe.FindAllString(cleaned, -1)
	if len(numbers) == 0 {
		return nil, nil
	}

	first, err := strconv.Atoi(numbers[0])
	if err != nil {
		return nil, nil
	}
	if len(numbers) == 1 {
		v := first
		return &v, &v
	}

	second, err := strconv.Atoi(numbers[1])
	if err != nil {
		v := first
		return &v, &v
	}
	return &first, &second
}

// ContractTypes maps a free-text contract preference ("Perm or rotational",
// "Seasonal work") onto the platform's canonical contract-type values.
func ContractTypes(value string) []string {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == "" {
		return nil
	}

	var types []string
	if strings.Contains(lower, "perm") {
		types = append(types, "permanent")
	}
	if strings.Contains(lower, "rotat") {
		types = append(types, "rotational")
	}
	if strings.Contains(lower, "temp") || strings.Contains(lower, "season") {
		types = append(types, "temporary")
	}
	return types
}

// CommaList splits a comma-separated preference string, dropping empty
// entries.
func CommaList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
