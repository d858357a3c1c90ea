package utils

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsBlank reports whether a cell is empty or whitespace only.
// Spreadsheet exports spell missing cells as "nan" in some tools; those count as blank too.
func IsBlank(cell string) bool {
	s := strings.TrimSpace(cell)
	return s == "" || strings.EqualFold(s, "nan")
}

// ToInt converts a cell to int, returning fallback for blank or unparseable input.
// Integral float spellings ("978.0") are accepted since spreadsheet exports
// write numeric columns that way. Values outside the int32 range yield fallback.
func ToInt(cell string, fallback int) int {
	if IsBlank(cell) {
		return fallback
	}
	s := strings.TrimSpace(cell)
	if i, err := strconv.Atoi(s); err == nil {
		if i > math.MaxInt32 || i < math.MinInt32 {
			return fallback
		}
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return fallback
	}
	return int(f)
}

// Upper trims and uppercases an identifier.
// A fresh Caser is used per call because Casers are stateful.
func Upper(s string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}

// SplitList splits a comma-joined list, trimming entries and dropping blanks.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
