package parse

import (
	"regexp"
	"strconv"
)

// Metadata holds the best-effort date and total amount found in a
// receipt text. Either field may be absent; defaults are the caller's
// responsibility, not the parser's.
type Metadata struct {
	Date      string
	Amount    float64
	HasDate   bool
	HasAmount bool
}

var (
	// day-month-year style with a 4 or 2 digit year, e.g. 12/31/2024 or 1-2-24
	dmyPattern = regexp.MustCompile(`\b\d{1,2}[-/]\d{1,2}[-/](?:\d{4}|\d{2})\b`)
	// year-first style, e.g. 2024-12-31
	ymdPattern = regexp.MustCompile(`\b\d{4}[-/]\d{1,2}[-/]\d{1,2}\b`)
	// a total/amount/sum label followed by a two-decimal figure
	amountPattern = regexp.MustCompile(`(?i)(?:total|amount|sum).*?\$?\s*(\d+\.\d{2})`)
)

// ParseMetadata scans text for a transaction date and a total amount.
// Date patterns are tried in order and the first full match anywhere in
// the text wins. The amount requires one of the words "total", "amount"
// or "sum" before the figure, so it is independent of item extraction.
func ParseMetadata(text string) Metadata {
	var meta Metadata

	for _, pattern := range []*regexp.Regexp{dmyPattern, ymdPattern} {
		if match := pattern.FindString(text); match != "" {
			meta.Date = match
			meta.HasDate = true
			break
		}
	}

	if match := amountPattern.FindStringSubmatch(text); match != nil {
		if amount, err := strconv.ParseFloat(match[1], 64); err == nil {
			meta.Amount = amount
			meta.HasAmount = true
		}
	}

	return meta
}
