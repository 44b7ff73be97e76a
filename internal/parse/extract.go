package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// Item is one priced line from a receipt
type Item struct {
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
}

// pricePattern matches an optional dollar sign and a two-decimal number
var pricePattern = regexp.MustCompile(`\$?\s*(\d+\.\d{2})`)

// footerWords mark summary lines that never carry a purchasable item.
// Matching is substring-based, not word-boundary aware, so a product
// literally named "Total Juice" is also skipped.
var footerWords = []string{"total", "subtotal", "tax", "balance"}

func isFooterLine(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range footerWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// ExtractItems scans OCR text line by line and returns the priced items
// in source order. Lines that are blank, carry a footer word, have no
// price, or have nothing left once the price is removed are skipped.
// A line with several embedded prices yields one item from the first
// match; quantities and unit prices are not interpreted.
func ExtractItems(text string) []Item {
	items := []Item{}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" || isFooterLine(line) {
			continue
		}

		loc := pricePattern.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}

		price, err := strconv.ParseFloat(line[loc[2]:loc[3]], 64)
		if err != nil {
			continue
		}

		// Description is the line with the matched price substring removed
		description := strings.TrimSpace(line[:loc[0]] + line[loc[1]:])
		if description == "" {
			continue
		}

		items = append(items, Item{
			Description: description,
			Price:       price,
			Category:    ClassifyItem(description),
		})
	}

	return items
}
