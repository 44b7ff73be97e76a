package parse

import "strings"

// Category is a closed classification tag, either for a single line
// item or for a whole receipt. The two domains use separate tables and
// separate fallback members.
type Category string

// Line item categories
const (
	CategoryFood      Category = "FOOD"
	CategoryBeverage  Category = "BEVERAGE"
	CategoryHousehold Category = "HOUSEHOLD"
	CategoryApparel   Category = "APPAREL"
	CategoryOther     Category = "OTHER"
)

// Whole-receipt categories
const (
	CategoryMeals          Category = "MEALS"
	CategoryTravel         Category = "TRAVEL"
	CategoryOfficeSupplies Category = "OFFICE_SUPPLIES"
	CategoryFuel           Category = "FUEL"
	CategoryUncategorized  Category = "UNCATEGORIZED"
)

type keywordRule struct {
	keyword  string
	category Category
}

// itemRules maps product keywords to item categories. Slice order is
// the tie-break: the first keyword found as a substring wins, so
// overlapping keywords (e.g. "shoe" vs "shoes") resolve the same way
// on every run.
var itemRules = []keywordRule{
	{"pizza", CategoryFood},
	{"burger", CategoryFood},
	{"sandwich", CategoryFood},
	{"bagel", CategoryFood},
	{"salad", CategoryFood},
	{"bread", CategoryFood},
	{"cheese", CategoryFood},
	{"cookie", CategoryFood},
	{"coffee", CategoryBeverage},
	{"latte", CategoryBeverage},
	{"tea", CategoryBeverage},
	{"soda", CategoryBeverage},
	{"juice", CategoryBeverage},
	{"water", CategoryBeverage},
	{"soap", CategoryHousehold},
	{"detergent", CategoryHousehold},
	{"towel", CategoryHousehold},
	{"tissue", CategoryHousehold},
	{"shoe", CategoryApparel},
	{"shirt", CategoryApparel},
	{"sock", CategoryApparel},
}

// vendorRules maps merchant keywords to receipt categories. This is a
// different domain than itemRules (vendor identity vs product type)
// and the two tables are never merged.
var vendorRules = []keywordRule{
	{"starbucks", CategoryMeals},
	{"chipotle", CategoryMeals},
	{"mcdonald", CategoryMeals},
	{"uber", CategoryTravel},
	{"lyft", CategoryTravel},
	{"delta", CategoryTravel},
	{"staples", CategoryOfficeSupplies},
	{"office depot", CategoryOfficeSupplies},
	{"shell", CategoryFuel},
	{"chevron", CategoryFuel},
}

func firstMatch(text string, rules []keywordRule, fallback Category) Category {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		if strings.Contains(lower, rule.keyword) {
			return rule.category
		}
	}
	return fallback
}

// ClassifyItem maps an item description to its category. Every input
// yields exactly one category; unmatched descriptions are OTHER.
func ClassifyItem(description string) Category {
	return firstMatch(description, itemRules, CategoryOther)
}

// CategorizeReceipt classifies a whole text blob by merchant keywords.
// Unmatched text is UNCATEGORIZED.
func CategorizeReceipt(text string) Category {
	return firstMatch(text, vendorRules, CategoryUncategorized)
}
