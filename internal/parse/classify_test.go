package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ClassifyItem", func() {
	var (
		description string
		category    Category
	)

	JustBeforeEach(func() {
		category = ClassifyItem(description)
	})

	When("the description contains a food keyword", func() {
		BeforeEach(func() {
			description = "Large Pepperoni Pizza"
		})

		It("should return FOOD", func() {
			Expect(category).To(Equal(CategoryFood))
		})
	})

	When("the description contains a beverage keyword in mixed case", func() {
		BeforeEach(func() {
			description = "ICED COFFEE GRANDE"
		})

		It("should return BEVERAGE", func() {
			Expect(category).To(Equal(CategoryBeverage))
		})
	})

	When("overlapping keywords could match", func() {
		BeforeEach(func() {
			description = "Running Shoes"
		})

		It("should resolve by table order", func() {
			Expect(category).To(Equal(CategoryApparel))
		})
	})

	When("no keyword matches", func() {
		BeforeEach(func() {
			description = "Misc Hardware 4711"
		})

		It("should return OTHER", func() {
			Expect(category).To(Equal(CategoryOther))
		})
	})

	When("the description is empty", func() {
		BeforeEach(func() {
			description = ""
		})

		It("should still return a category", func() {
			Expect(category).To(Equal(CategoryOther))
		})
	})
})

var _ = Describe("CategorizeReceipt", func() {
	var (
		text     string
		category Category
	)

	JustBeforeEach(func() {
		category = CategorizeReceipt(text)
	})

	When("the text names a coffee chain", func() {
		BeforeEach(func() {
			text = "Starbucks receipt total $5.00"
		})

		It("should return MEALS", func() {
			Expect(category).To(Equal(CategoryMeals))
		})
	})

	When("the text names a rideshare company", func() {
		BeforeEach(func() {
			text = "UBER TRIP 2024-01-15 $23.10"
		})

		It("should return TRAVEL", func() {
			Expect(category).To(Equal(CategoryTravel))
		})
	})

	When("the text names an office supply store", func() {
		BeforeEach(func() {
			text = "staples order confirmation"
		})

		It("should return OFFICE_SUPPLIES", func() {
			Expect(category).To(Equal(CategoryOfficeSupplies))
		})
	})

	When("no merchant keyword matches", func() {
		BeforeEach(func() {
			text = "CORNER GROCERY\nMilk $2.49"
		})

		It("should return UNCATEGORIZED", func() {
			Expect(category).To(Equal(CategoryUncategorized))
		})
	})

	When("the text is empty", func() {
		BeforeEach(func() {
			text = ""
		})

		It("should return UNCATEGORIZED", func() {
			Expect(category).To(Equal(CategoryUncategorized))
		})
	})
})
