package receipt

import (
	"bytes"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mkessler/receipt-ledger/internal/parse"
)

var _ = Describe("WriteCSV", func() {
	var (
		records []*Record
		output  string
		err     error
	)

	JustBeforeEach(func() {
		var buf bytes.Buffer
		err = WriteCSV(&buf, records)
		output = buf.String()
	})

	When("records carry items", func() {
		BeforeEach(func() {
			records = []*Record{
				{
					ID:        1,
					Timestamp: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
					Items: []parse.Item{
						{Description: "Coffee", Price: 3.99, Category: parse.CategoryBeverage},
						{Description: "Bagel", Price: 2.50, Category: parse.CategoryFood},
					},
				},
				{
					ID:        2,
					Timestamp: time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC),
					Items: []parse.Item{
						{Description: "Pens", Price: 4.00, Category: parse.CategoryOther},
					},
				},
			}
		})

		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("should write the header row first", func() {
			Expect(output).To(HavePrefix("Receipt ID,Date,Item,Price"))
		})

		It("should write one row per item with the date portion of the timestamp", func() {
			Expect(output).To(ContainSubstring("1,2024-01-15,Coffee,3.99"))
			Expect(output).To(ContainSubstring("1,2024-01-15,Bagel,2.5"))
			Expect(output).To(ContainSubstring("2,2024-01-16,Pens,4"))
		})
	})

	When("a record has no items", func() {
		BeforeEach(func() {
			records = []*Record{
				{ID: 1, Timestamp: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
			}
		})

		It("should emit only the header", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(Equal("Receipt ID,Date,Item,Price\n"))
		})
	})
})
