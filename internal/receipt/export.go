package receipt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV flattens records into CSV, one row per line item. The date
// column is the date portion of the record timestamp, and prices keep
// their natural decimal form (2.5 stays 2.5, not 2.50).
func WriteCSV(w io.Writer, records []*Record) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Receipt ID", "Date", "Item", "Price"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, record := range records {
		date := record.Timestamp.Format("2006-01-02")
		for _, item := range record.Items {
			row := []string{
				strconv.FormatInt(record.ID, 10),
				date,
				item.Description,
				strconv.FormatFloat(item.Price, 'f', -1, 64),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("writing csv row: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
