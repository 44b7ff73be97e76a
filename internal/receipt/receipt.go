package receipt

import (
	"time"

	"github.com/mkessler/receipt-ledger/internal/parse"
)

// Record is one processed receipt. It is assembled once by the service
// and never modified after the store assigns its ID.
type Record struct {
	ID        int64        `json:"id"`
	Timestamp time.Time    `json:"timestamp"`
	Text      string       `json:"text"` // verbatim OCR output
	Items     []parse.Item `json:"items"`
	Vendor    string       `json:"vendor"`
	Amount    float64      `json:"amount"`
	Date      string       `json:"date"`
}
