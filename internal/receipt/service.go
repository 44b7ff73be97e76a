package receipt

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mkessler/receipt-ledger/internal/ocr"
	"github.com/mkessler/receipt-ledger/internal/parse"
)

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service assembles receipt records from uploaded images
type Service struct {
	store      Store
	recognizer ocr.Recognizer
	timeSource TimeSource
}

// NewService creates a new Service with the default time source
func NewService(store Store, recognizer ocr.Recognizer) *Service {
	return &Service{
		store:      store,
		recognizer: recognizer,
		timeSource: &defaultTimeSource{},
	}
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(store Store, recognizer ocr.Recognizer, timeSource TimeSource) *Service {
	return &Service{
		store:      store,
		recognizer: recognizer,
		timeSource: timeSource,
	}
}

// vendorFromText takes the first non-blank line as the vendor name,
// falling back to "Unknown". Receipts put the merchant in the header.
func vendorFromText(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return "Unknown"
}

// ProcessReceipt runs an uploaded image through OCR, parses the text
// into categorized items and metadata, and appends the assembled record
// to the store. Recognizer failures propagate to the caller; parse
// misses do not — missing metadata falls back to defaults here.
func (s *Service) ProcessReceipt(filename string, data []byte, contentType string) (*Record, error) {
	text, err := s.recognizer.RecognizeText(data, contentType)
	if err != nil {
		slog.Error("Failed to recognize receipt text",
			"filename", filename,
			"content_type", contentType,
			"file_size", len(data),
			"error", err,
		)
		return nil, fmt.Errorf("recognizing text: %w", err)
	}

	now := s.timeSource.Now()
	record := &Record{
		Timestamp: now,
		Text:      text,
		Items:     parse.ExtractItems(text),
		Vendor:    vendorFromText(text),
		Amount:    0,
		Date:      now.Format("2006-01-02"),
	}

	meta := parse.ParseMetadata(text)
	if meta.HasDate {
		record.Date = meta.Date
	}
	if meta.HasAmount {
		record.Amount = meta.Amount
	}

	stored, err := s.store.Append(record)
	if err != nil {
		return nil, fmt.Errorf("appending record: %w", err)
	}

	slog.Info("Processed receipt",
		"id", stored.ID,
		"vendor", stored.Vendor,
		"items", len(stored.Items),
		"amount", stored.Amount,
	)
	return stored, nil
}

// GetReceipt retrieves a record by ID
func (s *Service) GetReceipt(id int64) (*Record, error) {
	record, err := s.store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("getting record: %w", err)
	}
	return record, nil
}

// ListReceipts returns all records in insertion order
func (s *Service) ListReceipts() ([]*Record, error) {
	records, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	return records, nil
}

// ClassifyItem maps an item description to its category
func (s *Service) ClassifyItem(description string) parse.Category {
	return parse.ClassifyItem(description)
}

// CategorizeReceipt classifies an arbitrary text blob by merchant keywords
func (s *Service) CategorizeReceipt(text string) parse.Category {
	return parse.CategorizeReceipt(text)
}
