package ocr

import "errors"

// Failure classes surfaced to callers. Handlers use these to report a
// distinguishing reason instead of a generic processing error.
var (
	// ErrNoTextDetected means the backend ran but found no readable text
	ErrNoTextDetected = errors.New("no text detected in image")

	// ErrMalformedImage means the upload could not be decoded as an image or PDF
	ErrMalformedImage = errors.New("malformed image")
)

// Recognizer defines the interface for OCR backends
type Recognizer interface {
	// RecognizeText extracts the full text content of a receipt image.
	// An empty result is reported as ErrNoTextDetected, never as an
	// empty string with a nil error.
	RecognizeText(imageData []byte, contentType string) (string, error)

	// Close closes the recognizer and releases resources
	Close() error
}
