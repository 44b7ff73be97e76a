package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Tesseract implements the Recognizer interface against a
// tesseract-server sidecar, for running without a cloud dependency.
type Tesseract struct {
	baseURL  string
	language string
	client   *http.Client
}

// NewTesseract creates a new Tesseract Recognizer instance
func NewTesseract(baseURL string, language string) (*Tesseract, error) {
	if baseURL == "" {
		baseURL = "http://localhost:8884"
	}
	if language == "" {
		language = "eng"
	}

	return &Tesseract{
		baseURL:  baseURL,
		language: language,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// tesseractResponse mirrors the tesseract-server result envelope
type tesseractResponse struct {
	Data struct {
		Stdout string `json:"stdout"`
		Stderr string `json:"stderr"`
		Exit   struct {
			Code int `json:"code"`
		} `json:"exit"`
	} `json:"data"`
}

// RecognizeText extracts the text content of a receipt image
func (t *Tesseract) RecognizeText(imageData []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pngData, err := prepareImage(imageData, contentType)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	options := fmt.Sprintf(`{"languages":[%q]}`, t.language)
	if err := form.WriteField("options", options); err != nil {
		return "", fmt.Errorf("writing options field: %w", err)
	}

	part, err := form.CreateFormFile("file", "receipt.png")
	if err != nil {
		return "", fmt.Errorf("creating file field: %w", err)
	}
	if _, err := part.Write(pngData); err != nil {
		return "", fmt.Errorf("writing file field: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("closing form: %w", err)
	}

	url := fmt.Sprintf("%s/tesseract", t.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, &body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling tesseract API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("tesseract API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result tesseractResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if result.Data.Exit.Code != 0 {
		return "", fmt.Errorf("tesseract exited with code %d: %s", result.Data.Exit.Code, result.Data.Stderr)
	}

	text := strings.TrimSpace(result.Data.Stdout)
	if text == "" {
		return "", ErrNoTextDetected
	}

	return text, nil
}

// Close closes the Tesseract client (no-op for HTTP client)
func (t *Tesseract) Close() error {
	return nil
}
