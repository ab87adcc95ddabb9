package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"
)

// Translator is a best-effort LibreTranslate client. Stored documents are
// English; translation only localizes responses and must never fail a
// request, so every error path falls back to the original text.
type Translator struct {
	BaseURL string
	Client  *http.Client
}

// NewTranslator reads LIBRETRANSLATE_URL, defaulting to the public instance.
func NewTranslator() *Translator {
	baseURL := os.Getenv("LIBRETRANSLATE_URL")
	if baseURL == "" {
		baseURL = "https://libretranslate.com"
	}
	return &Translator{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// TranslateText translates text from English into targetLang. A target of
// "en" or "" returns the input without calling the API.
func (t *Translator) TranslateText(ctx context.Context, text, targetLang string) string {
	if text == "" || targetLang == "" || targetLang == "en" {
		return text
	}

	reqBody := translateRequest{
		Q:      text,
		Source: "en",
		Target: targetLang,
		Format: "text",
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return text
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.BaseURL+"/translate", bytes.NewBuffer(bodyBytes))
	if err != nil {
		return text
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		log.Printf("translate: %v", err)
		return text
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return text
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.TranslatedText == "" {
		return text
	}

	return out.TranslatedText
}

// TranslateFields translates each element, keeping originals on failure.
func (t *Translator) TranslateFields(ctx context.Context, fields []string, targetLang string) []string {
	if len(fields) == 0 || targetLang == "" || targetLang == "en" {
		return fields
	}
	out := make([]string, len(fields))
	for i, text := range fields {
		out[i] = t.TranslateText(ctx, text, targetLang)
	}
	return out
}
