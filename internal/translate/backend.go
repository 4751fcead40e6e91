package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Backend is one translation engine. LanguageID maps an ISO-639-1 code onto
// the backend's internal identifier; an unmapped code means the pair is
// unsupported and the orchestrator falls back to passthrough.
type Backend interface {
	LanguageID(code string) (string, bool)
	Translate(ctx context.Context, text, sourceID, targetID string) (string, error)
}

// indicLanguageIDs maps ISO codes onto the local inference server's
// flores-style identifiers.
var indicLanguageIDs = map[string]string{
	"en": "eng_Latn",
	"hi": "hin_Deva",
	"ta": "tam_Taml",
	"te": "tel_Telu",
	"kn": "kan_Knda",
	"ml": "mal_Mlym",
	"bn": "ben_Beng",
	"mr": "mar_Deva",
	"gu": "guj_Gujr",
	"pa": "pan_Guru",
	"or": "ory_Orya",
	"ur": "urd_Arab",
}

// HTTPBackend talks to a local IndicTrans-style inference server over HTTP.
type HTTPBackend struct {
	baseURL string
	http    *http.Client
}

func NewHTTPBackend(baseURL string, timeout time.Duration) *HTTPBackend {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPBackend{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (b *HTTPBackend) Enabled() bool {
	return b != nil && b.baseURL != ""
}

func (b *HTTPBackend) LanguageID(code string) (string, bool) {
	id, ok := indicLanguageIDs[code]
	return id, ok
}

type indicRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"src_lang"`
	TargetLang string `json:"tgt_lang"`
	// Beam search with no sampling: identical input must produce
	// identical output.
	NumBeams  int  `json:"num_beams"`
	DoSample  bool `json:"do_sample"`
}

type indicResponse struct {
	Translation string `json:"translation"`
	Error       string `json:"error,omitempty"`
}

func (b *HTTPBackend) Translate(ctx context.Context, text, sourceID, targetID string) (string, error) {
	if !b.Enabled() {
		return "", fmt.Errorf("translation backend is not configured")
	}

	payload, err := json.Marshal(indicRequest{
		Text:       text,
		SourceLang: sourceID,
		TargetLang: targetID,
		NumBeams:   4,
		DoSample:   false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("translate backend status %d: %s", resp.StatusCode, string(body))
	}

	var parsed indicResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("translate backend error: %s", parsed.Error)
	}
	if strings.TrimSpace(parsed.Translation) == "" {
		return "", fmt.Errorf("empty translation from backend")
	}
	return parsed.Translation, nil
}
