package translate

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Outcome records what actually happened on a forward call, so callers and
// tests can tell "translated to an identical string" apart from "failed and
// echoed the input". The public string contract is unchanged.
type Outcome int

const (
	// OutcomeNoop: source and target language were the same.
	OutcomeNoop Outcome = iota
	// OutcomePrecached: served from the fixed phrase table.
	OutcomePrecached
	// OutcomeCacheHit: served from the in-memory cache.
	OutcomeCacheHit
	// OutcomeTranslated: fresh backend translation.
	OutcomeTranslated
	// OutcomePassthrough: unsupported pair or no backend; input returned.
	OutcomePassthrough
	// OutcomeFailed: backend errored; input returned.
	OutcomeFailed
)

const diskFlushEvery = 10

// Request is one forward translation call.
type Request struct {
	Text            string
	SourceLang      string
	TargetLang      string
	PreserveMedical bool
}

// Detection is the result of the reverse (native→English) direction.
type Detection struct {
	English       string `json:"english"`
	Language      string `json:"language"`
	WasTranslated bool   `json:"was_translated"`
}

// Orchestrator runs the tiered forward pipeline and the reverse
// detect-and-translate path. The caches and the miss counter are the only
// mutable state; both are mutex-guarded, so it is safe for concurrent use.
type Orchestrator struct {
	backend Backend
	llm     *LLMBackend
	cache   *Cache
	disk    *DiskStore
	logger  *slog.Logger

	missMu    sync.Mutex
	missCount int
}

type Config struct {
	// Backend handles the forward direction. May be nil: translation
	// degrades to passthrough.
	Backend Backend
	// LLM handles reverse detect-and-translate, and credential rotation
	// when it is also the forward backend. May be nil.
	LLM           *LLMBackend
	CacheCapacity int
	// CachePath enables the on-disk tier. Empty disables persistence.
	CachePath string
}

func NewOrchestrator(cfg Config, logger *slog.Logger) *Orchestrator {
	o := &Orchestrator{
		backend: cfg.Backend,
		llm:     cfg.LLM,
		cache:   NewCache(cfg.CacheCapacity),
		logger:  logger,
	}
	if cfg.CachePath != "" {
		o.disk = NewDiskStore(cfg.CachePath)
		entries, err := o.disk.Load()
		if err != nil {
			logger.Warn("load translation cache failed", "path", cfg.CachePath, "error", err)
		} else {
			o.cache.Warm(entries)
		}
	}
	return o
}

// Translate is the plain-string forward contract: best effort, never fails,
// worst case returns the input unchanged.
func (o *Orchestrator) Translate(ctx context.Context, text, targetLang, sourceLang string) string {
	out, _ := o.TranslateDetailed(ctx, Request{
		Text:            text,
		SourceLang:      sourceLang,
		TargetLang:      targetLang,
		PreserveMedical: true,
	})
	return out
}

// TranslateDetailed runs the forward pipeline in strict tier order; the
// first hit returns immediately.
func (o *Orchestrator) TranslateDetailed(ctx context.Context, req Request) (string, Outcome) {
	if req.SourceLang == "" {
		req.SourceLang = "en"
	}
	if req.TargetLang == req.SourceLang {
		return req.Text, OutcomeNoop
	}

	if req.SourceLang == "en" {
		if hit, ok := PrecachedPhrase(req.TargetLang, strings.TrimSpace(req.Text)); ok {
			return hit, OutcomePrecached
		}
	}

	key := CacheKey(req.SourceLang, req.TargetLang, req.Text)
	if hit, ok := o.cache.Get(key); ok {
		return hit, OutcomeCacheHit
	}

	if o.backend == nil {
		return req.Text, OutcomePassthrough
	}
	sourceID, ok := o.backend.LanguageID(req.SourceLang)
	if !ok {
		return req.Text, OutcomePassthrough
	}
	targetID, ok := o.backend.LanguageID(req.TargetLang)
	if !ok {
		return req.Text, OutcomePassthrough
	}

	input := req.Text
	var masked []string
	if req.PreserveMedical {
		input, masked = maskTerms(input)
	}

	translated, err := o.backend.Translate(ctx, input, sourceID, targetID)
	if err != nil {
		o.logger.Warn("translation failed, returning original text",
			"source", req.SourceLang, "target", req.TargetLang, "error", err)
		return req.Text, OutcomeFailed
	}
	if req.PreserveMedical {
		translated = unmaskTerms(translated, masked)
	}

	o.cache.Put(key, translated)
	o.recordMiss()

	return translated, OutcomeTranslated
}

// DetectAndTranslateToEnglish normalizes user input. ASCII text with enough
// common English health words short-circuits without a backend call; any
// backend failure degrades to the original text with language "unknown".
func (o *Orchestrator) DetectAndTranslateToEnglish(ctx context.Context, text string) Detection {
	if looksEnglish(text) {
		return Detection{English: text, Language: "english", WasTranslated: false}
	}
	if o.llm == nil || !o.llm.Enabled() {
		return Detection{English: text, Language: "unknown", WasTranslated: false}
	}

	english, detected, err := o.llm.DetectAndTranslate(ctx, text)
	if err != nil {
		o.logger.Warn("detect-and-translate failed", "error", err)
		return Detection{English: text, Language: "unknown", WasTranslated: false}
	}
	return Detection{
		English:       english,
		Language:      detected,
		WasTranslated: !strings.EqualFold(detected, "english"),
	}
}

// recordMiss counts fresh backend translations and flushes the whole
// in-memory cache to disk on every tenth one.
func (o *Orchestrator) recordMiss() {
	if o.disk == nil {
		return
	}
	o.missMu.Lock()
	o.missCount++
	flush := o.missCount%diskFlushEvery == 0
	o.missMu.Unlock()

	if !flush {
		return
	}
	if err := o.disk.Save(o.cache.Snapshot()); err != nil {
		o.logger.Warn("persist translation cache failed", "error", err)
	}
}

// Common English health vocabulary for the quick reverse-direction check.
var englishHealthWords = []string{
	"pain", "fever", "doctor", "medicine", "health", "symptom", "headache",
	"cough", "cold", "stomach", "blood", "pressure", "sugar", "tablet",
	"sleep", "chest", "breathing", "help", "feel", "hurt", "sick", "throat",
}

// looksEnglish: pure ASCII and at least two common health words.
func looksEnglish(text string) bool {
	for _, r := range text {
		if r > 127 {
			return false
		}
	}
	lowered := strings.ToLower(text)
	hits := 0
	for _, w := range englishHealthWords {
		if strings.Contains(lowered, w) {
			hits++
			if hits >= 2 {
				return true
			}
		}
	}
	return false
}
