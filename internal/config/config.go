package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type ServerConfig struct {
	HTTPAddr         string
	DBDSN            string
	LLMModel         string
	OpenAIBaseURL    string
	OpenAIAPIKey     string
	TranslateBackend string
	IndicServerURL   string
	TranslateKeys    []string
	TranslateModel   string
	CachePath        string
	DefaultLanguage  string
	ChatHistoryLimit int
	BackendTimeout   time.Duration
}

func LoadServerConfig() (ServerConfig, error) {
	cfg := ServerConfig{
		HTTPAddr:         getenvDefault("AROGYA_HTTP_ADDR", ":9040"),
		DBDSN:            os.Getenv("DB_DSN"),
		LLMModel:         getenvDefault("LLM_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:    getenvDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		TranslateBackend: getenvDefault("TRANSLATE_BACKEND", "llm"),
		IndicServerURL:   os.Getenv("INDIC_SERVER_URL"),
		TranslateKeys:    splitKeys(os.Getenv("TRANSLATE_API_KEYS")),
		TranslateModel:   getenvDefault("TRANSLATE_MODEL", "gpt-4o-mini"),
		CachePath:        getenvDefault("TRANSLATION_CACHE_PATH", "data/translations.json"),
		DefaultLanguage:  getenvDefault("DEFAULT_LANGUAGE", "en"),
		ChatHistoryLimit: getenvIntDefault("CHAT_HISTORY_LIMIT", 20),
		BackendTimeout:   time.Duration(getenvIntDefault("BACKEND_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	if cfg.OpenAIAPIKey == "" {
		return ServerConfig{}, fmt.Errorf("OPENAI_API_KEY is required")
	}
	switch cfg.TranslateBackend {
	case "llm", "indic", "none":
	default:
		return ServerConfig{}, fmt.Errorf("unsupported TRANSLATE_BACKEND: %s", cfg.TranslateBackend)
	}
	if cfg.TranslateBackend == "indic" && cfg.IndicServerURL == "" {
		return ServerConfig{}, fmt.Errorf("INDIC_SERVER_URL is required when TRANSLATE_BACKEND=indic")
	}
	// LLM translation with no dedicated keys falls back to the main key.
	if len(cfg.TranslateKeys) == 0 {
		cfg.TranslateKeys = []string{cfg.OpenAIAPIKey}
	}

	return cfg, nil
}

func splitKeys(raw string) []string {
	var keys []string
	for _, part := range strings.Split(raw, ",") {
		if k := strings.TrimSpace(part); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func getenvDefault(key, val string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return val
}

func getenvIntDefault(key string, val int) int {
	v := os.Getenv(key)
	if v == "" {
		return val
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return val
	}
	return n
}
