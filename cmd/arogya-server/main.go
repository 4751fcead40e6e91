package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"arogya/internal/config"
	"arogya/internal/db"
	"arogya/internal/diagnosis"
	"arogya/internal/domain"
	"arogya/internal/intent"
	"arogya/internal/llm"
	"arogya/internal/orchestrator"
	"arogya/internal/translate"
)

func main() {
	_ = godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadServerConfig()
	if err != nil {
		logger.Error("load config failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store *db.Store
	if cfg.DBDSN != "" {
		store, err = db.New(ctx, cfg.DBDSN)
		if err != nil {
			logger.Error("connect db failed", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		if err := store.Migrate(ctx); err != nil {
			logger.Error("migrate db failed", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Info("DB_DSN not set, running without conversation persistence")
	}

	provider := llm.NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey)

	var backend translate.Backend
	llmBackend := translate.NewLLMBackend(cfg.TranslateKeys, cfg.TranslateModel, cfg.OpenAIBaseURL)
	switch cfg.TranslateBackend {
	case "indic":
		backend = translate.NewHTTPBackend(cfg.IndicServerURL, cfg.BackendTimeout)
	case "llm":
		backend = llmBackend
	case "none":
		backend = nil
	}
	translator := translate.NewOrchestrator(translate.Config{
		Backend:   backend,
		LLM:       llmBackend,
		CachePath: cfg.CachePath,
	}, logger)

	classifier := intent.NewClassifier()
	matcher := diagnosis.NewMatcher()

	svc := orchestrator.New(orchestrator.Config{
		LLMModel:         cfg.LLMModel,
		ChatHistoryLimit: cfg.ChatHistoryLimit,
		DefaultLanguage:  cfg.DefaultLanguage,
	}, classifier, matcher, translator, provider, store, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Post("/v1/chat", func(w http.ResponseWriter, req *http.Request) {
		var chatReq domain.ChatRequest
		if err := json.NewDecoder(req.Body).Decode(&chatReq); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
			return
		}
		if chatReq.Message == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "message is required"})
			return
		}

		resp, err := svc.HandleChat(req.Context(), chatReq)
		if err != nil {
			logger.Error("chat failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})

	r.Post("/v1/diagnose", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Symptoms []string `json:"symptoms"`
			Age      int      `json:"age"`
			Gender   string   `json:"gender"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"candidates": matcher.Diagnose(body.Symptoms, body.Age, body.Gender),
		})
	})

	r.Post("/v1/translate", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Text       string `json:"text"`
			TargetLang string `json:"target_lang"`
			SourceLang string `json:"source_lang"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
			return
		}
		if body.Text == "" || body.TargetLang == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "text and target_lang are required"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"text": translator.Translate(req.Context(), body.Text, body.TargetLang, body.SourceLang),
		})
	})

	if store != nil {
		r.Get("/v1/sessions/{sessionID}", func(w http.ResponseWriter, req *http.Request) {
			sessionID := chi.URLParam(req, "sessionID")
			info, err := store.GetSession(req.Context(), sessionID)
			if errors.Is(err, db.ErrSessionNotFound) {
				writeJSON(w, http.StatusNotFound, map[string]any{"error": "session not found"})
				return
			}
			if err != nil {
				logger.Error("load session failed", "error", err)
				writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal error"})
				return
			}
			history, err := store.RecentMessages(req.Context(), sessionID, cfg.ChatHistoryLimit)
			if err != nil {
				logger.Error("load session history failed", "error", err)
				writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal error"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"session": info, "history": history})
		})
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("arogya server started", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("received shutdown signal")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
