package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"arogya/internal/db"
	"arogya/internal/diagnosis"
	"arogya/internal/domain"
	"arogya/internal/emergency"
	"arogya/internal/intent"
	"arogya/internal/llm"
	"arogya/internal/strategy"
	"arogya/internal/translate"
)

// Service runs the per-message pipeline: normalize input, classify,
// short-circuit emergencies, assess symptoms, generate the English response,
// localize it.
type Service struct {
	classifier *intent.Classifier
	matcher    *diagnosis.Matcher
	translator *translate.Orchestrator
	provider   llm.Provider
	store      *db.Store

	llmModel        string
	historyLimit    int
	defaultLanguage string
	logger          *slog.Logger
}

type Config struct {
	LLMModel         string
	ChatHistoryLimit int
	DefaultLanguage  string
}

// New wires the pipeline. store and translator may be nil: without a store
// history comes from the request; without a translator responses stay in
// English.
func New(cfg Config, classifier *intent.Classifier, matcher *diagnosis.Matcher, translator *translate.Orchestrator, provider llm.Provider, store *db.Store, logger *slog.Logger) *Service {
	if cfg.ChatHistoryLimit <= 0 {
		cfg.ChatHistoryLimit = 20
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "en"
	}
	return &Service{
		classifier:      classifier,
		matcher:         matcher,
		translator:      translator,
		provider:        provider,
		store:           store,
		llmModel:        cfg.LLMModel,
		historyLimit:    cfg.ChatHistoryLimit,
		defaultLanguage: cfg.DefaultLanguage,
		logger:          logger,
	}
}

func (s *Service) HandleChat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	start := time.Now()

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return domain.ChatResponse{}, fmt.Errorf("message is required")
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	// Normalize native-script input to English before classification.
	englishText := message
	if s.translator != nil {
		detection := s.translator.DetectAndTranslateToEnglish(ctx, message)
		if detection.WasTranslated && strings.TrimSpace(detection.English) != "" {
			englishText = detection.English
		}
	}

	history := req.History
	if s.store != nil {
		stored, err := s.store.RecentMessages(ctx, sessionID, s.historyLimit)
		if err != nil {
			s.logger.Warn("load history failed", "session_id", sessionID, "error", err)
		} else if len(stored) > 0 {
			history = stored
		}
	}

	result := s.classifier.Classify(englishText, history)
	targetLang := s.targetLanguage(req.Language, result.LanguageDetected)

	resp := domain.ChatResponse{
		SessionID: sessionID,
		Language:  targetLang,
		Intent:    result,
	}

	// Emergencies with a matching trigger set get the static safety script
	// verbatim: it is never generated and never translated.
	if result.PrimaryIntent == domain.IntentEmergency {
		if et, ok := emergency.Detect(englishText); ok {
			resp.Reply = emergency.Template(et)
			resp.EmergencyType = string(et)
			resp.Language = "en"
			s.persistTurns(ctx, sessionID, req.UserID, message, resp.Reply, result)
			s.logTiming(sessionID, result, start, true)
			return resp, nil
		}
	}

	systemPrompt := strategy.PromptFor(result)

	if result.PrimaryIntent == domain.IntentSymptomReport || result.PrimaryIntent == domain.IntentDiagnosisRequest {
		phrases := result.MedicalEntities
		if len(phrases) == 0 {
			phrases = []string{englishText}
		}
		resp.Candidates = s.matcher.Diagnose(phrases, req.Age, req.Gender)
		if len(resp.Candidates) > 0 {
			systemPrompt += "\n\n" + formatCandidates(resp.Candidates)
		}
	}

	messages := append(append([]domain.Turn{}, history...), domain.Turn{Role: "user", Content: englishText})
	reply, err := s.provider.Complete(ctx, domain.LLMRequest{
		Model:       s.llmModel,
		System:      systemPrompt,
		Messages:    messages,
		Temperature: 0.4,
	})
	if err != nil {
		return domain.ChatResponse{}, fmt.Errorf("generate response: %w", err)
	}

	resp.Reply = reply
	if targetLang != "en" && s.translator != nil {
		localized, outcome := s.translator.TranslateDetailed(ctx, translate.Request{
			Text:            reply,
			SourceLang:      "en",
			TargetLang:      targetLang,
			PreserveMedical: true,
		})
		resp.Reply = localized
		switch outcome {
		case translate.OutcomePrecached, translate.OutcomeCacheHit, translate.OutcomeTranslated:
			resp.Translated = true
		default:
			// Worst case the user sees English, never an error.
			resp.Language = "en"
		}
	}

	s.persistTurns(ctx, sessionID, req.UserID, message, resp.Reply, result)
	s.logTiming(sessionID, result, start, false)
	return resp, nil
}

func (s *Service) targetLanguage(hint, detected string) string {
	if hint != "" {
		return hint
	}
	if detected != "" && detected != "en" {
		return detected
	}
	return s.defaultLanguage
}

func (s *Service) persistTurns(ctx context.Context, sessionID, userID, userText, reply string, result domain.IntentResult) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveMessage(ctx, sessionID, userID, "user", userText, result.LanguageDetected, string(result.PrimaryIntent)); err != nil {
		s.logger.Warn("persist user turn failed", "session_id", sessionID, "error", err)
		return
	}
	if err := s.store.SaveMessage(ctx, sessionID, userID, "assistant", reply, result.LanguageDetected, string(result.PrimaryIntent)); err != nil {
		s.logger.Warn("persist assistant turn failed", "session_id", sessionID, "error", err)
	}
}

func (s *Service) logTiming(sessionID string, result domain.IntentResult, start time.Time, shortCircuit bool) {
	s.logger.Info("chat handled",
		"session_id", sessionID,
		"intent", result.PrimaryIntent,
		"confidence", result.Confidence,
		"language", result.LanguageDetected,
		"emergency_short_circuit", shortCircuit,
		"total_ms", time.Since(start).Milliseconds(),
	)
}

// formatCandidates folds the matcher's ranking into the system instruction.
// Possibilities, not a diagnosis: the prompt template frames them that way.
func formatCandidates(candidates []domain.DiagnosisCandidate) string {
	var sb strings.Builder
	sb.WriteString("Candidate conditions from the heuristic symptom matcher, most likely first:\n")
	for i, c := range candidates {
		sb.WriteString(fmt.Sprintf("%d. %s (confidence %d%%, urgency %s", i+1, c.Condition, c.Confidence, c.Urgency))
		if c.Specialist != "" {
			sb.WriteString(", specialist: " + c.Specialist)
		}
		sb.WriteString(")\n")
	}
	return strings.TrimSpace(sb.String())
}
