package domain

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentSymptomReport    Intent = "symptom_report"
	IntentEducational      Intent = "educational"
	IntentMedicationQuery  Intent = "medication_query"
	IntentEmergency        Intent = "emergency"
	IntentFollowup         Intent = "followup"
	IntentLifestyle        Intent = "lifestyle"
	IntentMentalHealth     Intent = "mental_health"
	IntentGreeting         Intent = "greeting"
	IntentClarification    Intent = "clarification"
	IntentSecondOpinion    Intent = "second_opinion"
	IntentDiagnosisRequest Intent = "diagnosis_request"
	IntentTestQuery        Intent = "test_query"
	IntentPrevention       Intent = "prevention"
	IntentSideEffects      Intent = "side_effects"
	IntentUnknown          Intent = "unknown"
)

// Urgency is the care tier attached to a known condition.
type Urgency string

const (
	UrgencySelfCare   Urgency = "self_care"
	UrgencyRoutine    Urgency = "routine"
	UrgencyDoctorSoon Urgency = "doctor_soon"
	UrgencyUrgent     Urgency = "urgent"
	UrgencyEmergency  Urgency = "emergency"
)

// IntentResult is produced fresh per inbound message and never persisted.
type IntentResult struct {
	PrimaryIntent     Intent   `json:"primary_intent"`
	Confidence        float64  `json:"confidence"`
	SecondaryIntent   Intent   `json:"secondary_intent,omitempty"`
	IsQuestion        bool     `json:"is_question"`
	LanguageDetected  string   `json:"language_detected"`
	MedicalEntities   []string `json:"medical_entities,omitempty"`
	PromptStrategy    string   `json:"prompt_strategy"`
	ResponseTone      string   `json:"response_tone"`
	ShouldAskFollowup bool     `json:"should_ask_followup"`
}

// ConditionEntry is one row of the static condition knowledge base.
// Loaded once at construction, never mutated.
type ConditionEntry struct {
	Name       string
	Symptoms   []string
	Urgency    Urgency
	Specialist string
}

type DiagnosisCandidate struct {
	Condition        string   `json:"condition"`
	Confidence       int      `json:"confidence"`
	Urgency          Urgency  `json:"urgency"`
	MatchingSymptoms []string `json:"matching_symptoms,omitempty"`
	Specialist       string   `json:"specialist,omitempty"`
}

// Turn is a single prior conversation message. Role is "user" or "assistant".
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Message   string `json:"message"`
	Language  string `json:"language,omitempty"`
	History   []Turn `json:"history,omitempty"`
	Age       int    `json:"age,omitempty"`
	Gender    string `json:"gender,omitempty"`
}

type ChatResponse struct {
	SessionID     string               `json:"session_id"`
	Reply         string               `json:"reply"`
	Language      string               `json:"language"`
	Intent        IntentResult         `json:"intent"`
	EmergencyType string               `json:"emergency_type,omitempty"`
	Candidates    []DiagnosisCandidate `json:"diagnosis_candidates,omitempty"`
	Translated    bool                 `json:"translated"`
}

type LLMRequest struct {
	Model       string
	System      string
	Messages    []Turn
	Temperature float32
}
