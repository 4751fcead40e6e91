package intent

import (
	"testing"

	"arogya/internal/domain"
)

func TestClassifyChestPainIsEmergency(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("chest pain and arm pain", nil)
	if got.PrimaryIntent != domain.IntentEmergency {
		t.Fatalf("intent=%s, want emergency", got.PrimaryIntent)
	}
	if got.Confidence != 1.0 {
		t.Fatalf("confidence=%.2f, want 1.0", got.Confidence)
	}
	if got.ShouldAskFollowup {
		t.Fatalf("should_ask_followup=true, want false for emergency")
	}
}

func TestClassifyEmergencyBeatsLongerContext(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("i was gardening all afternoon and now i have severe bleeding from my hand", nil)
	if got.PrimaryIntent != domain.IntentEmergency || got.Confidence != 1.0 {
		t.Fatalf("got (%s, %.2f), want (emergency, 1.0)", got.PrimaryIntent, got.Confidence)
	}
}

func TestClassifyWhatIsDiabetes(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("what is diabetes", nil)
	if got.PrimaryIntent != domain.IntentEducational {
		t.Fatalf("intent=%s, want educational", got.PrimaryIntent)
	}
	if got.Confidence < 0.85 {
		t.Fatalf("confidence=%.2f, want >= 0.85", got.Confidence)
	}
	if !got.IsQuestion {
		t.Fatalf("is_question=false, want true")
	}
	if len(got.MedicalEntities) != 1 || got.MedicalEntities[0] != "diabetes" {
		t.Fatalf("entities=%v, want [diabetes]", got.MedicalEntities)
	}
}

func TestClassifyExactGreeting(t *testing.T) {
	c := NewClassifier()
	for _, msg := range []string{"hi", "Hello!", "good morning", "thanks", "Namaste"} {
		got := c.Classify(msg, nil)
		if got.PrimaryIntent != domain.IntentGreeting {
			t.Fatalf("Classify(%q)=%s, want greeting", msg, got.PrimaryIntent)
		}
	}
}

func TestClassifyGreetingInsideSentenceIsNotGreeting(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("hello doctor, i have a fever since yesterday", nil)
	if got.PrimaryIntent == domain.IntentGreeting {
		t.Fatalf("partial greeting scored as greeting")
	}
	if got.PrimaryIntent != domain.IntentSymptomReport {
		t.Fatalf("intent=%s, want symptom_report", got.PrimaryIntent)
	}
}

func TestClassifySymptomScoreGrowsWithMatches(t *testing.T) {
	c := NewClassifier()
	one := c.Classify("i have a headache", nil)
	two := c.Classify("i have a headache and it hurts when i bend, pain in my neck too", nil)
	if one.PrimaryIntent != domain.IntentSymptomReport || two.PrimaryIntent != domain.IntentSymptomReport {
		t.Fatalf("intents=(%s,%s), want symptom_report both", one.PrimaryIntent, two.PrimaryIntent)
	}
	if two.Confidence <= one.Confidence {
		t.Fatalf("more matches did not raise score: %.2f <= %.2f", two.Confidence, one.Confidence)
	}
}

func TestClassifyMentalHealthCapped(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("i am so stressed and anxious lately, i cannot sleep and feel hopeless", nil)
	if got.PrimaryIntent != domain.IntentMentalHealth {
		t.Fatalf("intent=%s, want mental_health", got.PrimaryIntent)
	}
	if got.Confidence != 0.9 {
		t.Fatalf("confidence=%.2f, want capped at 0.9", got.Confidence)
	}
}

func TestClassifySecondaryIntent(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("i have a headache, which tablet should i take", nil)
	if got.PrimaryIntent != domain.IntentMedicationQuery {
		t.Fatalf("primary=%s, want medication_query", got.PrimaryIntent)
	}
	if got.SecondaryIntent != domain.IntentSymptomReport {
		t.Fatalf("secondary=%s, want symptom_report", got.SecondaryIntent)
	}
}

func TestClassifyTieBreakUsesDeclarationOrder(t *testing.T) {
	c := NewClassifier()
	// Educational and side_effects both score 0.85 here; educational is
	// declared earlier and must win.
	got := c.Classify("what is a side effect", nil)
	if got.PrimaryIntent != domain.IntentEducational {
		t.Fatalf("intent=%s, want educational on tie", got.PrimaryIntent)
	}
}

func TestClassifyEmptyMessageFallsBack(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("", nil)
	if got.PrimaryIntent != domain.IntentUnknown || got.Confidence != 0.3 {
		t.Fatalf("got (%s, %.2f), want (unknown, 0.3)", got.PrimaryIntent, got.Confidence)
	}

	history := []domain.Turn{{Role: "user", Content: "i have a cough"}}
	got = c.Classify("", history)
	if got.PrimaryIntent != domain.IntentFollowup || got.Confidence != 0.5 {
		t.Fatalf("got (%s, %.2f), want (followup, 0.5)", got.PrimaryIntent, got.Confidence)
	}
}

func TestClassifyUnmappedIntentGetsDefaultStrategy(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("xyzzy", nil)
	if got.PrimaryIntent != domain.IntentUnknown {
		t.Fatalf("intent=%s, want unknown", got.PrimaryIntent)
	}
	if got.PromptStrategy != "general_assistant" || got.ResponseTone != "professional" {
		t.Fatalf("strategy=(%s,%s), want (general_assistant,professional)", got.PromptStrategy, got.ResponseTone)
	}
}

func TestClassifyEntitiesInVocabularyOrder(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("my cough got worse and now there is fever", nil)
	if len(got.MedicalEntities) != 2 {
		t.Fatalf("entities=%v, want two", got.MedicalEntities)
	}
	// "fever" precedes "cough" in the vocabulary even though the message
	// mentions cough first.
	if got.MedicalEntities[0] != "fever" || got.MedicalEntities[1] != "cough" {
		t.Fatalf("entities=%v, want [fever cough]", got.MedicalEntities)
	}
}

func TestDetectLanguageScripts(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"எனக்கு காய்ச்சல் இருக்கிறது", "ta"},
		{"मुझे बुखार है", "hi"},
		{"నాకు జ్వరం ఉంది", "te"},
		{"ನನಗೆ ಜ್ವರ ಇದೆ", "kn"},
		{"എനിക്ക് പനിയുണ്ട്", "ml"},
		{"আমার জ্বর হয়েছে", "bn"},
		{"I have a fever", "en"},
		{"", "en"},
	}
	for _, tc := range cases {
		if got := DetectLanguage(tc.text); got != tc.want {
			t.Fatalf("DetectLanguage(%q)=%s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestClassifyHindiQuestionMarker(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("डेंगू क्या है", nil)
	if got.LanguageDetected != "hi" {
		t.Fatalf("language=%s, want hi", got.LanguageDetected)
	}
	if !got.IsQuestion {
		t.Fatalf("is_question=false, want true for Hindi question marker")
	}
}
