package diagnosis

import "testing"

func TestDiagnoseCommonCold(t *testing.T) {
	m := NewMatcher()
	got := m.Diagnose([]string{"runny nose", "sneezing", "sore throat"}, 30, "male")
	if len(got) == 0 {
		t.Fatalf("no candidates for classic cold symptoms")
	}
	if got[0].Condition != "Common Cold" {
		t.Fatalf("top candidate=%s, want Common Cold", got[0].Condition)
	}
	if got[0].Confidence <= 0 || got[0].Confidence > 95 {
		t.Fatalf("confidence=%d, want in (0,95]", got[0].Confidence)
	}
	if len(got[0].MatchingSymptoms) == 0 {
		t.Fatalf("no matching symptoms reported")
	}
}

func TestDiagnoseEmptyInput(t *testing.T) {
	m := NewMatcher()
	if got := m.Diagnose(nil, 30, "male"); len(got) != 0 {
		t.Fatalf("got %d candidates for empty input, want 0", len(got))
	}
}

func TestDiagnoseCapsAndBounds(t *testing.T) {
	m := NewMatcher()
	got := m.Diagnose([]string{"fever", "headache", "fatigue", "nausea", "vomiting", "body ache", "weakness"}, 40, "male")
	if len(got) > 5 {
		t.Fatalf("got %d candidates, want at most 5", len(got))
	}
	for _, c := range got {
		if c.Confidence < 0 || c.Confidence > 95 {
			t.Fatalf("%s confidence=%d out of [0,95]", c.Condition, c.Confidence)
		}
		if len(c.MatchingSymptoms) > 5 {
			t.Fatalf("%s reports %d matching symptoms, want at most 5", c.Condition, len(c.MatchingSymptoms))
		}
	}
}

func TestDiagnoseUTIFemaleAdjustment(t *testing.T) {
	m := NewMatcher()
	symptoms := []string{"burning urination", "frequent urination", "cloudy urine"}

	male := m.Diagnose(symptoms, 25, "male")
	female := m.Diagnose(symptoms, 25, "FEMALE")
	if len(male) == 0 || len(female) == 0 {
		t.Fatalf("missing candidates: male=%d female=%d", len(male), len(female))
	}
	if male[0].Condition != "UTI (Urinary Tract Infection)" {
		t.Fatalf("top candidate=%s, want UTI", male[0].Condition)
	}
	if female[0].Confidence < male[0].Confidence {
		t.Fatalf("female confidence %d < male %d, want boost", female[0].Confidence, male[0].Confidence)
	}
}

func TestDiagnoseArthritisAgeAdjustment(t *testing.T) {
	m := NewMatcher()
	symptoms := []string{"joint pain", "joint stiffness", "reduced flexibility"}

	young := m.Diagnose(symptoms, 30, "male")
	old := m.Diagnose(symptoms, 65, "male")
	if len(young) == 0 || len(old) == 0 {
		t.Fatalf("missing candidates: young=%d old=%d", len(young), len(old))
	}
	if old[0].Confidence < young[0].Confidence {
		t.Fatalf("age 65 confidence %d < age 30 %d, want boost", old[0].Confidence, young[0].Confidence)
	}
}

func TestDiagnoseAdjustmentDoesNotResort(t *testing.T) {
	m := NewMatcher()
	// Ranking follows pre-adjustment similarity; a demographic boost on a
	// lower-ranked condition must not move it above a stronger match.
	got := m.Diagnose([]string{"runny nose", "sneezing", "sore throat"}, 60, "female")
	if len(got) == 0 || got[0].Condition != "Common Cold" {
		t.Fatalf("top candidate changed by demographics: %+v", got)
	}
}

func TestDiagnoseNoiseInputSurfacesNothing(t *testing.T) {
	m := NewMatcher()
	if got := m.Diagnose([]string{"qqq zzz xxx"}, 30, "male"); len(got) != 0 {
		t.Fatalf("got %d candidates for vocabulary-free input, want 0", len(got))
	}
}
