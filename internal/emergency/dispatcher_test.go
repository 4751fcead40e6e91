package emergency

import (
	"strings"
	"testing"
)

func TestDetectHeartAttack(t *testing.T) {
	got, ok := Detect("I have chest pain and my left arm hurts")
	if !ok || got != TypeHeartAttack {
		t.Fatalf("got (%s,%v), want (heart_attack,true)", got, ok)
	}
}

func TestDetectEachCategory(t *testing.T) {
	cases := []struct {
		message string
		want    Type
	}{
		{"sudden chest tightness while climbing stairs", TypeHeartAttack},
		{"his speech is slurred speech and face drooping", TypeStroke},
		{"she says she can't breathe", TypeBreathing},
		{"i want to die", TypeSuicide},
	}
	for _, tc := range cases {
		got, ok := Detect(tc.message)
		if !ok || got != tc.want {
			t.Fatalf("Detect(%q)=(%s,%v), want (%s,true)", tc.message, got, ok, tc.want)
		}
	}
}

func TestDetectOrderBreaksTies(t *testing.T) {
	// Mentions both chest pain and suicide; heart_attack is checked first.
	got, ok := Detect("chest pain and i want to die")
	if !ok || got != TypeHeartAttack {
		t.Fatalf("got (%s,%v), want (heart_attack,true)", got, ok)
	}
}

func TestDetectNoMatch(t *testing.T) {
	if got, ok := Detect("i have a mild headache"); ok {
		t.Fatalf("unexpected emergency %s for mild message", got)
	}
}

func TestTemplatesCarryHelplines(t *testing.T) {
	for _, typ := range []Type{TypeHeartAttack, TypeStroke, TypeBreathing} {
		if !strings.Contains(Template(typ), "108") {
			t.Fatalf("template %s missing ambulance number", typ)
		}
	}
	if !strings.Contains(Template(TypeSuicide), "1800-599-0019") {
		t.Fatalf("suicide template missing helpline number")
	}
}
