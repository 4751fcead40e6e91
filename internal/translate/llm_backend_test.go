package translate

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestRotationRetriesWithNextKey(t *testing.T) {
	b := NewLLMBackend([]string{"k1", "k2"}, "", "")
	var used []string
	b.chat = func(_ context.Context, apiKey, _, _ string) (string, error) {
		used = append(used, apiKey)
		if apiKey == "k1" {
			return "", errors.New("429 rate limit exceeded")
		}
		return "translated", nil
	}

	got, err := b.Translate(context.Background(), "hello", "English", "Hindi")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "translated" {
		t.Fatalf("got %q", got)
	}
	if len(used) != 2 || used[0] != "k1" || used[1] != "k2" {
		t.Fatalf("key sequence %v, want [k1 k2]", used)
	}
}

func TestRotationAllKeysExhausted(t *testing.T) {
	b := NewLLMBackend([]string{"k1", "k2", "k3"}, "", "")
	calls := 0
	b.chat = func(_ context.Context, _, _, _ string) (string, error) {
		calls++
		return "", errors.New("insufficient quota")
	}

	_, err := b.Translate(context.Background(), "hello", "English", "Hindi")
	if !errors.Is(err, ErrAllKeysCoolingDown) {
		t.Fatalf("got %v, want ErrAllKeysCoolingDown", err)
	}
	if calls != 3 {
		t.Fatalf("made %d attempts, want one per key", calls)
	}
}

func TestNonRateLimitErrorPropagatesImmediately(t *testing.T) {
	b := NewLLMBackend([]string{"k1", "k2"}, "", "")
	calls := 0
	wantErr := errors.New("invalid request")
	b.chat = func(_ context.Context, _, _, _ string) (string, error) {
		calls++
		return "", wantErr
	}

	_, err := b.Translate(context.Background(), "hello", "English", "Hindi")
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want wrapped original error", err)
	}
	if calls != 1 {
		t.Fatalf("made %d attempts, want 1 without rotation", calls)
	}
}

func TestTranslateRejectsEmptyOutput(t *testing.T) {
	b := NewLLMBackend([]string{"k1"}, "", "")
	b.chat = func(_ context.Context, _, _, _ string) (string, error) {
		return "   ", nil
	}
	if _, err := b.Translate(context.Background(), "hello", "English", "Hindi"); err == nil {
		t.Fatal("want error on blank model output")
	}
}

func TestDetectAndTranslateParsesAnyCasePrefixes(t *testing.T) {
	b := NewLLMBackend([]string{"k1"}, "", "")
	b.chat = func(_ context.Context, _, _, _ string) (string, error) {
		return "LANGUAGE: Tamil\ntranslation: I need medicine", nil
	}

	english, detected, err := b.DetectAndTranslate(context.Background(), "எனக்கு மருந்து வேண்டும்")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if detected != "Tamil" || english != "I need medicine" {
		t.Fatalf("got (%q,%q)", english, detected)
	}
}

func TestDetectAndTranslateMissingLine(t *testing.T) {
	b := NewLLMBackend([]string{"k1"}, "", "")
	b.chat = func(_ context.Context, _, _, _ string) (string, error) {
		return "Language: Tamil", nil
	}

	_, detected, err := b.DetectAndTranslate(context.Background(), "மருந்து")
	if err == nil {
		t.Fatal("want error on missing translation line")
	}
	if detected != "unknown" {
		t.Fatalf("detected=%q, want unknown", detected)
	}
}

func TestIsRateLimited(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("rate limit reached"), true},
		{errors.New("You exceeded your current quota"), true},
		{errors.New("RESOURCE EXHAUSTED"), true},
		{fmt.Errorf("status 429 from upstream"), true},
		{errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		if got := isRateLimited(tc.err); got != tc.want {
			t.Fatalf("isRateLimited(%v)=%v, want %v", tc.err, got, tc.want)
		}
	}
}
