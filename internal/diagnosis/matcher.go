package diagnosis

import (
	"math"
	"sort"
	"strings"

	"arogya/internal/domain"
)

const (
	topKCandidates  = 7
	maxResults      = 5
	maxMatchDetail  = 5
	similarityFloor = 0.05
	confidenceCap   = 0.95
)

// Matcher ranks free-form symptom descriptions against the condition
// knowledge base. The TF-IDF space over unigrams and bigrams is built once at
// construction; per-query work is read-only, so a Matcher is safe for
// concurrent use.
type Matcher struct {
	entries []domain.ConditionEntry
	vocab   map[string]int
	idf     []float64
	vectors [][]float64
}

func NewMatcher() *Matcher {
	return NewMatcherWith(DefaultKnowledgeBase())
}

func NewMatcherWith(entries []domain.ConditionEntry) *Matcher {
	m := &Matcher{
		entries: entries,
		vocab:   make(map[string]int),
	}

	docs := make([][]string, len(entries))
	for i, e := range entries {
		docs[i] = tokenize(strings.ToLower(strings.Join(e.Symptoms, " ")))
		for _, t := range docs[i] {
			if _, ok := m.vocab[t]; !ok {
				m.vocab[t] = len(m.vocab)
			}
		}
	}

	df := make([]int, len(m.vocab))
	for _, doc := range docs {
		seen := make(map[int]struct{}, len(doc))
		for _, t := range doc {
			seen[m.vocab[t]] = struct{}{}
		}
		for col := range seen {
			df[col]++
		}
	}

	n := float64(len(docs))
	m.idf = make([]float64, len(m.vocab))
	for col, count := range df {
		m.idf[col] = math.Log((1+n)/(1+float64(count))) + 1
	}

	m.vectors = make([][]float64, len(docs))
	for i, doc := range docs {
		m.vectors[i] = m.project(doc)
	}
	return m
}

// Diagnose returns up to five candidates ranked by descending similarity.
// An empty symptom list yields an empty result without touching the space.
func (m *Matcher) Diagnose(symptoms []string, age int, gender string) []domain.DiagnosisCandidate {
	if len(symptoms) == 0 {
		return nil
	}

	blob := strings.ToLower(strings.Join(symptoms, " "))
	query := m.project(tokenize(blob))

	type scored struct {
		index int
		sim   float64
	}
	ranked := make([]scored, len(m.vectors))
	for i, vec := range m.vectors {
		ranked[i] = scored{index: i, sim: dot(query, vec)}
	}

	// Stable ascending sort then reverse: among equal similarities the
	// condition later in the knowledge base surfaces first.
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].sim < ranked[b].sim })
	for l, r := 0, len(ranked)-1; l < r; l, r = l+1, r-1 {
		ranked[l], ranked[r] = ranked[r], ranked[l]
	}
	if len(ranked) > topKCandidates {
		ranked = ranked[:topKCandidates]
	}

	female := strings.EqualFold(gender, "female")
	out := make([]domain.DiagnosisCandidate, 0, maxResults)
	for _, s := range ranked {
		if s.sim <= similarityFloor {
			continue
		}
		entry := m.entries[s.index]

		confidence := math.Min(confidenceCap, s.sim*1.5)
		confidence = math.Min(confidenceCap, confidence*demographicFactor(entry.Name, age, female))

		out = append(out, domain.DiagnosisCandidate{
			Condition:        entry.Name,
			Confidence:       int(math.Round(confidence * 100)),
			Urgency:          entry.Urgency,
			MatchingSymptoms: matchingSymptoms(symptoms, entry.Symptoms),
			Specialist:       entry.Specialist,
		})
		if len(out) >= maxResults {
			break
		}
	}
	return out
}

// Conditions exposes the immutable knowledge base, mostly for the API layer.
func (m *Matcher) Conditions() []domain.ConditionEntry {
	out := make([]domain.ConditionEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// At most one rule applies per condition, so application order does not
// matter. The result is re-clamped by the caller.
func demographicFactor(name string, age int, female bool) float64 {
	switch {
	case strings.Contains(name, "Arthritis") && age > 50:
		return 1.2
	case strings.Contains(name, "Gout") && age > 40:
		return 1.15
	case name == "Appendicitis" && age < 30:
		return 1.1
	case strings.Contains(name, "UTI") && female:
		return 1.3
	case strings.Contains(name, "Migraine") && female:
		return 1.2
	}
	return 1.0
}

// matchingSymptoms keeps input phrases that appear as substrings of any
// condition symptom, capped at five, in input order.
func matchingSymptoms(inputs, conditionSymptoms []string) []string {
	var out []string
	for _, in := range inputs {
		phrase := strings.ToLower(strings.TrimSpace(in))
		if phrase == "" {
			continue
		}
		for _, cs := range conditionSymptoms {
			if strings.Contains(strings.ToLower(cs), phrase) {
				out = append(out, in)
				break
			}
		}
		if len(out) >= maxMatchDetail {
			break
		}
	}
	return out
}

// project maps a token stream onto the fixed vector space as an
// L2-normalized TF-IDF vector. Unknown terms are ignored.
func (m *Matcher) project(tokens []string) []float64 {
	vec := make([]float64, len(m.vocab))
	for _, t := range tokens {
		if col, ok := m.vocab[t]; ok {
			vec[col] += m.idf[col]
		}
	}
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// tokenize splits on non-alphanumeric runes and emits unigrams plus
// adjacent-word bigrams.
func tokenize(text string) []string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	tokens := make([]string, 0, len(words)*2)
	tokens = append(tokens, words...)
	for i := 0; i+1 < len(words); i++ {
		tokens = append(tokens, words[i]+" "+words[i+1])
	}
	return tokens
}
