package intent

import (
	"regexp"
	"strings"

	"arogya/internal/domain"
)

// Classifier scores a message against fixed pattern tables. It holds no
// mutable state and is safe for concurrent use.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// scoreOrder is the arg-max iteration order. Ties are resolved by this
// declaration order: the first intent reaching the maximum score wins.
// Do not reorder.
var scoreOrder = []domain.Intent{
	domain.IntentEmergency,
	domain.IntentGreeting,
	domain.IntentEducational,
	domain.IntentSymptomReport,
	domain.IntentMedicationQuery,
	domain.IntentMentalHealth,
	domain.IntentLifestyle,
	domain.IntentSideEffects,
	domain.IntentPrevention,
}

// A single hit on any of these scores emergency at 1.0 outright.
var emergencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`chest pain`),
	regexp.MustCompile(`(?:can't|cannot|can not) breathe`),
	regexp.MustCompile(`severe bleeding`),
	regexp.MustCompile(`unconscious`),
	regexp.MustCompile(`heart attack`),
	regexp.MustCompile(`\bstroke\b`),
	regexp.MustCompile(`suicid`),
	regexp.MustCompile(`kill myself`),
	regexp.MustCompile(`end my life`),
	regexp.MustCompile(`overdose`),
	regexp.MustCompile(`poison`),
	regexp.MustCompile(`choking`),
	regexp.MustCompile(`सीने में दर्द`),  // chest pain
	regexp.MustCompile(`सांस नहीं आ रही`), // cannot breathe
}

// Greeting patterns are anchored at both ends: the whole trimmed message
// must be a greeting, optionally with trailing punctuation.
var greetingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?:hi|hii+|hello|hey|namaste|namaskar|vanakkam)[\s.!]*$`),
	regexp.MustCompile(`^good (?:morning|afternoon|evening|night)[\s.!]*$`),
	regexp.MustCompile(`^(?:thank you|thanks|thank u|dhanyavad|nandri)[\s.!]*$`),
	regexp.MustCompile(`^(?:bye|goodbye|see you|take care)[\s.!]*$`),
	regexp.MustCompile(`^(?:how are you)[\s?.!]*$`),
}

var educationalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`what is`),
	regexp.MustCompile(`what are`),
	regexp.MustCompile(`explain`),
	regexp.MustCompile(`define`),
	regexp.MustCompile(`tell me about`),
	regexp.MustCompile(`meaning of`),
	regexp.MustCompile(`difference between`),
	regexp.MustCompile(`what causes`),
	regexp.MustCompile(`how does \w+ work`),
	regexp.MustCompile(`information (?:about|on)`),
}

var educationalWhatIsWord = regexp.MustCompile(`what (?:is|are) \w+`)
var educationalTamilEndral = regexp.MustCompile(`\w+ endral enna`)

var symptomPatterns = []*regexp.Regexp{
	regexp.MustCompile(`i have (?:a |an |been )?\w+`),
	regexp.MustCompile(`i am having`),
	regexp.MustCompile(`i'?m having`),
	regexp.MustCompile(`i feel`),
	regexp.MustCompile(`i'?ve been (?:feeling|having)`),
	regexp.MustCompile(`suffering from`),
	regexp.MustCompile(`my \w+ (?:hurts|aches|pains)`),
	regexp.MustCompile(`pain in my`),
	regexp.MustCompile(`it hurts`),
	regexp.MustCompile(`since (?:yesterday|morning|last)`),
	regexp.MustCompile(`mujhe .*(?:hai|ho raha)`),
	regexp.MustCompile(`dard ho raha`),
	regexp.MustCompile(`bukhar`),
	regexp.MustCompile(`enakku .*(?:irukku|iruku)`),
	regexp.MustCompile(`vali irukku`),
}

var mentalHealthPatterns = []*regexp.Regexp{
	regexp.MustCompile(`depress`),
	regexp.MustCompile(`anxiet|anxious`),
	regexp.MustCompile(`stress`),
	regexp.MustCompile(`panic attack`),
	regexp.MustCompile(`(?:can't|cannot) sleep`),
	regexp.MustCompile(`feeling (?:low|sad|hopeless|empty)`),
	regexp.MustCompile(`lonel`),
	regexp.MustCompile(`overwhelm`),
	regexp.MustCompile(`mental health`),
}

var medicationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`medicin|medication`),
	regexp.MustCompile(`tablet|capsule|syrup`),
	regexp.MustCompile(`\bdosage\b|\bdose\b`),
	regexp.MustCompile(`prescri`),
	regexp.MustCompile(`\bdrug\b`),
	regexp.MustCompile(`dawai|dawa\b`),
}

var sideEffectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`side effect`),
	regexp.MustCompile(`adverse`),
	regexp.MustCompile(`reaction to`),
	regexp.MustCompile(`after taking`),
}

// Prevention has two tiers: an explicit "how to prevent" phrasing scores
// slightly higher than a bare keyword hit.
var preventionStrongPatterns = []*regexp.Regexp{
	regexp.MustCompile(`how (?:to|can i|do i) (?:prevent|avoid)`),
	regexp.MustCompile(`ways to (?:prevent|avoid)`),
}

var preventionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`prevent`),
	regexp.MustCompile(`vaccin`),
	regexp.MustCompile(`protect (?:myself|from|against)`),
	regexp.MustCompile(`avoid getting`),
}

var lifestylePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bdiet\b|nutrition`),
	regexp.MustCompile(`exercise|workout|yoga`),
	regexp.MustCompile(`weight (?:loss|gain)`),
	regexp.MustCompile(`sleep schedule|sleep better`),
	regexp.MustCompile(`healthy (?:habits|lifestyle|food)`),
}

// Question markers per detected language; a trailing "?" also counts.
var questionPatterns = map[string]*regexp.Regexp{
	"en": regexp.MustCompile(`^(?:what|why|how|when|where|who|which|can|could|should|is|are|do|does|will)\b`),
	"hi": regexp.MustCompile(`क्या|कैसे|क्यों|कब|कहाँ|कौन`),
	"ta": regexp.MustCompile(`என்ன|எப்படி|ஏன்|எப்போது|எங்கே`),
	"te": regexp.MustCompile(`ఏమిటి|ఎలా|ఎందుకు`),
	"kn": regexp.MustCompile(`ಏನು|ಹೇಗೆ|ಏಕೆ`),
	"ml": regexp.MustCompile(`എന്ത്|എങ്ങനെ|എന്തുകൊണ്ട്`),
	"bn": regexp.MustCompile(`কী|কি|কীভাবে|কেন`),
}

// Condition vocabulary for entity extraction. Matches are reported in this
// list's order, not message order.
var medicalVocabulary = []string{
	"diabetes", "hypertension", "blood pressure", "fever", "cough",
	"cold", "headache", "migraine", "asthma", "allergy",
	"arthritis", "cancer", "heart disease", "stroke", "thyroid",
	"anemia", "malaria", "dengue", "typhoid", "tuberculosis",
	"covid", "pneumonia", "jaundice", "ulcer", "gastritis",
	"acidity", "constipation", "diarrhea", "vomiting", "rash",
	"infection", "cholesterol", "obesity", "depression", "anxiety",
	"insomnia",
}

type strategyTone struct {
	Strategy string
	Tone     string
}

var strategyTable = map[domain.Intent]strategyTone{
	domain.IntentEmergency:       {"emergency_responder", "urgent_calm"},
	domain.IntentGreeting:        {"friendly_greeter", "warm"},
	domain.IntentEducational:     {"health_educator", "informative"},
	domain.IntentSymptomReport:   {"symptom_assessor", "empathetic"},
	domain.IntentMedicationQuery: {"medication_advisor", "precise"},
	domain.IntentMentalHealth:    {"mental_health_supporter", "gentle"},
	domain.IntentLifestyle:       {"lifestyle_coach", "encouraging"},
	domain.IntentSideEffects:     {"side_effect_counselor", "reassuring"},
	domain.IntentPrevention:      {"prevention_guide", "informative"},
	domain.IntentFollowup:        {"followup_assistant", "attentive"},
}

var defaultStrategy = strategyTone{"general_assistant", "professional"}

// Classify scores the message against the fixed tables and returns a fresh
// IntentResult. It never fails: empty or unrecognized input falls through to
// the unknown/followup path.
func (c *Classifier) Classify(message string, history []domain.Turn) domain.IntentResult {
	normalized := strings.ToLower(strings.TrimSpace(message))
	language := DetectLanguage(message)

	res := domain.IntentResult{
		LanguageDetected: language,
		IsQuestion:       isQuestion(normalized, language),
		MedicalEntities:  extractEntities(normalized),
	}

	scores := c.scoreAll(normalized, res.IsQuestion, len(res.MedicalEntities))

	primary := scoreOrder[0]
	best := scores[primary]
	for _, it := range scoreOrder[1:] {
		if scores[it] > best {
			primary = it
			best = scores[it]
		}
	}

	res.SecondaryIntent = secondaryIntent(scores, primary)

	res.PrimaryIntent = primary
	res.Confidence = best
	if best < 0.3 {
		if len(history) > 0 {
			res.PrimaryIntent = domain.IntentFollowup
			res.Confidence = 0.5
		} else {
			res.PrimaryIntent = domain.IntentUnknown
			res.Confidence = 0.3
		}
	}

	st, ok := strategyTable[res.PrimaryIntent]
	if !ok {
		st = defaultStrategy
	}
	res.PromptStrategy = st.Strategy
	res.ResponseTone = st.Tone

	switch res.PrimaryIntent {
	case domain.IntentGreeting, domain.IntentEmergency, domain.IntentEducational:
		res.ShouldAskFollowup = false
	default:
		res.ShouldAskFollowup = true
	}

	return res
}

func (c *Classifier) scoreAll(normalized string, question bool, entityCount int) map[domain.Intent]float64 {
	scores := map[domain.Intent]float64{
		domain.IntentEmergency:       scoreEmergency(normalized),
		domain.IntentGreeting:        scoreGreeting(normalized),
		domain.IntentEducational:     scoreEducational(normalized, question, entityCount),
		domain.IntentSymptomReport:   countScore(normalized, symptomPatterns, 0.4),
		domain.IntentMedicationQuery: constantScore(normalized, medicationPatterns, 0.8),
		domain.IntentMentalHealth:    countScore(normalized, mentalHealthPatterns, 0.5),
		domain.IntentLifestyle:       constantScore(normalized, lifestylePatterns, 0.7),
		domain.IntentSideEffects:     constantScore(normalized, sideEffectPatterns, 0.85),
		domain.IntentPrevention:      scorePrevention(normalized),
	}
	return scores
}

func scoreEmergency(normalized string) float64 {
	for _, p := range emergencyPatterns {
		if p.MatchString(normalized) {
			return 1.0
		}
	}
	return 0
}

func scoreGreeting(normalized string) float64 {
	for _, p := range greetingPatterns {
		if p.MatchString(normalized) {
			return 0.95
		}
	}
	return 0
}

// Educational levels only ever raise the score, never lower it.
func scoreEducational(normalized string, question bool, entityCount int) float64 {
	score := 0.0
	for _, p := range educationalPatterns {
		if p.MatchString(normalized) {
			score = 0.8
			break
		}
	}
	if educationalWhatIsWord.MatchString(normalized) {
		score = max(score, 0.85)
	}
	if educationalTamilEndral.MatchString(normalized) {
		score = max(score, 0.9)
	}
	if question && entityCount > 0 {
		score = max(score, 0.7)
	}
	return score
}

// countScore maps the number of distinct matching patterns onto
// min(0.9, base + 0.15*n); zero matches score zero.
func countScore(normalized string, patterns []*regexp.Regexp, base float64) float64 {
	matches := 0
	for _, p := range patterns {
		if p.MatchString(normalized) {
			matches++
		}
	}
	if matches == 0 {
		return 0
	}
	return min(0.9, base+0.15*float64(matches))
}

// constantScore short-circuits to a fixed value on the first family hit.
func constantScore(normalized string, patterns []*regexp.Regexp, value float64) float64 {
	for _, p := range patterns {
		if p.MatchString(normalized) {
			return value
		}
	}
	return 0
}

func scorePrevention(normalized string) float64 {
	for _, p := range preventionStrongPatterns {
		if p.MatchString(normalized) {
			return 0.8
		}
	}
	for _, p := range preventionPatterns {
		if p.MatchString(normalized) {
			return 0.75
		}
	}
	return 0
}

// secondaryIntent picks the runner-up raw score when it clears 0.2.
// Computed before the low-score fallback override.
func secondaryIntent(scores map[domain.Intent]float64, primary domain.Intent) domain.Intent {
	var second domain.Intent
	best := 0.0
	for _, it := range scoreOrder {
		if it == primary {
			continue
		}
		if scores[it] > best {
			second = it
			best = scores[it]
		}
	}
	if best > 0.2 {
		return second
	}
	return ""
}

func isQuestion(normalized, language string) bool {
	if strings.HasSuffix(normalized, "?") {
		return true
	}
	if p, ok := questionPatterns[language]; ok {
		return p.MatchString(normalized)
	}
	return false
}

func extractEntities(normalized string) []string {
	var found []string
	for _, term := range medicalVocabulary {
		if strings.Contains(normalized, term) {
			found = append(found, term)
		}
	}
	return found
}
