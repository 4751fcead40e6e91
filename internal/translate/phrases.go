package translate

// Precached phrase table: translator-verified sentences for the highest
// frequency English outputs, keyed by target language then exact trimmed
// English text. Tier 0 of the forward pipeline — no hashing, no model call.
var precachedPhrases = map[string]map[string]string{
	"hi": {
		"Hello! How can I help you today?":          "नमस्ते! आज मैं आपकी कैसे मदद कर सकता हूँ?",
		"Please consult a doctor as soon as possible.": "कृपया जल्द से जल्द डॉक्टर से परामर्श करें।",
		"Take care and get well soon.":              "अपना ध्यान रखें और जल्दी स्वस्थ हों।",
		"Drink plenty of water and rest.":           "खूब पानी पिएँ और आराम करें।",
		"This is not a substitute for professional medical advice.": "यह पेशेवर चिकित्सा सलाह का विकल्प नहीं है।",
		"Is there anything else I can help you with?": "क्या मैं आपकी किसी और चीज़ में मदद कर सकता हूँ?",
	},
	"ta": {
		"Hello! How can I help you today?":          "வணக்கம்! இன்று நான் உங்களுக்கு எப்படி உதவ முடியும்?",
		"Please consult a doctor as soon as possible.": "தயவுசெய்து கூடிய விரைவில் மருத்துவரை அணுகவும்.",
		"Take care and get well soon.":              "கவனமாக இருங்கள், விரைவில் குணமடையுங்கள்.",
		"Drink plenty of water and rest.":           "நிறைய தண்ணீர் குடித்து ஓய்வெடுங்கள்.",
		"This is not a substitute for professional medical advice.": "இது தொழில்முறை மருத்துவ ஆலோசனைக்கு மாற்றாகாது.",
	},
	"te": {
		"Hello! How can I help you today?":          "నమస్కారం! ఈరోజు నేను మీకు ఎలా సహాయం చేయగలను?",
		"Please consult a doctor as soon as possible.": "దయచేసి వీలైనంత త్వరగా వైద్యుడిని సంప్రదించండి.",
		"Take care and get well soon.":              "జాగ్రత్తగా ఉండండి, త్వరగా కోలుకోండి.",
	},
	"bn": {
		"Hello! How can I help you today?":          "নমস্কার! আজ আমি আপনাকে কীভাবে সাহায্য করতে পারি?",
		"Please consult a doctor as soon as possible.": "অনুগ্রহ করে যত তাড়াতাড়ি সম্ভব ডাক্তারের পরামর্শ নিন।",
		"Take care and get well soon.":              "যত্ন নিন এবং দ্রুত সুস্থ হয়ে উঠুন।",
	},
	"kn": {
		"Hello! How can I help you today?":          "ನಮಸ್ಕಾರ! ಇಂದು ನಾನು ನಿಮಗೆ ಹೇಗೆ ಸಹಾಯ ಮಾಡಬಹುದು?",
		"Please consult a doctor as soon as possible.": "ದಯವಿಟ್ಟು ಸಾಧ್ಯವಾದಷ್ಟು ಬೇಗ ವೈದ್ಯರನ್ನು ಸಂಪರ್ಕಿಸಿ.",
	},
	"ml": {
		"Hello! How can I help you today?":          "നമസ്കാരം! ഇന്ന് ഞാൻ നിങ്ങളെ എങ്ങനെ സഹായിക്കാം?",
		"Please consult a doctor as soon as possible.": "ദയവായി എത്രയും വേഗം ഒരു ഡോക്ടറെ കാണുക.",
	},
}

// PrecachedPhrase looks up the tier-0 table for an exact trimmed English
// source string.
func PrecachedPhrase(targetLang, englishText string) (string, bool) {
	table, ok := precachedPhrases[targetLang]
	if !ok {
		return "", false
	}
	v, ok := table[englishText]
	return v, ok
}

// PrecachedPhrases exposes the table for round-trip verification in tests.
func PrecachedPhrases() map[string]map[string]string {
	return precachedPhrases
}
