package translate

import (
	"fmt"
	"regexp"
	"strings"
)

// Terms the backend must never touch: drug names, abbreviations, helpline
// numbers. Each is replaced once (first occurrence, case-insensitive) with a
// positional placeholder before the backend call and restored afterwards.
var preservedTerms = []string{
	"Paracetamol", "Ibuprofen", "Aspirin", "Metformin", "Amoxicillin",
	"Azithromycin", "Insulin", "Atorvastatin", "Omeprazole", "Cetirizine",
	"Amlodipine", "Dolo 650",
	"ORS", "BP", "ECG", "CPR", "MRI", "CT scan",
	"108", "112", "102", "1800-599-0019",
}

// Dosage tokens like "500mg" or "5 ml" are preserved wherever they appear.
var dosagePattern = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s?(?:mg|mcg|ml|g|iu|units)\b`)

func placeholder(i int) string {
	return fmt.Sprintf("《%d》", i)
}

// maskTerms substitutes protected terms with positional placeholders and
// returns the originals in placeholder order.
func maskTerms(text string) (string, []string) {
	var originals []string

	for _, term := range preservedTerms {
		idx := indexFold(text, term)
		if idx < 0 {
			continue
		}
		original := text[idx : idx+len(term)]
		text = text[:idx] + placeholder(len(originals)) + text[idx+len(term):]
		originals = append(originals, original)
	}

	for {
		loc := dosagePattern.FindStringIndex(text)
		if loc == nil {
			break
		}
		originals = append(originals, text[loc[0]:loc[1]])
		text = text[:loc[0]] + placeholder(len(originals)-1) + text[loc[1]:]
	}

	return text, originals
}

// unmaskTerms reverses the placeholder substitution.
func unmaskTerms(text string, originals []string) string {
	for i, original := range originals {
		text = strings.Replace(text, placeholder(i), original, 1)
	}
	return text
}

func indexFold(s, substr string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(substr))
}
