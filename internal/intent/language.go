package intent

// Script block ranges for the Indian languages the assistant understands.
// Checked in a fixed priority order; the first script found wins. Latin-only
// text falls through to "en".
type scriptRange struct {
	code string
	lo   rune
	hi   rune
}

var scriptRanges = []scriptRange{
	{"ta", 0x0B80, 0x0BFF}, // Tamil
	{"hi", 0x0900, 0x097F}, // Devanagari
	{"te", 0x0C00, 0x0C7F}, // Telugu
	{"kn", 0x0C80, 0x0CFF}, // Kannada
	{"ml", 0x0D00, 0x0D7F}, // Malayalam
	{"bn", 0x0980, 0x09FF}, // Bengali
}

// DetectLanguage infers an ISO-639-1 code from the Unicode script blocks
// present in the message.
func DetectLanguage(message string) string {
	for _, sr := range scriptRanges {
		for _, r := range message {
			if r >= sr.lo && r <= sr.hi {
				return sr.code
			}
		}
	}
	return "en"
}
