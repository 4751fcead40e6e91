package emergency

import "strings"

// Type labels one of the four fixed emergency categories.
type Type string

const (
	TypeHeartAttack Type = "heart_attack"
	TypeStroke      Type = "stroke"
	TypeBreathing   Type = "breathing"
	TypeSuicide     Type = "suicide"
)

// checkOrder governs multi-category messages: the first matching category
// in this order wins. Do not reorder.
var checkOrder = []Type{TypeHeartAttack, TypeStroke, TypeBreathing, TypeSuicide}

var triggerKeywords = map[Type][]string{
	TypeHeartAttack: {
		"chest pain", "heart attack", "chest tightness", "chest pressure",
		"left arm pain", "pain radiating",
	},
	TypeStroke: {
		"stroke", "face drooping", "slurred speech", "arm weakness",
		"sudden numbness", "sudden confusion",
	},
	TypeBreathing: {
		"can't breathe", "cannot breathe", "difficulty breathing",
		"shortness of breath", "choking", "gasping",
	},
	TypeSuicide: {
		"suicide", "kill myself", "end my life", "want to die", "self harm",
	},
}

// Detect scans the message for emergency trigger keywords and returns the
// first matching category in the fixed check order.
func Detect(message string) (Type, bool) {
	lowered := strings.ToLower(message)
	for _, t := range checkOrder {
		for _, kw := range triggerKeywords[t] {
			if strings.Contains(lowered, kw) {
				return t, true
			}
		}
	}
	return "", false
}

// Emergency scripts are static, verified content. They are served verbatim
// and never routed through translation.
var templates = map[Type]string{
	TypeHeartAttack: `🚨 This may be a HEART ATTACK. Act now:

1. Call 108 (ambulance) or 112 immediately.
2. Have the person sit down and rest. Do not let them walk.
3. Loosen tight clothing.
4. If not allergic, chew one Aspirin 325mg.
5. If the person becomes unresponsive and stops breathing, start CPR: push hard and fast in the center of the chest.

Do not wait to see if the pain passes. Emergency help is needed NOW.`,

	TypeStroke: `🚨 This may be a STROKE. Act F.A.S.T:

- Face: ask the person to smile. Does one side droop?
- Arms: ask them to raise both arms. Does one drift down?
- Speech: ask them to repeat a sentence. Is it slurred?
- Time: call 108 (ambulance) or 112 immediately.

Note the time symptoms started. Do not give food, water, or medicine. Every minute matters.`,

	TypeBreathing: `🚨 SEVERE BREATHING DIFFICULTY. Act now:

1. Call 108 (ambulance) or 112 immediately.
2. Help the person sit upright, leaning slightly forward.
3. Loosen tight clothing around the neck and chest.
4. If they have a prescribed inhaler, help them use it.
5. If they stop breathing, start CPR.

Stay with the person until help arrives.`,

	TypeSuicide: `You matter, and you are not alone. Please reach out right now:

- KIRAN mental health helpline (24x7, free): 1800-599-0019
- AASRA: 91-9820466726
- Or call 112 for immediate emergency help.

If you can, stay with someone you trust or ask someone to stay with you. These feelings can ease with support — please talk to a counsellor today.`,
}

// Template returns the fixed safety script for an emergency category.
func Template(t Type) string {
	return templates[t]
}
