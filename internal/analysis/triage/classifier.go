package triage

import (
	"strings"

	"github.com/oakfieldhealth/reception/backend/internal/model/intake"
)

// Keyword buckets for ward routing. Matching is case-insensitive substring
// membership, so stems like "depress" also cover "depressed"/"depression".
var emergencyKeywords = []string{
	"pain", "bleed", "bleeding", "chest", "unconscious", "emergency",
	"severe", "urgent", "fracture",
}

var mentalHealthKeywords = []string{
	"depress", "depression", "anxious", "anxiety", "suicide", "mental",
	"therapy", "psych", "panic", "hallucinat",
}

// Classify routes a message to a ward. Emergency keywords take precedence
// over mental-health keywords when both appear; no match means general.
func Classify(text string) intake.Ward {
	if containsAny(text, emergencyKeywords) {
		return intake.WardEmergency
	}
	if containsAny(text, mentalHealthKeywords) {
		return intake.WardMentalHealth
	}
	return intake.WardGeneral
}

func containsAny(text string, keywords []string) bool {
	normalized := strings.ToLower(text)
	for _, word := range keywords {
		if strings.Contains(normalized, word) {
			return true
		}
	}
	return false
}
