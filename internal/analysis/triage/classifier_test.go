package triage

import (
	"testing"

	"github.com/oakfieldhealth/reception/backend/internal/model/intake"
)

func TestClassifyEmergency(t *testing.T) {
	if ward := Classify("I have severe chest pain"); ward != intake.WardEmergency {
		t.Fatalf("expected emergency ward, got %s", ward)
	}
}

func TestClassifyMentalHealth(t *testing.T) {
	if ward := Classify("I feel anxious and need help"); ward != intake.WardMentalHealth {
		t.Fatalf("expected mental health ward, got %s", ward)
	}
}

func TestClassifyDefaultsToGeneral(t *testing.T) {
	if ward := Classify("I'd like to book a routine checkup"); ward != intake.WardGeneral {
		t.Fatalf("expected general ward, got %s", ward)
	}
}

func TestClassifyEmergencyTakesPrecedence(t *testing.T) {
	// Both buckets match; emergency wins.
	if ward := Classify("anxious about the bleeding"); ward != intake.WardEmergency {
		t.Fatalf("expected emergency ward, got %s", ward)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if ward := Classify("URGENT: grandfather unconscious"); ward != intake.WardEmergency {
		t.Fatalf("expected emergency ward, got %s", ward)
	}
}
