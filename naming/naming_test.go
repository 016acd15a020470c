package naming

import (
	"strings"
	"testing"
)

func TestFromIntent_prefixStripping(t *testing.T) {
	tests := []struct {
		intent string
		name   string
		slug   string
	}{
		{"I need a task manager app", "Task Manager App", "task-manager-app"},
		{"Build me an appointment scheduler", "Appointment Scheduler", "appointment-scheduler"},
		{"create a patient intake form", "Patient Intake Form", "patient-intake-form"},
		{"MAKE ME A symptom diary", "Symptom Diary", "symptom-diary"},
		{"i want an insurance claim tracker", "Insurance Claim Tracker", "insurance-claim-tracker"},
		// No prefix: text passes straight through.
		{"Task Manager", "Task Manager", "task-manager"},
		// A prefix mid-string is never stripped.
		{"tool so i need a break", "Tool So I Need A Break", "tool-so-i-need-a-break"},
	}
	for _, tt := range tests {
		got := FromIntent(tt.intent)
		if got.Name != tt.name || got.Slug != tt.slug {
			t.Errorf("FromIntent(%q) = {%q, %q}, want {%q, %q}",
				tt.intent, got.Name, got.Slug, tt.name, tt.slug)
		}
	}
}

func TestFromIntent_whitespaceIdempotence(t *testing.T) {
	a := FromIntent("Task   Manager")
	b := FromIntent("  Task Manager  ")
	c := FromIntent("Task\n\tManager")
	if a != b || b != c {
		t.Errorf("whitespace variants diverge: %v, %v, %v", a, b, c)
	}
}

func TestFromIntent_fallback(t *testing.T) {
	for _, intent := range []string{"", "   ", "\n\t", "!@#$%", "i need a"} {
		got := FromIntent(intent)
		if got.Name != FallbackName || got.Slug != FallbackSlug {
			t.Errorf("FromIntent(%q) = %v, want fallback", intent, got)
		}
	}
}

func TestFromIntent_determinism(t *testing.T) {
	first := FromIntent("I need a task manager app")
	for i := 0; i < 5; i++ {
		if got := FromIntent("I need a task manager app"); got != first {
			t.Fatalf("call %d produced %v, first call produced %v", i, got, first)
		}
	}
}

func TestFromIntent_titleCaseIsLiteral(t *testing.T) {
	// No acronym detection: lowercase then capitalize the first letter.
	got := FromIntent("RESTful API dashboard")
	if got.Name != "Restful Api Dashboard" {
		t.Errorf("Name = %q, want %q", got.Name, "Restful Api Dashboard")
	}
}

func TestFromIntent_nameTruncation(t *testing.T) {
	got := FromIntent("a longer description of a care coordination platform for regional clinics")
	if len([]rune(got.Name)) > maxNameLength+3 {
		t.Errorf("Name %q exceeds budget", got.Name)
	}
	if !strings.HasSuffix(got.Name, "...") {
		t.Errorf("Name %q missing truncation marker", got.Name)
	}
	// The cut lands on a word boundary, so no trailing partial token
	// directly before the ellipsis.
	trimmed := strings.TrimSuffix(got.Name, "...")
	if strings.HasSuffix(trimmed, " ") {
		t.Errorf("Name %q retains trailing space before ellipsis", got.Name)
	}
}

func TestFromIntent_slugSanitization(t *testing.T) {
	tests := []struct {
		intent string
		slug   string
	}{
		{"café & clinic notes", "cafe-clinic-notes"},
		{"patient_intake_form", "patient-intake-form"},
		{"remind me 💊 pill tracker", "remind-me-pill-tracker"},
		{"--weird---input--", "weird-input"},
	}
	for _, tt := range tests {
		if got := FromIntent(tt.intent); got.Slug != tt.slug {
			t.Errorf("FromIntent(%q).Slug = %q, want %q", tt.intent, got.Slug, tt.slug)
		}
	}
}

func TestFromIntent_slugTruncation(t *testing.T) {
	got := FromIntent("an exhaustively descriptive healthcare application title")
	if len(got.Slug) > maxSlugLength {
		t.Errorf("Slug %q longer than %d", got.Slug, maxSlugLength)
	}
	if strings.HasSuffix(got.Slug, "-") {
		t.Errorf("Slug %q has trailing hyphen after truncation", got.Slug)
	}
}

func TestFromIntent_neverEmpty(t *testing.T) {
	for _, intent := range []string{"x", "字字字", "a", "ß"} {
		got := FromIntent(intent)
		if got.Name == "" || got.Slug == "" {
			t.Errorf("FromIntent(%q) produced empty output: %v", intent, got)
		}
	}
}
