package models

import "testing"

func TestMorningSlots(t *testing.T) {
	slots := MorningSlots()
	if len(slots) != 12 {
		t.Fatalf("MorningSlots() returned %d slots, want 12", len(slots))
	}
	if slots[0] != "10:00" {
		t.Fatalf("first morning slot = %s, want 10:00", slots[0])
	}
	if slots[len(slots)-1] != "15:30" {
		t.Fatalf("last morning slot = %s, want 15:30", slots[len(slots)-1])
	}
}

func TestEveningSlots(t *testing.T) {
	slots := EveningSlots()
	if len(slots) != 13 {
		t.Fatalf("EveningSlots() returned %d slots, want 13", len(slots))
	}
	if slots[0] != "16:00" {
		t.Fatalf("first evening slot = %s, want 16:00", slots[0])
	}
	if slots[len(slots)-1] != "22:00" {
		t.Fatalf("last evening slot = %s, want 22:00", slots[len(slots)-1])
	}
}

func TestIsValidSlot(t *testing.T) {
	tests := []struct {
		slot string
		want bool
	}{
		{"10:00", true},
		{"15:30", true},
		{"16:00", true},
		{"22:00", true},
		{"09:30", false}, // before opening
		{"22:30", false}, // after closing
		{"10:15", false}, // off the half-hour grid
		{"", false},
		{"noon", false},
	}

	for _, tt := range tests {
		if got := IsValidSlot(tt.slot); got != tt.want {
			t.Fatalf("IsValidSlot(%q) = %v, want %v", tt.slot, got, tt.want)
		}
	}
}

func TestIsEveningSlot(t *testing.T) {
	tests := []struct {
		slot string
		want bool
	}{
		{"15:30", false}, // last morning slot
		{"16:00", true},  // first evening slot
		{"10:00", false},
		{"22:00", true},
		{"", false},
		{"abc", false},
	}

	for _, tt := range tests {
		if got := IsEveningSlot(tt.slot); got != tt.want {
			t.Fatalf("IsEveningSlot(%q) = %v, want %v", tt.slot, got, tt.want)
		}
	}
}

func TestNormalizeConsultationType(t *testing.T) {
	tests := []struct {
		name      string
		slot      string
		requested ConsultationType
		want      ConsultationType
	}{
		{"evening forces online", "19:00", ConsultationInPerson, ConsultationOnline},
		{"evening keeps online", "16:00", ConsultationOnline, ConsultationOnline},
		{"morning keeps in-person", "10:30", ConsultationInPerson, ConsultationInPerson},
		{"morning keeps online", "11:00", ConsultationOnline, ConsultationOnline},
		{"morning defaults to in-person", "10:00", "", ConsultationInPerson},
		{"evening empty forced online", "21:30", "", ConsultationOnline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeConsultationType(tt.slot, tt.requested); got != tt.want {
				t.Fatalf("NormalizeConsultationType(%q, %q) = %s, want %s", tt.slot, tt.requested, got, tt.want)
			}
		})
	}
}
