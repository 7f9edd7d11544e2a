package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ahmed@example.com", true},
		{"a.b+c@law-firm.mr", true},
		{"", false},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Fatalf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"44556677", true},
		{"+22244556677", true},
		{"222 44 55 66 77", true},
		{"222-4455-6677", true},
		{"1234567", false},         // too short
		{"123456789012345", false}, // too long
		{"44ab6677", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidatePhoneNumber(tt.phone); got != tt.want {
			t.Fatalf("ValidatePhoneNumber(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestIsISODate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2024-06-15", true},
		{"2024-6-15", false},
		{"15-06-2024", false},
		{"2024/06/15", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsISODate(tt.date); got != tt.want {
			t.Fatalf("IsISODate(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash equals the plaintext password")
	}
	if !CheckPasswordHash("s3cret-password", hash) {
		t.Fatal("CheckPasswordHash rejected the correct password")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Fatal("CheckPasswordHash accepted a wrong password")
	}
}
