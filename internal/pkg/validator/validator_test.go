package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // v7
		"123e4567-e89b-42d3-a456-426614174000", // v4
		"123E4567-E89B-42D3-A456-426614174000", // v4 uppercase
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidCurrencyCode(t *testing.T) {
	valid := []string{"JPY", "USD", "EUR"}
	invalid := []string{"jpy", "YEN1", "JP", "JPYY", "", "¥"}
	for _, code := range valid {
		if !IsValidCurrencyCode(code) {
			t.Errorf("IsValidCurrencyCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidCurrencyCode(code) {
			t.Errorf("IsValidCurrencyCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidLocale(t *testing.T) {
	valid := []string{"en", "ja", "pt-BR"}
	invalid := []string{"EN", "japanese", "ja_JP", "j", ""}
	for _, locale := range valid {
		if !IsValidLocale(locale) {
			t.Errorf("IsValidLocale(%q) = false, want true", locale)
		}
	}
	for _, locale := range invalid {
		if IsValidLocale(locale) {
			t.Errorf("IsValidLocale(%q) = true, want false", locale)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Error("IsValidDate(2024-02-29) = false, want true (leap day)")
	}
	if _, ok := IsValidDate("2023-02-29"); ok {
		t.Error("IsValidDate(2023-02-29) = true, want false")
	}
	if _, ok := IsValidDate("25-01-2024"); ok {
		t.Error("IsValidDate(25-01-2024) = true, want false")
	}
}
