package telegram

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid local number", "0912345678", true},
		{"valid with surrounding spaces", " 0911223344 ", true},
		{"too short", "0912345", false},
		{"too long", "09123456789", false},
		{"wrong prefix 07", "0712345678", false},
		{"wrong prefix 9", "9123456789", false},
		{"international form rejected for typed input", "+251912345678", false},
		{"letters", "09abc45678", false},
		{"inner space", "0912 45678", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validatePhone(tt.input); got != tt.want {
				t.Errorf("validatePhone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0912345678", "+251912345678"},
		{" 0911223344 ", "+251911223344"},
		// Invalid input is returned unchanged.
		{"0712345678", "0712345678"},
		{"hello", "hello"},
	}

	for _, tt := range tests {
		if got := normalizePhone(tt.input); got != tt.want {
			t.Errorf("normalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeContactPhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0912345678", "+251912345678"},
		{"251912345678", "+251912345678"},
		{"+251912345678", "+251912345678"},
		{"+998901234567", "+998901234567"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeContactPhone(tt.input); got != tt.want {
			t.Errorf("normalizeContactPhone(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
