package model

import (
	"strings"
	"testing"
)

func TestFormatJobType(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"lawn-care", "Lawn Care"},
		{"landscaping", "Landscaping"},
		{"snow-removal", "Snow Removal"},
		{"leaf-removal", "Leaf Removal"},
		{"xyz", "xyz"},
		{"", ""},
		{"Lawn-Care", "Lawn-Care"},
	}

	for _, tt := range tests {
		if got := FormatJobType(tt.code); got != tt.want {
			t.Errorf("FormatJobType(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFormatJobTypeEmailLabel(t *testing.T) {
	if got := strings.ToLower(FormatJobType("snow-removal")); got != "snow removal" {
		t.Errorf("expected snow removal, got %q", got)
	}
	if got := strings.ToLower(FormatJobType("xyz")); got != "xyz" {
		t.Errorf("expected xyz, got %q", got)
	}
}
