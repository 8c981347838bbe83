package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "Alice Developer", "alice developer"},
		{"email drops domain", "alice@x.com", "alice"},
		{"mixed case email", "JohnDoe@EXAMPLE.COM", "johndoe"},
		{"keeps dots and dashes", "john.doe_jr-2", "john.doe_jr-2"},
		{"strips punctuation", "O'Brien (bot)!", "obrien bot"},
		{"collapses whitespace", "  Alice \t  Developer  ", "alice developer"},
		{"unicode letters survive", "Łukasz Müller", "łukasz müller"},
		{"empty string", "", ""},
		{"only punctuation", "+++", ""},
		{"digits kept", "user123", "user123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Alice Developer", "alice@x.com", "John.Doe", "  weird   spacing "}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalizing twice should be a no-op for %q", in)
	}
}
