package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Good Pizza", "Good Pizza"},
		{"script stripped", `Good <script>alert(1)</script> Pizza`, "Good  Pizza"},
		{"tags stripped", "<b>Bold</b> Eats", "Bold Eats"},
		{"surrounding whitespace trimmed", "  123 Main St  ", "123 Main St"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeText(tt.input))
		})
	}
}
