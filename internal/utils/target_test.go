package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/koremake/internal/platform"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		input    string
		expected platform.ID
	}{
		{"linux", platform.Linux},
		{"Linux", platform.Linux},
		{" windows ", platform.Windows},
		{"win32", platform.Windows},
		{"macos", platform.OSX},
		{"osx", platform.OSX},
		{"web", platform.HTML5},
		{"rpi", platform.Pi},
		{"appletv", platform.TvOS},
		{"Krom", platform.ID("krom")},
		{"", platform.ID("")},
	}

	for _, test := range tests {
		result := ParseTarget(test.input)
		assert.Equal(t, test.expected, result, "ParseTarget(%q)", test.input)
	}
}
