package utils

import (
	"strings"

	"github.com/Norgate-AV/koremake/internal/platform"
)

var targetAliases = map[string]platform.ID{
	"win":         platform.Windows,
	"win32":       platform.Windows,
	"uwp":         platform.WindowsApp,
	"mac":         platform.OSX,
	"macos":       platform.OSX,
	"web":         platform.HTML5,
	"raspberrypi": platform.Pi,
	"rpi":         platform.Pi,
	"appletv":     platform.TvOS,
}

// ParseTarget normalises a user supplied target name into a platform ID.
// Names that are neither known platforms nor aliases are returned lower-cased
// so plugin exporters can claim them.
func ParseTarget(t string) platform.ID {
	name := strings.ToLower(strings.TrimSpace(t))
	if id, ok := targetAliases[name]; ok {
		return id
	}

	return platform.ID(name)
}
