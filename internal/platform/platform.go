// Package platform maps abstract build targets and graphics backends to the
// names and shader dialects the rest of the pipeline dispatches on.
package platform

// ID identifies a target platform. Values outside the known set are treated
// as plugin targets and passed through unchanged.
type ID string

// Known platforms.
const (
	Windows      ID = "windows"
	WindowsApp   ID = "windowsapp"
	PlayStation3 ID = "ps3"
	IOS          ID = "ios"
	OSX          ID = "osx"
	Android      ID = "android"
	Xbox360      ID = "xbox360"
	Linux        ID = "linux"
	HTML5        ID = "html5"
	Tizen        ID = "tizen"
	Pi           ID = "pi"
	TvOS         ID = "tvos"
)

// Unknown is the display name of any platform outside the known set.
const Unknown = "unknown"

var displayNames = map[ID]string{
	Windows:      "Windows",
	WindowsApp:   "Windows App",
	PlayStation3: "PlayStation 3",
	IOS:          "iOS",
	OSX:          "OS X",
	Android:      "Android",
	Xbox360:      "Xbox 360",
	Linux:        "Linux",
	HTML5:        "HTML5",
	Tizen:        "Tizen",
	Pi:           "Pi",
	TvOS:         "tvOS",
}

// All returns every known platform in a stable order.
func All() []ID {
	return []ID{
		Windows, WindowsApp, PlayStation3, IOS, OSX, Android,
		Xbox360, Linux, HTML5, Tizen, Pi, TvOS,
	}
}

// IsKnown reports whether p is a member of the known platform set.
func IsKnown(p ID) bool {
	_, ok := displayNames[p]
	return ok
}

// DisplayName returns the human readable name of p, or Unknown.
func DisplayName(p ID) string {
	if name, ok := displayNames[p]; ok {
		return name
	}

	return Unknown
}

func (p ID) String() string {
	return string(p)
}
