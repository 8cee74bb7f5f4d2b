package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Norgate-AV/koremake/internal/platform"
	"github.com/Norgate-AV/koremake/internal/utils"
)

// Default configuration values
const (
	DefaultFrom     = "."
	DefaultTo       = "build"
	DefaultGraphics = "default"
	DefaultDebug    = false
	DefaultVerbose  = false
)

// CustomTarget names a plugin target that builds like an existing platform.
type CustomTarget struct {
	Name       platform.ID
	BaseTarget platform.ID
}

// Holds the build options for a single koremake invocation.
// A Config is built once by Load and treated as read-only afterwards.
type Config struct {
	// Source directory containing the project descriptor
	From string
	// Export destination directory
	To string

	// Target platform
	Target platform.ID
	// Optional custom target carrying its own base platform
	CustomTarget *CustomTarget

	// Selected graphics backend
	Graphics platform.GraphicsAPI
	// Preferred Visual Studio version (e.g. vs2015)
	VisualStudio string
	// VR backend passed through to exporters
	VRAPI string

	// Engine root used to find the bundled shader compiler
	KoreDir string

	// Build the debug configuration
	Debug bool
	// Skip shader compilation
	NoShaders bool
	// Tell exporters not to add shader compiler build steps
	NoKrafix bool
	// Invoke the native toolchain after export
	Compile bool
	// Launch the produced binary after a successful build
	Run bool
	// Reuse shader outputs across runs
	ShaderCache bool

	// Enable verbose output
	Verbose bool

	// Exporter specific flags
	Flags map[string]string
}

func Load() (*Config, error) {
	graphics, err := platform.ParseGraphicsAPI(viper.GetString("graphics"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		From:         viper.GetString("from"),
		To:           viper.GetString("to"),
		Target:       utils.ParseTarget(viper.GetString("target")),
		Graphics:     graphics,
		VisualStudio: viper.GetString("visualstudio"),
		VRAPI:        viper.GetString("vr"),
		KoreDir:      viper.GetString("kore_dir"),
		Debug:        viper.GetBool("debug"),
		NoShaders:    viper.GetBool("noshaders"),
		NoKrafix:     viper.GetBool("nokrafix"),
		Compile:      viper.GetBool("compile"),
		Run:          viper.GetBool("run"),
		ShaderCache:  viper.GetBool("shader_cache"),
		Verbose:      viper.GetBool("verbose"),
		Flags:        map[string]string{},
	}

	if name := viper.GetString("custom_target"); name != "" {
		cfg.CustomTarget = &CustomTarget{
			Name:       utils.ParseTarget(name),
			BaseTarget: utils.ParseTarget(viper.GetString("custom_base")),
		}

		// A custom target is the target unless one was given explicitly
		if cfg.Target == "" {
			cfg.Target = cfg.CustomTarget.Name
		}
	}

	for k, v := range viper.GetStringMapString("flags") {
		cfg.Flags[k] = v
	}

	for _, kv := range viper.GetStringSlice("flag") {
		k, v, _ := strings.Cut(kv, "=")
		if k != "" {
			cfg.Flags[k] = v
		}
	}

	// Apply defaults if not set
	if cfg.From == "" {
		cfg.From = DefaultFrom
	}

	if cfg.To == "" {
		cfg.To = DefaultTo
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Target == "" {
		return fmt.Errorf("target platform not specified")
	}

	if c.CustomTarget != nil {
		if c.CustomTarget.BaseTarget == "" {
			return fmt.Errorf("custom target %s has no base target", c.CustomTarget.Name)
		}

		if !platform.IsKnown(c.CustomTarget.BaseTarget) {
			return fmt.Errorf("invalid base target: %s", c.CustomTarget.BaseTarget)
		}
	}

	if c.Graphics == "" {
		c.Graphics = platform.GraphicsDefault
	}

	if _, err := platform.ParseGraphicsAPI(string(c.Graphics)); err != nil {
		return err
	}

	// Resolve directories
	for _, dir := range []*string{&c.From, &c.To} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return fmt.Errorf("invalid directory %s: %v", *dir, err)
		}

		*dir = abs
	}

	if c.KoreDir != "" {
		abs, err := filepath.Abs(c.KoreDir)
		if err != nil {
			return fmt.Errorf("invalid kore directory: %v", err)
		}

		c.KoreDir = abs
	}

	return nil
}

// BuildPath is the build configuration segment of output paths.
func (c *Config) BuildPath() string {
	if c.Debug {
		return "Debug"
	}

	return "Release"
}

// BaseTarget is the platform whose native toolchain builds the export. It is
// the custom target's base platform when one is configured.
func (c *Config) BaseTarget() platform.ID {
	if c.CustomTarget != nil && c.CustomTarget.BaseTarget != "" {
		return c.CustomTarget.BaseTarget
	}

	return c.Target
}
