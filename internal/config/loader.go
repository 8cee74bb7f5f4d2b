package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Loader handles configuration loading from various sources
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadForBuild loads configuration specifically for build operations
func (l *Loader) LoadForBuild(cmd *cobra.Command) (*Config, error) {
	l.setupViperDefaults()
	l.bindCommandFlags(cmd)
	l.loadGlobalConfig()
	l.loadLocalConfig(viper.GetString("from"))

	return Load()
}

// setupViperDefaults sets up default values for viper
func (l *Loader) setupViperDefaults() {
	viper.SetDefault("from", DefaultFrom)
	viper.SetDefault("to", DefaultTo)
	viper.SetDefault("graphics", DefaultGraphics)
	viper.SetDefault("debug", DefaultDebug)
	viper.SetDefault("verbose", DefaultVerbose)

	viper.SetEnvPrefix("koremake")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadGlobalConfig loads global configuration from the user config directory
func (l *Loader) loadGlobalConfig() {
	if path := FindGlobalConfig(); path != "" {
		viper.SetConfigFile(path)
		_ = viper.ReadInConfig()
	}
}

// loadLocalConfig merges the nearest .koremake file above the source directory
func (l *Loader) loadLocalConfig(from string) {
	if from == "" {
		from = DefaultFrom
	}

	localPath := FindLocalConfig(from)
	if localPath != "" {
		viper.SetConfigFile(localPath)
		_ = viper.MergeInConfig()
	}
}

// bindCommandFlags binds command flags to viper
func (l *Loader) bindCommandFlags(cmd *cobra.Command) {
	for _, name := range []string{
		"from", "to", "target", "graphics", "visualstudio", "vr", "kore",
		"debug", "noshaders", "nokrafix", "compile", "run", "shader-cache",
		"custom-target", "custom-base", "flag", "verbose",
	} {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = viper.BindPFlag(flagKey(name), f)
		}
	}
}

func flagKey(name string) string {
	if name == "kore" {
		return "kore_dir"
	}

	return strings.ReplaceAll(name, "-", "_")
}
