package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"plugin"
	"strings"
)

const (
	// PluginPrefix starts the file name of every exporter plugin
	PluginPrefix = "Exporter"
	// PluginExtension is the file extension of loadable exporter plugins
	PluginExtension = ".so"
	// PluginSymbol is the constructor every plugin exports
	PluginSymbol = "NewExporter"
)

// Plugin is an exporter discovered in a backends directory.
type Plugin struct {
	Path   string
	Create Factory
}

// PluginLoader turns a plugin file into an exporter factory.
type PluginLoader interface {
	Load(path string) (Factory, error)
}

// DiscoverPlugins lists candidate plugin files in directory order: for each
// immediate subdirectory of backendsDir, the first file named Exporter*.so.
// A missing backends directory yields no candidates.
func DiscoverPlugins(backendsDir string) ([]string, error) {
	libdirs, err := os.ReadDir(backendsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var candidates []string

	for _, libdir := range libdirs {
		if !libdir.IsDir() {
			continue
		}

		dir := filepath.Join(backendsDir, libdir.Name())
		libfiles, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}

		for _, libfile := range libfiles {
			name := libfile.Name()
			if !libfile.IsDir() && strings.HasPrefix(name, PluginPrefix) && strings.HasSuffix(name, PluginExtension) {
				candidates = append(candidates, filepath.Join(dir, name))
				break
			}
		}
	}

	return candidates, nil
}

// GoPluginLoader loads exporters built with -buildmode=plugin.
type GoPluginLoader struct{}

// Load opens path and looks up its NewExporter constructor.
func (GoPluginLoader) Load(path string) (Factory, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}

	sym, err := p.Lookup(PluginSymbol)
	if err != nil {
		return nil, err
	}

	switch fn := sym.(type) {
	case func() Exporter:
		return fn, nil
	case *func() Exporter:
		return *fn, nil
	default:
		return nil, fmt.Errorf("%s in %s has type %T, want func() exporter.Exporter", PluginSymbol, path, sym)
	}
}
