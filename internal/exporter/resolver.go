package exporter

import (
	"fmt"
	"sync"

	kerrors "github.com/Norgate-AV/koremake/internal/errors"
	"github.com/Norgate-AV/koremake/internal/platform"
)

// builtins maps platforms to their dedicated exporters. Known platforms
// missing from the table use the Visual Studio exporter.
var builtins = map[platform.ID]Factory{
	platform.IOS:     NewXCodeExporter,
	platform.OSX:     NewXCodeExporter,
	platform.TvOS:    NewXCodeExporter,
	platform.Android: NewAndroidExporter,
	platform.HTML5:   NewEmscriptenExporter,
	platform.Linux:   NewLinuxExporter,
	platform.Pi:      NewLinuxExporter,
	platform.Tizen:   NewTizenExporter,
}

// Resolver selects the exporter for a platform. Plugin exporters found in
// the backends directory serve platforms outside the known set.
type Resolver struct {
	backendsDir string
	loader      PluginLoader

	once    sync.Once
	plugin  *Plugin
	scanErr error
}

// NewResolver creates a resolver that discovers plugins under backendsDir
// and loads them with loader.
func NewResolver(backendsDir string, loader PluginLoader) *Resolver {
	return &Resolver{
		backendsDir: backendsDir,
		loader:      loader,
	}
}

// Resolve returns the exporter for target.
func (r *Resolver) Resolve(target platform.ID) (Exporter, error) {
	if factory, ok := builtins[target]; ok {
		return factory(), nil
	}

	if platform.IsKnown(target) {
		return NewVisualStudioExporter(), nil
	}

	plugin, err := r.discover()
	if err != nil {
		return nil, err
	}

	if plugin == nil {
		return nil, kerrors.Wrap(kerrors.ErrNoExporter, fmt.Sprintf("no exporter found for platform %s", target))
	}

	return plugin.Create(), nil
}

// discover scans and loads the backends directory once per resolver.
func (r *Resolver) discover() (*Plugin, error) {
	r.once.Do(func() {
		candidates, err := DiscoverPlugins(r.backendsDir)
		if err != nil {
			r.scanErr = err
			return
		}

		if len(candidates) == 0 || r.loader == nil {
			return
		}

		factory, err := r.loader.Load(candidates[0])
		if err != nil {
			r.scanErr = fmt.Errorf("loading exporter plugin %s: %w", candidates[0], err)
			return
		}

		r.plugin = &Plugin{Path: candidates[0], Create: factory}
	})

	return r.plugin, r.scanErr
}
