package koremake

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Norgate-AV/koremake/internal/cache"
	"github.com/Norgate-AV/koremake/internal/compiler"
	"github.com/Norgate-AV/koremake/internal/config"
	"github.com/Norgate-AV/koremake/internal/output"
	"github.com/Norgate-AV/koremake/internal/platform"
	"github.com/Norgate-AV/koremake/internal/project"
)

// ShaderJobs returns a compile job for every shader source of p, in file order.
func ShaderJobs(cfg *config.Config, p *project.Project) []compiler.Job {
	dialect := platform.ShaderDialect(cfg.Target, cfg.Graphics)

	var jobs []compiler.Job
	for _, f := range p.Files() {
		if !compiler.IsShader(f.File) {
			continue
		}

		job := compiler.Job{
			Dialect:  dialect,
			Source:   f.File,
			Temp:     filepath.Join(cfg.To, "build"),
			Platform: cfg.Target,
		}
		job.Dest = filepath.Join(p.DebugDir(), job.Name())

		jobs = append(jobs, job)
	}

	return jobs
}

// compileShaders runs the jobs one after another and stops at the first failure.
func compileShaders(ctx context.Context, cfg *config.Config, log output.Sink, c *compiler.Compiler, p *project.Project) error {
	jobs := ShaderJobs(cfg, p)
	if len(jobs) == 0 {
		return nil
	}

	var shaderCache *cache.Cache
	if cfg.ShaderCache {
		var err error
		shaderCache, err = cache.New(filepath.Join(cfg.To, cache.DefaultCacheDir))
		if err != nil {
			log.Debug("Shader cache unavailable", "error", err)
		} else {
			defer shaderCache.Close()
		}
	}

	for i, job := range jobs {
		log.Info(fmt.Sprintf("Compiling shader %d of %d (%s).", i+1, len(jobs), job.Name()))

		if shaderCache != nil && restoreShader(log, shaderCache, job, cfg.Debug) {
			continue
		}

		if err := c.Compile(ctx, cfg.From, job); err != nil {
			return fmt.Errorf("compiling %s: %w", job.Source, err)
		}

		if shaderCache != nil {
			if err := shaderCache.Store(job, cfg.Debug); err != nil {
				log.Debug("Failed to cache shader", "source", job.Source, "error", err)
			}
		}
	}

	return nil
}

func restoreShader(log output.Sink, c *cache.Cache, job compiler.Job, debug bool) bool {
	entry, err := c.Get(job, debug)
	if err != nil {
		log.Debug("Shader cache lookup failed", "source", job.Source, "error", err)
		return false
	}

	if entry == nil {
		return false
	}

	if err := c.Restore(entry, job); err != nil {
		log.Debug("Failed to restore cached shader", "source", job.Source, "error", err)
		return false
	}

	log.Debug("Restored shader from cache", "source", job.Source)
	return true
}
