package cli

import (
	"fmt"
	"os"

	"github.com/emmetio/snippets-registry/internal/config"
	"github.com/emmetio/snippets-registry/internal/log"
	"github.com/emmetio/snippets-registry/internal/registry"
	"github.com/emmetio/snippets-registry/internal/snippets"
)

// buildSources returns the explicit --file sources, or the configured
// global, user, and project files.
func buildSources() ([]registry.Source, error) {
	if len(rootFiles) > 0 {
		return registry.FileSources(rootFiles), nil
	}

	settings, err := config.Current()
	if err != nil {
		return nil, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	return registry.DefaultSources(settings, cwd), nil
}

// loadRegistry builds the registry and applies --disable.
func loadRegistry() (*snippets.Registry[string], []registry.LoadResult, error) {
	sources, err := buildSources()
	if err != nil {
		return nil, nil, fmt.Errorf("building sources: %w", err)
	}

	reg, results, err := registry.Build(sources)
	if err != nil {
		return nil, nil, err
	}

	for _, level := range rootDisable {
		store, ok := reg.Get(snippets.Level(level))
		if !ok {
			log.Warn(log.CatRegistry, "no layer to disable", "level", level)
			continue
		}
		store.Disable()
	}
	return reg, results, nil
}

// sourceName returns the name of the source loaded at level.
func sourceName(results []registry.LoadResult, level snippets.Level) string {
	if src, ok := registry.Find(results, level); ok {
		return src.Name
	}
	return "-"
}
