package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/emmetio/snippets-registry/internal/config"
	"github.com/emmetio/snippets-registry/internal/log"
	"github.com/emmetio/snippets-registry/internal/snippetfile"
	"github.com/emmetio/snippets-registry/internal/snippets"
)

// Build loads every source into a new registry. Sources whose file does not
// exist are skipped; any other failure aborts the build.
func Build(sources []Source) (*snippets.Registry[string], []LoadResult, error) {
	reg := snippets.New[string]()
	results := make([]LoadResult, 0, len(sources))

	for _, src := range sources {
		if _, err := os.Stat(src.Path); errors.Is(err, fs.ErrNotExist) {
			log.Debug(log.CatRegistry, "snippet file not found, skipping", "source", src.Name, "path", src.Path)
			results = append(results, LoadResult{Source: src, Missing: true})
			continue // not found in this source
		}

		f, err := snippetfile.Load(src.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("loading %s snippets: %w", src.Name, err)
		}

		store, err := reg.Add(src.Level, f.Data)
		if err != nil {
			return nil, nil, fmt.Errorf("registering %s snippets from %s: %w", src.Name, src.Path, err)
		}

		log.Debug(log.CatRegistry, "layer added", "source", src.Name, "level", int(src.Level), "entries", store.Len())
		results = append(results, LoadResult{Source: src, Entries: store.Len()})
	}

	return reg, results, nil
}

// DefaultSources returns the global, user, and project sources described by
// the settings. A relative project file is resolved against projectDir.
func DefaultSources(s *config.Settings, projectDir string) []Source {
	projectFile := s.ProjectFile
	if !filepath.IsAbs(projectFile) {
		projectFile = filepath.Join(projectDir, projectFile)
	}

	return []Source{
		{Name: "global", Level: snippets.LevelGlobal, Path: s.GlobalFile},
		{Name: "user", Level: snippets.LevelUser, Path: s.UserFile},
		{Name: "project", Level: snippets.LevelProject, Path: projectFile},
	}
}

// FileSources turns explicit file paths into sources. Each file gets the
// level equal to its position, so later files take precedence.
func FileSources(paths []string) []Source {
	sources := make([]Source, len(paths))
	for i, p := range paths {
		sources[i] = Source{
			Name:  filepath.Base(p),
			Level: snippets.Level(i),
			Path:  p,
		}
	}
	return sources
}

// Find returns the source registered at level.
func Find(results []LoadResult, level snippets.Level) (Source, bool) {
	for _, r := range results {
		if r.Source.Level == level {
			return r.Source, true
		}
	}
	return Source{}, false
}
