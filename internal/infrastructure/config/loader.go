package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/younwookim/kumite/internal/domain/catalog"
)

// Loader loads engine, stage and character data using the fs.FS
// interface so tests can feed it an in-memory tree.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from a filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadEngine loads engine.json
func (l *Loader) LoadEngine() (*EngineConfig, error) {
	data, err := fs.ReadFile(l.fsys, "engine.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read engine.json: %w", err)
	}

	var cfg EngineConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine.json: %w", err)
	}

	return &cfg, nil
}

// LoadStage loads a stage JSON file by name
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	p := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadCharacter loads and builds a character YAML file by name
func (l *Loader) LoadCharacter(name string) (*catalog.Character, error) {
	p := "characters/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read character %s: %w", name, err)
	}

	spec, err := ParseCharacter(data)
	if err != nil {
		return nil, fmt.Errorf("character %s: %w", name, err)
	}

	return spec.Build()
}

// LoadCatalog builds a move catalog from every character file in the
// characters directory.
func (l *Loader) LoadCatalog() (*catalog.Catalog, error) {
	entries, err := fs.ReadDir(l.fsys, "characters")
	if err != nil {
		return nil, fmt.Errorf("failed to read characters dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)

	chars := make([]*catalog.Character, 0, len(names))
	for _, name := range names {
		ch, err := l.LoadCharacter(name)
		if err != nil {
			return nil, err
		}
		chars = append(chars, ch)
	}

	return catalog.New(chars...), nil
}
