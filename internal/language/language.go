// Package language loads word-list catalogs from JSON files.
package language

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/termitype/termitype/internal/model"
)

// DefaultName is preferred when no language is requested explicitly.
const DefaultName = "english"

// Catalog maps language names to their word lists.
type Catalog struct {
	languages map[string]model.Language
}

type languageFile struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// Load reads every *.json file in dir into a catalog. Malformed files are
// skipped with a warning; a missing directory yields an empty catalog.
func Load(dir string) (*Catalog, error) {
	catalog := &Catalog{languages: map[string]model.Language{}}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logErrf("Warning: languages directory %q not found\n", dir)
			return catalog, nil
		}
		return nil, fmt.Errorf("failed to read languages directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		lang, err := loadFile(path)
		if err != nil {
			logErrf("Warning: skipping language file %s: %v\n", path, err)
			continue
		}
		catalog.languages[lang.Name] = lang
	}
	return catalog, nil
}

func loadFile(path string) (model.Language, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Language{}, err
	}
	var file languageFile
	if err := json.Unmarshal(data, &file); err != nil {
		return model.Language{}, fmt.Errorf("failed to decode: %w", err)
	}
	name := file.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), ".json")
	}
	return model.Language{Name: name, Words: file.Words}, nil
}

// Get returns the language with the given name.
func (c *Catalog) Get(name string) (model.Language, bool) {
	lang, ok := c.languages[name]
	return lang, ok
}

// Names returns all language names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.languages))
	for name := range c.languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of loaded languages.
func (c *Catalog) Len() int {
	return len(c.languages)
}

// Default returns the english language if present, otherwise the first
// available name in sorted order.
func (c *Catalog) Default() (model.Language, bool) {
	if lang, ok := c.languages[DefaultName]; ok {
		return lang, true
	}
	names := c.Names()
	if len(names) == 0 {
		return model.Language{}, false
	}
	return c.languages[names[0]], true
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
