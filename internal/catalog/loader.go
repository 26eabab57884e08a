package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embeddedData embed.FS

// ErrUnknownDomain is returned when no catalog exists for a domain key.
var ErrUnknownDomain = errors.New("unknown catalog domain")

// catalogFile is the on-disk YAML layout of a catalog.
type catalogFile struct {
	Domain        string     `yaml:"domain" validate:"required"`
	Name          string     `yaml:"name"`
	LocalizedName string     `yaml:"localized_name"`
	Flag          string     `yaml:"flag"`
	Signs         []signFile `yaml:"signs" validate:"unique=ID,dive"`
}

type signFile struct {
	ID            int    `yaml:"id" validate:"gt=0"`
	Name          string `yaml:"name"`
	LocalizedName string `yaml:"localized_name" validate:"required"`
	Category      string `yaml:"category" validate:"required"`
	Description   string `yaml:"description"`
	Image         string `yaml:"image"`
}

// Registry holds the catalogs of every known domain.
type Registry struct {
	catalogs map[string]*Catalog
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{catalogs: make(map[string]*Catalog)}
}

// Load returns a registry populated with the embedded catalogs.
func Load() (*Registry, error) {
	r := NewRegistry()
	if err := r.loadFS(embeddedData, "data"); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadDir adds every *.yaml / *.yml catalog in dir, replacing embedded
// catalogs with the same domain.
func (r *Registry) LoadDir(dir string) error {
	slog.Debug("loading catalogs from directory", "dir", dir)
	return r.loadFS(os.DirFS(dir), ".")
}

func (r *Registry) loadFS(fsys fs.FS, root string) error {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return fmt.Errorf("read catalog dir: %w", err)
	}
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		data, err := fs.ReadFile(fsys, filepath.ToSlash(filepath.Join(root, e.Name())))
		if err != nil {
			return fmt.Errorf("read %s: %w", e.Name(), err)
		}
		c, err := Parse(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		r.Add(c)
		slog.Debug("catalog loaded", "domain", c.Domain, "signs", c.Len())
	}
	return nil
}

// Add registers a catalog under its domain key.
func (r *Registry) Add(c *Catalog) {
	r.catalogs[c.Domain] = c
}

// Get returns the catalog for a domain key (case-insensitive).
func (r *Registry) Get(domain string) (*Catalog, error) {
	c, ok := r.catalogs[strings.ToLower(domain)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
	}
	return c, nil
}

// Domains returns the registered domain keys, sorted.
func (r *Registry) Domains() []string {
	out := make([]string, 0, len(r.catalogs))
	for d := range r.catalogs {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Parse decodes a YAML catalog and validates its records. The document is
// checked against the catalog schema, then the decoded values against the
// struct tags (positive unique ids, required names).
func Parse(data []byte) (*Catalog, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}
	if err := validator.New().Struct(&f); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	signs := make([]SignRecord, 0, len(f.Signs))
	for _, s := range f.Signs {
		cat, err := ParseCategory(s.Category)
		if err != nil || cat == CategoryAll {
			return nil, fmt.Errorf("sign %d: invalid category %q", s.ID, s.Category)
		}
		name := s.Name
		if name == "" {
			name = s.LocalizedName
		}
		signs = append(signs, SignRecord{
			ID:            s.ID,
			CanonicalName: name,
			LocalizedName: s.LocalizedName,
			Category:      cat,
			Description:   s.Description,
			ImageRef:      s.Image,
		})
	}

	c := New(f.Domain, f.Name, signs)
	c.LocalizedName = f.LocalizedName
	c.Flag = f.Flag
	return c, nil
}
