package templates

import (
	"context"
	"fmt"
	"os"
)

// StaticSource serves a catalog that is already in memory.
type StaticSource struct {
	catalog *Catalog
}

func NewStaticSource(c *Catalog) StaticSource {
	return StaticSource{catalog: c}
}

func (s StaticSource) Catalog(_ context.Context) (*Catalog, error) {
	if s.catalog == nil {
		return Builtin(), nil
	}
	return s.catalog, nil
}

// FileSource reads a YAML catalog from disk on each call.
type FileSource struct {
	Path string
}

func (s FileSource) Catalog(_ context.Context) (*Catalog, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("templates: read %s: %w", s.Path, err)
	}
	return Parse(raw)
}
