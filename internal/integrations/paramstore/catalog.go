package paramstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cardtext/internal/templates"
)

// CatalogSource loads a YAML template catalog stored as one parameter.
type CatalogSource struct {
	getter Getter
	name   string
}

func NewCatalogSource(getter Getter, name string) (*CatalogSource, error) {
	if getter == nil {
		return nil, errors.New("paramstore: getter must not be nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("paramstore: catalog parameter name must not be empty")
	}
	return &CatalogSource{getter: getter, name: name}, nil
}

func (s *CatalogSource) Catalog(ctx context.Context) (*templates.Catalog, error) {
	raw, err := s.getter.GetParameter(ctx, s.name)
	if err != nil {
		return nil, err
	}
	c, err := templates.Parse([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("paramstore: catalog %q: %w", s.name, err)
	}
	return c, nil
}
