package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/cygni-arcana/internal/star"
)

//go:embed catalog.toml
var defaultCatalog string

// Catalog holds an ordered set of star records
type Catalog struct {
	Name        string
	Description string
	Stars       []star.Star
}

// CatalogConfig mirrors the catalog TOML document
type CatalogConfig struct {
	Catalog CatalogSection `toml:"catalog"`
	Stars   []star.Star    `toml:"star"`
}

type CatalogSection struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Default returns the embedded star catalog
func Default() (*Catalog, error) {
	var config CatalogConfig
	if _, err := toml.Decode(defaultCatalog, &config); err != nil {
		return nil, fmt.Errorf("error parsing embedded catalog: %v", err)
	}
	return fromConfig(&config), nil
}

// Load loads a star catalog from a TOML file
func Load(path string) (*Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("catalog file not found: %s", path)
	}

	var config CatalogConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error parsing catalog file: %v", err)
	}
	return fromConfig(&config), nil
}

func fromConfig(config *CatalogConfig) *Catalog {
	return &Catalog{
		Name:        config.Catalog.Name,
		Description: config.Catalog.Description,
		Stars:       config.Stars,
	}
}

// Find looks up a star by name, case-insensitively
func (c *Catalog) Find(name string) (*star.Star, error) {
	for i := range c.Stars {
		if strings.EqualFold(c.Stars[i].Name, name) {
			return &c.Stars[i], nil
		}
	}
	return nil, fmt.Errorf("star not found in catalog: %s", name)
}
