// Package catalog_driver loads the static reading list and math lessons bundled with the binary.
package catalog_driver

import (
	"embed"
	"encoding/json"
	"fmt"

	"unrot/domain"
)

//go:embed data/*.json
var dataFS embed.FS

type Catalog struct {
	Books      []domain.Book
	MathTopics []domain.MathTopic
}

// LoadCatalog decodes the embedded datasets.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := decode("data/books.json", &c.Books); err != nil {
		return nil, err
	}
	if err := decode("data/math.json", &c.MathTopics); err != nil {
		return nil, err
	}
	return &c, nil
}

func decode(name string, v any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}
