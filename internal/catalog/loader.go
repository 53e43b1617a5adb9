package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// catalogFile is the on-disk JSON shape of an alternate card set.
type catalogFile struct {
	Categories []Category        `json:"categories"`
	Cards      map[string][]Card `json:"cards"`
}

// LoadFile reads a catalog from a JSON file. The file must declare at least
// one category with at least one card; structural cleanup (duplicate ids,
// missing colors) follows the same rules as New.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	c := New(file.Categories, file.Cards)
	if _, ok := c.FirstNonEmptyCategory(); !ok {
		return nil, fmt.Errorf("catalog file %s contains no cards", path)
	}

	return c, nil
}
