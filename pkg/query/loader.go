// Package query loads named SpRE queries from YAML files, so common
// scenario patterns can be versioned and invoked by id instead of
// retyped on the command line.
package query

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strem-org/strem/pkg/spre"
)

// Query is a reusable named pattern.
type Query struct {
	ID          string
	Name        string
	Pattern     string
	Description string
}

// Loader handles loading queries from YAML files.
type Loader struct{}

// NewLoader creates a query loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses queries from YAML bytes. Every pattern is compiled once
// to reject broken query files before any stream is touched.
func (l *Loader) Load(data []byte) ([]*Query, error) {
	var file yamlQueriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}

	if len(file.Queries) == 0 {
		return nil, fmt.Errorf("no queries found")
	}

	queries := make([]*Query, 0, len(file.Queries))
	seen := make(map[string]bool, len(file.Queries))

	for _, yq := range file.Queries {
		if yq.ID == "" {
			return nil, fmt.Errorf("query %q: missing id", yq.Name)
		}
		if seen[yq.ID] {
			return nil, fmt.Errorf("duplicate query id %q", yq.ID)
		}
		seen[yq.ID] = true

		if _, err := spre.Parse(yq.Pattern); err != nil {
			return nil, fmt.Errorf("query %q: %w", yq.ID, err)
		}

		queries = append(queries, &Query{
			ID:          yq.ID,
			Name:        yq.Name,
			Pattern:     yq.Pattern,
			Description: yq.Description,
		})
	}

	return queries, nil
}

// LoadFile loads queries from a YAML file path.
func (l *Loader) LoadFile(path string) ([]*Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file %s: %w", path, err)
	}
	return l.Load(data)
}

// Find returns the query with the given id from a loaded set.
func Find(queries []*Query, id string) (*Query, error) {
	for _, q := range queries {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, fmt.Errorf("query %q not found", id)
}
