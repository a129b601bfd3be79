package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const queriesYAML = `
queries:
  - id: bus-appears
    name: Bus appears
    pattern: "[[:bus:]]"
    description: A bus is visible for one frame.
  - id: near-collision
    name: Pedestrian/car overlap
    pattern: "[<nonempty>([:pedestrian:]&[:car:])]{3,}"
`

func TestLoad(t *testing.T) {
	loader := NewLoader()

	queries, err := loader.Load([]byte(queriesYAML))
	require.NoError(t, err)
	require.Len(t, queries, 2)

	assert.Equal(t, "bus-appears", queries[0].ID)
	assert.Equal(t, "[[:bus:]]", queries[0].Pattern)
	assert.Equal(t, "Pedestrian/car overlap", queries[1].Name)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not yaml", data: "{{{"},
		{name: "empty", data: "queries: []"},
		{name: "missing id", data: "queries:\n  - name: x\n    pattern: \"[[:a:]]\""},
		{
			name: "duplicate id",
			data: "queries:\n  - id: a\n    pattern: \"[[:a:]]\"\n  - id: a\n    pattern: \"[[:b:]]\"",
		},
		{name: "broken pattern", data: "queries:\n  - id: a\n    pattern: \"[:a:]\""},
	}

	loader := NewLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Load([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestFind(t *testing.T) {
	loader := NewLoader()
	queries, err := loader.Load([]byte(queriesYAML))
	require.NoError(t, err)

	q, err := Find(queries, "near-collision")
	require.NoError(t, err)
	assert.Equal(t, "near-collision", q.ID)

	_, err = Find(queries, "missing")
	assert.Error(t, err)
}
