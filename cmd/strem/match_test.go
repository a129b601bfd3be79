package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strem-org/strem/pkg/matcher"
)

func TestResolveInputs(t *testing.T) {
	pattern, streams, err := resolveInputs([]string{"[[:bus:]]", "a.json", "b.json"})
	require.NoError(t, err)
	assert.Equal(t, "[[:bus:]]", pattern)
	assert.Equal(t, []string{"a.json", "b.json"}, streams)

	// No stream arguments defaults to standard input.
	pattern, streams, err = resolveInputs([]string{"[[:bus:]]"})
	require.NoError(t, err)
	assert.Equal(t, "[[:bus:]]", pattern)
	assert.Equal(t, []string{stdinName}, streams)

	_, _, err = resolveInputs(nil)
	assert.Error(t, err)
}

func TestResolveInputsNamedQuery(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "queries.yml")
	require.NoError(t, os.WriteFile(file, []byte(
		"queries:\n  - id: bus\n    pattern: \"[[:bus:]]\"\n",
	), 0o644))

	matchQueries = file
	matchQueryID = "bus"
	defer func() {
		matchQueries = ""
		matchQueryID = ""
	}()

	pattern, streams, err := resolveInputs([]string{"run.json"})
	require.NoError(t, err)
	assert.Equal(t, "[[:bus:]]", pattern)
	assert.Equal(t, []string{"run.json"}, streams)
}

func TestPrinterFormat(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf)

	p.match("drive.json", matcher.Interval{Start: 1, End: 4})
	assert.Equal(t, "drive.json:1-4\n", buf.String())
}
