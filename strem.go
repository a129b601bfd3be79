// Package strem provides spatial regular expression matching over
// perception streams.
//
// A SpRE extends classical regular expressions with per-frame spatial
// predicates: the outer operators describe temporal structure, while
// [...]-delimited symbol groups hold boolean and geometric formulas
// over object classes.
//
// # Basic Usage
//
// Compile a pattern and run it over a stream:
//
//	pattern, err := strem.Compile("[[:bus:]]{1,}[![:bus:]]")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stream, err := strem.Open("drive.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matches, err := pattern.FindAll(stream, strem.Options{})
//	for _, m := range matches {
//	    fmt.Printf("%d-%d\n", m.Start, m.End)
//	}
//
// Compiled patterns are immutable and safe to share across concurrent
// streams; each call to Pattern.Match carries its own state.
package strem

import (
	"io"

	"github.com/strem-org/strem/pkg/datastream"
	"github.com/strem-org/strem/pkg/matcher"
)

// Re-export commonly used types for convenience. Users can import just
// "github.com/strem-org/strem" without subpackages.
type (
	// Pattern is a compiled SpRE.
	Pattern = matcher.Pattern

	// Interval is a half-open matched frame range.
	Interval = matcher.Interval

	// Options configure one matching run.
	Options = matcher.Options

	// Frame is one time-indexed point of a perception stream.
	Frame = datastream.Frame

	// Sample is one channel's data for a frame.
	Sample = datastream.Sample

	// Annotation is a labeled bounding box with a confidence score.
	Annotation = datastream.Annotation
)

// Compile parses and compiles a SpRE pattern.
func Compile(pattern string) (*Pattern, error) {
	return matcher.Compile(pattern)
}

// Open opens a stremf JSON stream file.
func Open(path string) (*datastream.Importer, error) {
	return datastream.Open(path)
}

// NewImporter decodes a stremf stream from r, resolving image paths
// against baseDir.
func NewImporter(r io.Reader, baseDir string) (*datastream.Importer, error) {
	return datastream.NewImporter(r, baseDir)
}
