// Package datastream models perception streams: ordered sequences of
// annotated frames captured across one or more channels.
//
// The on-disk representation is the stremf JSON format (version 1.0.0);
// see Importer for decoding.
package datastream

import "github.com/strem-org/strem/pkg/geometry"

// Annotation is a labeled axis-aligned bounding box with a confidence
// score. Annotations are immutable once decoded; Score is opaque
// metadata and never participates in matching.
type Annotation struct {
	Class string
	Score float64
	BBox  geometry.Box
}

// Image holds metadata for the frame capture backing a sample.
// Path has already been resolved against the stream's base directory.
type Image struct {
	Path   string
	Width  int
	Height int
}

// Sample is the data one channel produced for a single frame.
type Sample struct {
	Channel     string
	Timestamp   string
	Image       Image
	Annotations []Annotation
}

// Classes returns the annotations carrying the given class label, in
// stream order.
func (s *Sample) Classes(class string) []Annotation {
	var out []Annotation
	for _, a := range s.Annotations {
		if a.Class == class {
			out = append(out, a)
		}
	}
	return out
}

// Frame is one time-indexed point in a perception stream.
//
// Index increases monotonically along the stream but matching is
// positional; Timestamp is carried through for reporting only.
type Frame struct {
	Index     int
	Timestamp string
	Samples   []Sample
}

// Sample selects the sample for the named channel. An empty channel
// name selects the first sample. Returns nil when no sample qualifies.
func (f *Frame) Sample(channel string) *Sample {
	if len(f.Samples) == 0 {
		return nil
	}
	if channel == "" {
		return &f.Samples[0]
	}
	for i := range f.Samples {
		if f.Samples[i].Channel == channel {
			return &f.Samples[i]
		}
	}
	return nil
}

// Source yields frames one at a time. Next returns io.EOF after the
// final frame.
type Source interface {
	Next() (*Frame, error)
}
