package matcher

// Options configure one matching run over one stream.
type Options struct {
	// MaxCount stops the matcher after this many non-overlapping
	// matches; 0 means unlimited. Once hit, no further frames are
	// pulled from the source.
	MaxCount int

	// Channel selects which sample to evaluate per frame. Empty
	// selects the first sample.
	Channel string
}
