package datastream

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/strem-org/strem/pkg/geometry"
)

// FormatVersion is the only stremf schema version the importer accepts.
const FormatVersion = "1.0.0"

// SchemaError reports a malformed stream document: wrong version,
// missing required field, or an invalid value. It is fatal for the
// offending stream only.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string {
	return "stremf: " + e.Msg
}

func schemaErrorf(format string, args ...any) *SchemaError {
	return &SchemaError{Msg: fmt.Sprintf(format, args...)}
}

// stremf wire format, bit-exact per the published schema.
type stremfDocument struct {
	Version string        `json:"version"`
	Frames  []stremfFrame `json:"frames"`
}

type stremfFrame struct {
	Index     *int           `json:"index"`
	Timestamp string         `json:"timestamp"`
	Samples   []stremfSample `json:"samples"`
}

type stremfSample struct {
	Channel     string             `json:"channel"`
	Timestamp   string             `json:"timestamp"`
	Image       stremfImage        `json:"image"`
	Annotations []stremfAnnotation `json:"annotations"`
}

type stremfImage struct {
	Path       string           `json:"path"`
	Dimensions stremfDimensions `json:"dimensions"`
}

type stremfDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type stremfAnnotation struct {
	Class string     `json:"class"`
	Score float64    `json:"score"`
	BBox  *stremfBox `json:"bbox"`
}

type stremfBox struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Importer decodes a stremf document and hands out its frames one at a
// time, satisfying Source.
type Importer struct {
	frames []Frame
	index  int
}

// Open opens a stremf file and prepares its frames. Image paths are
// resolved relative to the file's directory.
func Open(path string) (*Importer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stream: %w", err)
	}
	defer f.Close()

	return NewImporter(f, filepath.Dir(path))
}

// NewImporter decodes a stremf document from r. Image paths are
// resolved relative to baseDir; pass "." when streaming from stdin.
func NewImporter(r io.Reader, baseDir string) (*Importer, error) {
	var doc stremfDocument

	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, schemaErrorf("decoding document: %v", err)
	}

	if doc.Version != FormatVersion {
		return nil, schemaErrorf("unsupported version %q (want %s)", doc.Version, FormatVersion)
	}

	frames := make([]Frame, 0, len(doc.Frames))
	for i, df := range doc.Frames {
		frame, err := convertFrame(i, df, baseDir)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	return &Importer{frames: frames}, nil
}

// Next returns the next frame in stream order, or io.EOF.
func (im *Importer) Next() (*Frame, error) {
	if im.index >= len(im.frames) {
		return nil, io.EOF
	}
	f := &im.frames[im.index]
	im.index++
	return f, nil
}

// Len reports the total number of frames in the document.
func (im *Importer) Len() int {
	return len(im.frames)
}

// Window returns the frames of a half-open position range, clamped to
// the document. Used to hand matched frames to the exporter.
func (im *Importer) Window(start, end int) []*Frame {
	if start < 0 {
		start = 0
	}
	if end > len(im.frames) {
		end = len(im.frames)
	}

	var out []*Frame
	for i := start; i < end; i++ {
		out = append(out, &im.frames[i])
	}
	return out
}

func convertFrame(pos int, df stremfFrame, baseDir string) (Frame, error) {
	if df.Index == nil {
		return Frame{}, schemaErrorf("frame %d: missing index", pos)
	}
	if *df.Index < 0 {
		return Frame{}, schemaErrorf("frame %d: negative index %d", pos, *df.Index)
	}

	frame := Frame{
		Index:     *df.Index,
		Timestamp: df.Timestamp,
		Samples:   make([]Sample, 0, len(df.Samples)),
	}

	for _, ds := range df.Samples {
		sample := Sample{
			Channel:   ds.Channel,
			Timestamp: ds.Timestamp,
			Image: Image{
				Path:   resolvePath(baseDir, ds.Image.Path),
				Width:  ds.Image.Dimensions.Width,
				Height: ds.Image.Dimensions.Height,
			},
		}

		for _, da := range ds.Annotations {
			if da.Class == "" {
				return Frame{}, schemaErrorf("frame %d: annotation missing class", pos)
			}
			if da.BBox == nil {
				return Frame{}, schemaErrorf("frame %d: annotation %q missing bbox", pos, da.Class)
			}
			if da.BBox.W < 0 || da.BBox.H < 0 {
				return Frame{}, schemaErrorf("frame %d: annotation %q has negative dimensions", pos, da.Class)
			}

			sample.Annotations = append(sample.Annotations, Annotation{
				Class: da.Class,
				Score: da.Score,
				BBox:  geometry.Box{X: da.BBox.X, Y: da.BBox.Y, W: da.BBox.W, H: da.BBox.H},
			})
		}

		frame.Samples = append(frame.Samples, sample)
	}

	return frame, nil
}

func resolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
