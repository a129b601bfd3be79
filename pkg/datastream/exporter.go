package datastream

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Exporter copies the images of matched frames into a target directory.
// Filenames follow frame-<index><ext> so exported frames sort in stream
// order regardless of their source names.
type Exporter struct {
	dir     string
	channel string
}

// NewExporter creates an exporter writing into dir, creating it if
// needed. channel selects which sample's image to export per frame; an
// empty channel selects the first sample.
func NewExporter(dir, channel string) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}
	return &Exporter{dir: dir, channel: channel}, nil
}

// Export writes the image of every frame in frames into the target
// directory. Frames whose selected sample has no image path are
// skipped.
func (e *Exporter) Export(frames []*Frame) error {
	for _, frame := range frames {
		sample := frame.Sample(e.channel)
		if sample == nil || sample.Image.Path == "" {
			continue
		}

		name := fmt.Sprintf("frame-%06d%s", frame.Index, filepath.Ext(sample.Image.Path))
		if err := copyFile(sample.Image.Path, filepath.Join(e.dir, name)); err != nil {
			return fmt.Errorf("exporting frame %d: %w", frame.Index, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
