package datastream

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "version": "1.0.0",
  "frames": [
    {
      "index": 0,
      "timestamp": "2023-01-01T00:00:00Z",
      "samples": [
        {
          "channel": "cam::back",
          "timestamp": "2023-01-01T00:00:00Z",
          "image": {
            "path": "images/0001.jpg",
            "dimensions": { "width": 1920, "height": 1080 }
          },
          "annotations": [
            {
              "class": "bus",
              "score": 0.92,
              "bbox": { "x": 10.0, "y": 20.0, "w": 100.0, "h": 50.0 }
            }
          ]
        }
      ]
    },
    {
      "index": 1,
      "timestamp": "2023-01-01T00:00:01Z",
      "samples": []
    }
  ]
}`

func TestImporterDecodesDocument(t *testing.T) {
	im, err := NewImporter(strings.NewReader(sampleDocument), "/data/run1")
	require.NoError(t, err)
	require.Equal(t, 2, im.Len())

	frame, err := im.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, frame.Index)
	require.Len(t, frame.Samples, 1)

	sample := frame.Samples[0]
	assert.Equal(t, "cam::back", sample.Channel)
	assert.Equal(t, "/data/run1/images/0001.jpg", sample.Image.Path)
	assert.Equal(t, 1920, sample.Image.Width)

	require.Len(t, sample.Annotations, 1)
	ann := sample.Annotations[0]
	assert.Equal(t, "bus", ann.Class)
	assert.Equal(t, 0.92, ann.Score)
	assert.Equal(t, 100.0, ann.BBox.W)

	frame, err = im.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, frame.Index)

	_, err = im.Next()
	assert.Equal(t, io.EOF, err)
}

func TestImporterRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "wrong version",
			doc:  `{"version": "2.0.0", "frames": []}`,
		},
		{
			name: "not json",
			doc:  `version: 1.0.0`,
		},
		{
			name: "missing index",
			doc:  `{"version": "1.0.0", "frames": [{"timestamp": "t", "samples": []}]}`,
		},
		{
			name: "negative box width",
			doc: `{"version": "1.0.0", "frames": [{"index": 0, "timestamp": "t", "samples": [
				{"channel": "c", "timestamp": "t",
				 "image": {"path": "p", "dimensions": {"width": 1, "height": 1}},
				 "annotations": [{"class": "car", "score": 0.5,
				                  "bbox": {"x": 0, "y": 0, "w": -1, "h": 2}}]}]}]}`,
		},
		{
			name: "annotation missing class",
			doc: `{"version": "1.0.0", "frames": [{"index": 0, "timestamp": "t", "samples": [
				{"channel": "c", "timestamp": "t",
				 "image": {"path": "p", "dimensions": {"width": 1, "height": 1}},
				 "annotations": [{"score": 0.5, "bbox": {"x": 0, "y": 0, "w": 1, "h": 2}}]}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImporter(strings.NewReader(tt.doc), ".")
			require.Error(t, err)

			var schemaErr *SchemaError
			assert.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestFrameSampleSelection(t *testing.T) {
	frame := &Frame{
		Samples: []Sample{
			{Channel: "cam::front"},
			{Channel: "cam::back"},
		},
	}

	assert.Equal(t, "cam::front", frame.Sample("").Channel)
	assert.Equal(t, "cam::back", frame.Sample("cam::back").Channel)
	assert.Nil(t, frame.Sample("lidar::top"))
	assert.Nil(t, (&Frame{}).Sample(""))
}
