// Package exporter writes benchmark results as line-delimited JSON, one
// flattened object per result, optionally gzip-compressed.
package exporter

import (
	"io"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"

	"github.com/mnmehta/benchmark-wrapper/pkg/benchmark"
	"github.com/mnmehta/benchmark-wrapper/pkg/errors"
)

// Exporter streams flattened results to a writer
type Exporter struct {
	encoder  *gojson.Encoder
	gzWriter *gzip.Writer
	file     *os.File
	exported int
}

// New creates an exporter writing to w. With compress set, output is wrapped
// in a gzip stream that Close flushes.
func New(w io.Writer, compress bool) *Exporter {
	e := &Exporter{}
	if compress {
		e.gzWriter = gzip.NewWriter(w)
		w = e.gzWriter
	}
	e.encoder = gojson.NewEncoder(w)
	return e
}

// NewFile creates an exporter writing to the file at path, truncating any
// existing content. With compress set the output is gzip-compressed.
func NewFile(path string, compress bool) (*Exporter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig,
			"failed to create export file "+path)
	}
	e := New(f, compress)
	e.file = f
	return e, nil
}

// Export writes one result as a single JSON line
func (e *Exporter) Export(result benchmark.Result) error {
	// Encode appends a trailing newline, giving one object per line
	if err := e.encoder.Encode(result.ToJSONable()); err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal,
			"failed to encode result for "+result.Name)
	}
	e.exported++
	return nil
}

// Exported returns the number of results written so far
func (e *Exporter) Exported() int {
	return e.exported
}

// Close flushes the gzip stream and closes the underlying file, if any
func (e *Exporter) Close() error {
	if e.gzWriter != nil {
		if err := e.gzWriter.Close(); err != nil {
			return errors.Wrap(err, errors.ErrorTypeInternal,
				"failed to flush compressed export stream")
		}
	}
	if e.file != nil {
		if err := e.file.Close(); err != nil {
			return errors.Wrap(err, errors.ErrorTypeInternal,
				"failed to close export file")
		}
	}
	return nil
}
