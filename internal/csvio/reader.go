// Package csvio reads timestamped series from CSV input and renders
// detection results back out. The detection core never touches this package;
// it exists so the CLI can stay a thin composition.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/srdetect/srdetect/internal/timeseries"
)

// Open returns a reader for the given input path. "" or "-" selects stdin.
// Compressed files are decompressed transparently based on the extension:
// .gz, .zst, .sz and .snappy.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip input %s: %w", path, err)
		}
		return &decompressed{r: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zstd input %s: %w", path, err)
		}
		return &decompressed{r: zr, closers: []io.Closer{zr.IOReadCloser(), f}}, nil
	case ".sz", ".snappy":
		return &decompressed{r: snappy.NewReader(f), closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// decompressed pairs a decompressing reader with the closers of the layers
// beneath it.
type decompressed struct {
	r       io.Reader
	closers []io.Closer
}

func (d *decompressed) Read(p []byte) (int, error) {
	return d.r.Read(p)
}

func (d *decompressed) Close() error {
	var first error
	for _, c := range d.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ReadSeries parses CSV input with a header row into a series. The Time
// column holds epoch milliseconds, "2006-01-02 15:04:05" or RFC3339; the
// value column holds the sample value. Column match is case-insensitive.
func ReadSeries(r io.Reader) (timeseries.Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	timeCol, valueCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "time":
			timeCol = i
		case "value":
			valueCol = i
		}
	}
	if timeCol < 0 || valueCol < 0 {
		return nil, fmt.Errorf("input must have Time and value columns, got %v", header)
	}

	var series timeseries.Series
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		ts, err := ParseTime(record[timeCol])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[valueCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse value %q: %w", line, record[valueCol], err)
		}

		series = append(series, timeseries.Point{Time: ts, Value: v})
	}

	return series, nil
}

// ParseTime parses a timestamp cell. Integer cells are epoch milliseconds;
// otherwise the "2006-01-02 15:04:05" and RFC3339 layouts are tried in turn.
// Results are normalized to UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q: unrecognized format", s)
}
