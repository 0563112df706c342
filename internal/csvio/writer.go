package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/srdetect/srdetect/internal/spectral"
	"github.com/srdetect/srdetect/internal/timeseries"
)

// TimeFormat selects how output timestamps are rendered.
type TimeFormat string

const (
	// TimeFormatDateTime renders "2006-01-02 15:04:05" in UTC.
	TimeFormatDateTime TimeFormat = "datetime"
	// TimeFormatMillis renders epoch milliseconds.
	TimeFormatMillis TimeFormat = "millis"
)

// ValidTimeFormats returns all supported output time formats.
func ValidTimeFormats() []TimeFormat {
	return []TimeFormat{TimeFormatDateTime, TimeFormatMillis}
}

// FormatTime renders a timestamp in the given format.
func FormatTime(t time.Time, format TimeFormat) string {
	if format == TimeFormatMillis {
		return strconv.FormatInt(t.UnixMilli(), 10)
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}

// WriteResults renders the detection result as CSV: a header line
// "Time,value,saliency,score,output" followed by one row per sample, where
// output is 1 for flagged samples and 0 otherwise. The series and result
// must be index-aligned.
func WriteResults(w io.Writer, series timeseries.Series, result *spectral.Result, format TimeFormat) error {
	if len(result.Flags) != len(series) {
		return fmt.Errorf("result has %d rows for %d samples", len(result.Flags), len(series))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Time", "value", "saliency", "score", "output"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, p := range series {
		out := "0"
		if result.Flags[i] {
			out = "1"
		}
		record := []string{
			FormatTime(p.Time, format),
			formatFloat(p.Value),
			formatFloat(result.Saliency[i]),
			formatFloat(result.Score[i]),
			out,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
