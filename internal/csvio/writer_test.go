package csvio

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srdetect/srdetect/internal/spectral"
	"github.com/srdetect/srdetect/internal/timeseries"
)

func testSeries() timeseries.Series {
	base := time.Date(2024, 11, 21, 4, 30, 0, 0, time.UTC)
	return timeseries.Series{
		{Time: base, Value: 1},
		{Time: base.Add(2 * time.Minute), Value: 2},
		{Time: base.Add(4 * time.Minute), Value: 30},
	}
}

func TestWriteResults_DateTime(t *testing.T) {
	result := &spectral.Result{
		Saliency: []float64{0.5, 0.25, 4},
		Score:    []float64{0.1, -0.2, 5.5},
		Flags:    []bool{false, false, true},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, testSeries(), result, TimeFormatDateTime))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Time,value,saliency,score,output", lines[0])
	assert.Equal(t, "2024-11-21 04:30:00,1,0.5,0.1,0", lines[1])
	assert.Equal(t, "2024-11-21 04:32:00,2,0.25,-0.2,0", lines[2])
	assert.Equal(t, "2024-11-21 04:34:00,30,4,5.5,1", lines[3])
}

func TestWriteResults_Millis(t *testing.T) {
	result := &spectral.Result{
		Saliency: []float64{0, 0, 0},
		Score:    []float64{0, 0, 0},
		Flags:    []bool{false, false, false},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, testSeries(), result, TimeFormatMillis))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "1732163400000,"), "got %q", lines[1])
}

func TestWriteResults_NonFiniteScores(t *testing.T) {
	// Non-finite scores are rendered, not masked.
	result := &spectral.Result{
		Saliency: []float64{0, 0, 0},
		Score:    []float64{math.NaN(), math.Inf(1), 0},
		Flags:    []bool{false, true, false},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, testSeries(), result, TimeFormatDateTime))

	out := buf.String()
	assert.Contains(t, out, "NaN")
	assert.Contains(t, out, "+Inf")
}

func TestWriteResults_LengthMismatch(t *testing.T) {
	result := &spectral.Result{
		Saliency: []float64{1},
		Score:    []float64{1},
		Flags:    []bool{true},
	}

	var buf bytes.Buffer
	err := WriteResults(&buf, testSeries(), result, TimeFormatDateTime)
	require.Error(t, err)
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, 11, 21, 4, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-11-21 04:30:00", FormatTime(ts, TimeFormatDateTime))
	assert.Equal(t, "1732163400000", FormatTime(ts, TimeFormatMillis))
}
