package writer

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/handegar/swvplot/base"
	"github.com/handegar/swvplot/dsp"
	"github.com/handegar/swvplot/reader"
)

// RIFF, fmt and data chunk headers as written by beep/wav
const wavHeaderSize = 44

func testSeries() *base.Series {
	return &base.Series{
		Ticks:     []float64{0, 168000, 336000, base.Missing, 672000},
		TimeMs:    []float64{0, 1, 2, base.Missing, 4},
		Amplitude: []float64{16384, base.Missing, -32768, 100, 65536},
	}
}

func TestWriteStreamer(t *testing.T) {
	ws := &WriteStreamer{Data: []float64{0.1, 0.2, 0.3}}
	buf := make([][2]float64, 2)

	n, ok := ws.Stream(buf)
	assert.Equal(t, 2, n)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{0.2, 0.2}, buf[1])

	n, ok = ws.Stream(buf)
	assert.Equal(t, 1, n)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{0.3, 0.3}, buf[0])

	n, ok = ws.Stream(buf)
	assert.Equal(t, 0, n)
	assert.False(t, ok)

	require.NoError(t, ws.Seek(1))
	assert.Equal(t, 1, ws.Position())
	assert.Error(t, ws.Seek(4))
}

func TestPCMToSamples(t *testing.T) {
	samples := PCMToSamples(testSeries(), 32768)
	assert.Equal(t, []float64{0.5, 0, -1, 100.0 / 32768, 1}, samples)
}

func TestSaveAsWAV(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "trace.wav")
	require.NoError(t, SaveAsWAV(filename, 48000, 32768, testSeries()))

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()

	stream, format, err := wav.Decode(f)
	require.NoError(t, err)
	defer stream.Close()

	assert.Equal(t, 48000, int(format.SampleRate))
	assert.Equal(t, 1, format.NumChannels)
	assert.Equal(t, 2, format.Precision)
	assert.Equal(t, 5, stream.Len())
}

// The samples are checked as raw 16 bit values. beep's decoder scales
// 16 bit samples by 1/65535 and would read them back at half amplitude.
func TestSaveAsWAVSamples(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "trace.wav")
	require.NoError(t, SaveAsWAV(filename, 48000, 32768, testSeries()))

	raw, err := os.ReadFile(filename)
	require.NoError(t, err)
	require.Len(t, raw, wavHeaderSize+5*2)

	samples := make([]int16, 5)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[wavHeaderSize+2*i:]))
	}
	assert.Equal(t, []int16{16383, 0, -32767, 99, 32767}, samples)
}

func TestRenderChartPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, testSeries(), 1000, 400, chart.PNG))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestRenderChartSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, testSeries(), 1000, 400, chart.SVG))
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), base.ChartTitle)
}

func TestRenderChartEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, &base.Series{}, 1000, 400, chart.PNG))
	assert.NotZero(t, buf.Len())
}

func TestRenderChartSinglePoint(t *testing.T) {
	s := &base.Series{Ticks: []float64{168000}, TimeMs: []float64{1}, Amplitude: []float64{100}}

	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, s, 1000, 400, chart.PNG))
}

func TestRenderChartInfiniteCells(t *testing.T) {
	trace, err := reader.ParseTrace(strings.NewReader(
		"A;100;B;168000\nA;inf;B;336000\nA;5;B;504000\nA;7;B;-Infinity\n"), reader.DefaultOptions())
	require.NoError(t, err)
	s := dsp.BuildSeries(trace, 168000000)

	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, s, 1000, 400, chart.PNG))

	line := BuildChart(s, 1000, 400).Series[0].(chart.ContinuousSeries)
	assert.Equal(t, []float64{1, 3}, line.XValues)
	assert.Equal(t, []float64{100, 5}, line.YValues)
}

func TestBuildChart(t *testing.T) {
	graph := BuildChart(testSeries(), 1000, 400)

	assert.Equal(t, base.ChartTitle, graph.Title)
	assert.Equal(t, base.XAxisLabel, graph.XAxis.Name)
	assert.Equal(t, base.YAxisLabel, graph.YAxis.Name)
	require.Len(t, graph.Series, 1)

	line := graph.Series[0].(chart.ContinuousSeries)
	assert.Equal(t, base.LegendLabel, line.Name)
	assert.Equal(t, []float64{0, 2, 4}, line.XValues)
	assert.Equal(t, []float64{16384, -32768, 65536}, line.YValues)
}

func TestSaveChart(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"trace.png", "trace.svg"} {
		filename := filepath.Join(dir, name)
		require.NoError(t, SaveChart(filename, testSeries(), 640, 256))

		info, err := os.Stat(filename)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testSeries()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "index,ticks,time_ms,amplitude", lines[0])
	assert.Equal(t, "0,0,0,16384", lines[1])
	assert.Equal(t, "1,168000,1,NaN", lines[2])
	assert.Equal(t, "3,NaN,NaN,100", lines[4])
}
