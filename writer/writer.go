package writer

import (
	"fmt"
	"math"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"

	"github.com/handegar/swvplot/base"
)

// WriteStreamer feeds mono samples to both channels of a beep stream.
type WriteStreamer struct {
	Data           []float64
	SamplesWritten int
}

func (ws *WriteStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n = 0; n < len(samples) && ws.SamplesWritten < len(ws.Data); n++ {
		v := ws.Data[ws.SamplesWritten]
		samples[n][0] = v
		samples[n][1] = v
		ws.SamplesWritten += 1
	}

	return n, n > 0
}

func (ws *WriteStreamer) Err() error {
	return nil
}

func (ws *WriteStreamer) Len() int {
	return len(ws.Data)
}

func (ws *WriteStreamer) Position() int {
	return ws.SamplesWritten
}

func (ws *WriteStreamer) Seek(p int) error {
	if p < 0 || p > len(ws.Data) {
		return errors.Errorf("seek position %d out of range [0, %d]", p, len(ws.Data))
	}
	ws.SamplesWritten = p
	return nil
}

// PCMToSamples scales the amplitude to [-1, 1]. Missing values are
// silence.
func PCMToSamples(series *base.Series, fullScale float64) []float64 {
	out := make([]float64, series.Len())
	for i, v := range series.Amplitude {
		if base.IsMissing(v) {
			continue
		}
		out[i] = math.Max(-1, math.Min(1, v/fullScale))
	}
	return out
}

func Format(sampleRate float64) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(math.Round(sampleRate)),
		NumChannels: 1,
		Precision:   2,
	}
}

func SaveAsWAV(filename string, sampleRate float64, fullScale float64, series *base.Series) error {
	format := Format(sampleRate)
	fmt.Printf("* Writing to '%s' (%d samples, %d Hz)\n",
		filename, series.Len(), format.SampleRate)

	outWAVFile, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating '%s'", filename)
	}
	defer outWAVFile.Close()

	outStream := &WriteStreamer{Data: PCMToSamples(series, fullScale)}
	if err := wav.Encode(outWAVFile, outStream, format); err != nil {
		return errors.Wrapf(err, "writing samples to '%s'", filename)
	}

	return nil
}
