package player

import (
	"fmt"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/handegar/swvplot/base"
	"github.com/handegar/swvplot/writer"
)

// Buffer length handed to the speaker
const BufferDuration = time.Second / 10

// Play streams the amplitude to the default audio device. Blocks until
// the trace has been played or a key is pressed.
func Play(series *base.Series, sampleRate float64, fullScale float64) error {
	format := writer.Format(sampleRate)
	if format.SampleRate <= 0 {
		return errors.Errorf("can't play at %d Hz", format.SampleRate)
	}

	streamer := &writer.WriteStreamer{Data: writer.PCMToSamples(series, fullScale)}

	err := speaker.Init(format.SampleRate, format.SampleRate.N(BufferDuration))
	if err != nil {
		return errors.Wrap(err, "initializing speaker")
	}
	defer speaker.Close()

	done := make(chan bool, 1)
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		done <- true
	})))

	fmt.Printf("* Playing %d samples at %d Hz (%s)\n",
		series.Len(), format.SampleRate,
		format.SampleRate.D(series.Len()).Round(time.Millisecond))

	if err := keyboard.Open(); err != nil {
		// No terminal to read keys from, just wait for the end
		<-done
		return nil
	}
	defer keyboard.Close()

	color.Yellow("< Press any key to stop >")
	if waitForEndOrKey(done, keyboard.GetKey) {
		speaker.Clear()
		color.Red("Playback stopped")
	}

	return nil
}

// Blocks until 'done' fires or getKey returns a key. Returns true if a
// key stopped the wait. A key read after 'done' is dropped.
func waitForEndOrKey(done <-chan bool, getKey func() (rune, keyboard.Key, error)) bool {
	stop := make(chan struct{})
	defer close(stop)

	keys := make(chan struct{})
	go func() {
		if _, _, err := getKey(); err != nil {
			return
		}
		select {
		case keys <- struct{}{}:
		case <-stop:
		}
	}()

	select {
	case <-done:
		return false
	case <-keys:
		return true
	}
}
