package player

import (
	"testing"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/handegar/swvplot/base"
)

func TestPlayRejectsZeroRate(t *testing.T) {
	s := &base.Series{Ticks: []float64{0}, TimeMs: []float64{0}, Amplitude: []float64{1}}

	err := Play(s, 0, 32768)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "0 Hz")
}

func TestWaitForEndOrKeyStopsOnKey(t *testing.T) {
	done := make(chan bool, 1)
	getKey := func() (rune, keyboard.Key, error) {
		return 'x', 0, nil
	}
	assert.True(t, waitForEndOrKey(done, getKey))
}

func TestWaitForEndOrKeyDropsLateKey(t *testing.T) {
	done := make(chan bool, 1)
	done <- true

	release := make(chan struct{})
	returned := make(chan struct{})
	getKey := func() (rune, keyboard.Key, error) {
		<-release
		defer close(returned)
		return 'x', 0, nil
	}

	assert.False(t, waitForEndOrKey(done, getKey))

	// The key arriving after the end must not block the reader
	close(release)
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("key reader still blocked after playback ended")
	}
}

func TestWaitForEndOrKeyIgnoresReadError(t *testing.T) {
	done := make(chan bool, 1)
	getKey := func() (rune, keyboard.Key, error) {
		done <- true
		return 0, 0, errors.New("keyboard closed")
	}
	assert.False(t, waitForEndOrKey(done, getKey))
}
