package settings

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

var Version = "0.1"

// Trace file exported from the SWV data trace view
var InFilename = "SWV_Data_Trace.txt"

// Column delimiter. "auto" will sniff the delimiter from the file.
var Delimiter = ";"

// 0-indexed columns holding the PCM value and the timestamp
var PCMColumn = 1
var TimestampColumn = 3

// Fail on rows lacking the selected columns instead of treating the
// absent cells as missing values
var StrictRows = false

// Core clock of the capturing MCU (Hz). The SWV timestamps are counted
// in cycles of this clock.
var ClockFrequency = 168000000.0

// Samplerate used for WAV export and playback. 0 will estimate it from
// the timestamps.
var SampleRate = 0.0

// Fallback when the samplerate can't be estimated. Matches the audio
// rate of the capture firmware.
var DefaultSampleRate = 48000.0

// PCM value mapped to 1.0 when exporting audio (16 bit signed)
var PCMFullScale = 32768.0

// Chart image export (.png or .svg). Empty disables.
var OutputImage = ""
var ImageWidth = 1000
var ImageHeight = 400

// Converted trace as CSV. Empty disables.
var OutputCSV = ""

// Trace as WAV. Empty disables.
var OutputWav = ""

// Stream result to speaker?
var Stream = false

// Print trace statistics
var PrintStats = false

// Print the converted trace
var PrintTrace = false

// Max number of rows printed by the trace listing
var MaxListedRows = 64

// Don't open the interactive viewer
var NoViewer = false

// Print extra debug info
var PrintDebug = false

// Optional config file (yaml, toml, json...)
var ConfigFile = ""

var ErrBadParameters = errors.New("bad parameters")

func Validate() error {
	if ClockFrequency <= 0 {
		return errors.Wrapf(ErrBadParameters, "clock frequency must be positive (got %g)", ClockFrequency)
	}
	if PCMColumn < 0 || TimestampColumn < 0 {
		return errors.Wrapf(ErrBadParameters, "columns must be >= 0 (got %d and %d)", PCMColumn, TimestampColumn)
	}
	if PCMColumn == TimestampColumn {
		return errors.Wrapf(ErrBadParameters, "PCM and timestamp columns are both %d", PCMColumn)
	}
	if Delimiter != "auto" && utf8.RuneCountInString(Delimiter) != 1 {
		return errors.Wrapf(ErrBadParameters, "delimiter must be a single character or 'auto' (got %q)", Delimiter)
	}
	if ImageWidth <= 0 || ImageHeight <= 0 {
		return errors.Wrapf(ErrBadParameters, "image size must be positive (got %dx%d)", ImageWidth, ImageHeight)
	}
	if PCMFullScale <= 0 {
		return errors.Wrapf(ErrBadParameters, "full scale must be positive (got %g)", PCMFullScale)
	}
	if SampleRate < 0 {
		return errors.Wrapf(ErrBadParameters, "samplerate can't be negative (got %g)", SampleRate)
	}
	return nil
}

// Returns the delimiter rune, or 0 when it should be detected
func DelimiterRune() rune {
	if Delimiter == "auto" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(Delimiter)
	return r
}
