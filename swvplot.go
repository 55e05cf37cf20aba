package main

import (
	"flag"
	"fmt"
	"syscall"

	"github.com/fatih/color"

	"github.com/handegar/swvplot/base"
	"github.com/handegar/swvplot/dsp"
	"github.com/handegar/swvplot/listing"
	"github.com/handegar/swvplot/player"
	"github.com/handegar/swvplot/reader"
	"github.com/handegar/swvplot/settings"
	"github.com/handegar/swvplot/viewer"
	"github.com/handegar/swvplot/writer"
)

// Returns the names of the flags given on the command line
func parseCommandLineParameters() map[string]bool {
	flag.StringVar(&settings.InFilename, "in", settings.InFilename, "SWV data trace file")
	flag.StringVar(&settings.Delimiter, "delimiter", settings.Delimiter, "Column delimiter ('auto' to detect)")
	flag.IntVar(&settings.PCMColumn, "pcm-column", settings.PCMColumn, "0-indexed PCM column")
	flag.IntVar(&settings.TimestampColumn, "timestamp-column", settings.TimestampColumn, "0-indexed timestamp column")
	flag.BoolVar(&settings.StrictRows, "strict", settings.StrictRows, "Fail on rows lacking the selected columns")
	flag.Float64Var(&settings.ClockFrequency, "clock", settings.ClockFrequency, "Timestamp clock frequency (Hz)")
	flag.Float64Var(&settings.SampleRate, "samplerate", settings.SampleRate, "Samplerate for WAV/playback (0: estimate)")
	flag.Float64Var(&settings.PCMFullScale, "fullscale", settings.PCMFullScale, "PCM value mapped to 1.0 in WAV/playback")
	flag.StringVar(&settings.OutputImage, "image", settings.OutputImage, "Save the chart as PNG or SVG")
	flag.IntVar(&settings.ImageWidth, "width", settings.ImageWidth, "Chart image width (pixels)")
	flag.IntVar(&settings.ImageHeight, "height", settings.ImageHeight, "Chart image height (pixels)")
	flag.StringVar(&settings.OutputCSV, "csv", settings.OutputCSV, "Save the converted trace as CSV")
	flag.StringVar(&settings.OutputWav, "out", settings.OutputWav, "Save the PCM data as a WAV file")
	flag.BoolVar(&settings.Stream, "play", settings.Stream, "Play the PCM data on the speaker")
	flag.BoolVar(&settings.PrintStats, "print-stats", settings.PrintStats, "Print trace statistics")
	flag.BoolVar(&settings.PrintTrace, "print-trace", settings.PrintTrace, "Print the converted trace")
	flag.IntVar(&settings.MaxListedRows, "max-rows", settings.MaxListedRows, "Max rows printed by -print-trace (0: all)")
	flag.BoolVar(&settings.NoViewer, "no-view", settings.NoViewer, "Don't open the interactive viewer")
	flag.BoolVar(&settings.PrintDebug, "debug", settings.PrintDebug, "Print extra debug info")
	flag.StringVar(&settings.ConfigFile, "config", settings.ConfigFile, "Config file (yaml, toml, json)")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})
	return explicit
}

func fatal(format string, args ...interface{}) {
	color.Red(format, args...)
	syscall.Exit(-1)
}

func main() {
	fmt.Printf("* SWV trace plotter v%s\n", settings.Version)
	explicit := parseCommandLineParameters()

	if err := settings.LoadConfig(settings.ConfigFile, explicit); err != nil {
		fatal("Loading config failed: %s", err)
	}
	if err := settings.Validate(); err != nil {
		fatal("Invalid settings: %s", err)
	}

	opts := reader.Options{
		Delimiter:       settings.DelimiterRune(),
		PCMColumn:       settings.PCMColumn,
		TimestampColumn: settings.TimestampColumn,
		Strict:          settings.StrictRows,
	}
	trace, err := reader.ReadTrace(settings.InFilename, opts)
	if err != nil {
		fatal("Reading trace failed: %s", err)
	}
	fmt.Printf("* Read %d rows from '%s'\n", trace.Len(), trace.Filename)
	if trace.ShortRows > 0 {
		color.Yellow("%d rows lack the %s or %s column", trace.ShortRows,
			base.PCMColumnName, base.TimestampColumnName)
	}

	series := dsp.BuildSeries(trace, settings.ClockFrequency)
	summary := dsp.Summarize(series)

	if settings.PrintDebug {
		fmt.Printf("* Delimiter %q, columns %d/%d, clock %.0f Hz\n", opts.Delimiter,
			settings.PCMColumn, settings.TimestampColumn, settings.ClockFrequency)
	}
	if settings.PrintStats {
		summary.Print()
	}
	if settings.PrintTrace {
		listing.PrintTraceListing(trace, series, settings.MaxListedRows)
	}

	if settings.OutputCSV != "" {
		if err := writer.SaveAsCSV(settings.OutputCSV, series); err != nil {
			fatal("Writing CSV failed: %s", err)
		}
	}
	if settings.OutputImage != "" {
		if err := writer.SaveChart(settings.OutputImage, series,
			settings.ImageWidth, settings.ImageHeight); err != nil {
			fatal("Writing chart failed: %s", err)
		}
	}

	sampleRate := settings.SampleRate
	if sampleRate == 0 {
		sampleRate = summary.SampleRateOr(settings.DefaultSampleRate)
	}
	if settings.OutputWav != "" {
		if err := writer.SaveAsWAV(settings.OutputWav, sampleRate,
			settings.PCMFullScale, series); err != nil {
			fatal("Writing WAV failed: %s", err)
		}
	}
	if settings.Stream {
		if err := player.Play(series, sampleRate, settings.PCMFullScale); err != nil {
			fatal("Playback failed: %s", err)
		}
	}

	if settings.NoViewer {
		return
	}
	if err := viewer.Show(series); err != nil {
		fatal("Viewer failed: %s", err)
	}
}
