package settings

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "SWVPLOT"

// Config keys are named after the command line flags so a flag given
// explicitly can shadow the same key from the file or environment.
type binding struct {
	key   string
	apply func(v *viper.Viper)
}

var bindings = []binding{
	{"in", func(v *viper.Viper) { InFilename = v.GetString("in") }},
	{"delimiter", func(v *viper.Viper) { Delimiter = v.GetString("delimiter") }},
	{"pcm-column", func(v *viper.Viper) { PCMColumn = v.GetInt("pcm-column") }},
	{"timestamp-column", func(v *viper.Viper) { TimestampColumn = v.GetInt("timestamp-column") }},
	{"strict", func(v *viper.Viper) { StrictRows = v.GetBool("strict") }},
	{"clock", func(v *viper.Viper) { ClockFrequency = v.GetFloat64("clock") }},
	{"samplerate", func(v *viper.Viper) { SampleRate = v.GetFloat64("samplerate") }},
	{"fullscale", func(v *viper.Viper) { PCMFullScale = v.GetFloat64("fullscale") }},
	{"image", func(v *viper.Viper) { OutputImage = v.GetString("image") }},
	{"width", func(v *viper.Viper) { ImageWidth = v.GetInt("width") }},
	{"height", func(v *viper.Viper) { ImageHeight = v.GetInt("height") }},
	{"csv", func(v *viper.Viper) { OutputCSV = v.GetString("csv") }},
	{"out", func(v *viper.Viper) { OutputWav = v.GetString("out") }},
	{"play", func(v *viper.Viper) { Stream = v.GetBool("play") }},
	{"print-stats", func(v *viper.Viper) { PrintStats = v.GetBool("print-stats") }},
	{"print-trace", func(v *viper.Viper) { PrintTrace = v.GetBool("print-trace") }},
	{"max-rows", func(v *viper.Viper) { MaxListedRows = v.GetInt("max-rows") }},
	{"no-view", func(v *viper.Viper) { NoViewer = v.GetBool("no-view") }},
	{"debug", func(v *viper.Viper) { PrintDebug = v.GetBool("debug") }},
}

// LoadConfig applies values from the config file (if any) and from
// SWVPLOT_* environment variables. Keys listed in 'explicit' are left
// untouched.
func LoadConfig(filename string, explicit map[string]bool) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if filename != "" {
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file '%s'", filename)
		}
	}

	for _, b := range bindings {
		if explicit[b.key] || !v.IsSet(b.key) {
			continue
		}
		b.apply(v)
	}

	return nil
}
