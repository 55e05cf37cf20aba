package reader

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/csimplestring/go-csv/detector"
	"github.com/pkg/errors"

	"github.com/handegar/swvplot/base"
)

// Used when the delimiter can't be detected. The SWV trace export
// separates its columns with ';'.
const FallbackDelimiter = ';'

type Options struct {
	Delimiter       rune // 0 will detect the delimiter
	PCMColumn       int  // 0-indexed
	TimestampColumn int  // 0-indexed
	Strict          bool // Fail on rows lacking the selected columns
}

// The column selection of the SWV trace export: PCM in the 2nd column,
// cycle counter in the 4th.
func DefaultOptions() Options {
	return Options{
		Delimiter:       FallbackDelimiter,
		PCMColumn:       1,
		TimestampColumn: 3,
	}
}

func ReadTrace(filename string, opts Options) (*base.Trace, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading trace file '%s'", filename)
	}

	if opts.Delimiter == 0 {
		opts.Delimiter = DetectDelimiter(bytes.NewReader(buf))
	}

	trace, err := ParseTrace(bytes.NewReader(buf), opts)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing trace file '%s'", filename)
	}
	trace.Filename = filename

	return trace, nil
}

// DetectDelimiter returns the most likely delimiter of the CSV-like
// content in 'r'.
func DetectDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 && len(delimiters[0]) > 0 {
		return rune(delimiters[0][0])
	}

	return FallbackDelimiter
}

// ParseTrace reads delimited rows from 'r' keeping only the PCM and
// timestamp columns. There is no header row. Blank lines are skipped,
// additional columns are ignored and absent columns give empty cells
// (unless opts.Strict is set).
func ParseTrace(r io.Reader, opts Options) (*base.Trace, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = FallbackDelimiter
	}

	rdr := csv.NewReader(r)
	rdr.Comma = opts.Delimiter
	rdr.FieldsPerRecord = -1
	rdr.LazyQuotes = true
	rdr.ReuseRecord = true

	minFields := opts.PCMColumn + 1
	if opts.TimestampColumn >= minFields {
		minFields = opts.TimestampColumn + 1
	}

	trace := &base.Trace{}
	for {
		fields, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := rdr.FieldPos(0)
		if len(fields) < minFields {
			if opts.Strict {
				return nil, errors.Errorf("line %d: expected at least %d fields, got %d",
					line, minFields, len(fields))
			}
			trace.ShortRows += 1
		}

		trace.Records = append(trace.Records, base.Record{
			Line:      line,
			PCM:       field(fields, opts.PCMColumn),
			Timestamp: field(fields, opts.TimestampColumn),
		})
	}

	return trace, nil
}

func field(fields []string, idx int) string {
	if idx < len(fields) {
		return fields[idx]
	}
	return ""
}
