package listing

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/handegar/swvplot/base"
)

var missingColor = color.New(color.FgRed).SprintFunc()
var dimColor = color.New(color.FgCyan).SprintFunc()

func cell(v float64, format string) string {
	if base.IsMissing(v) {
		return missingColor(fmt.Sprintf("%12s", "-"))
	}
	return fmt.Sprintf(format, v)
}

// Prints the converted trace next to the raw cells. Prints at most
// 'maxRows' rows (all if <= 0).
func FprintTraceListing(w io.Writer, trace *base.Trace, series *base.Series, maxRows int) {
	fmt.Fprintf(w, "\n;;\n;; Trace '%s' (%d rows, clock ticks -> ms)\n;;\n",
		trace.Filename, series.Len())
	fmt.Fprintf(w, ";; %6s %6s %12s %12s %12s\n", "row", "line", base.TimestampColumnName, "ms", base.PCMColumnName)

	for i := 0; i < series.Len(); i++ {
		if maxRows > 0 && i >= maxRows {
			fmt.Fprintf(w, ";; Max number of rows reached (%d of %d)\n", maxRows, series.Len())
			break
		}

		line := 0
		if i < trace.Len() {
			line = trace.Records[i].Line
		}
		fmt.Fprintf(w, "   %6d %s %s %s %s\n",
			i,
			dimColor(fmt.Sprintf("%6d", line)),
			cell(series.Ticks[i], "%12.0f"),
			cell(series.TimeMs[i], "%12.6f"),
			cell(series.Amplitude[i], "%12g"))
	}
	fmt.Fprintln(w)
}

func PrintTraceListing(trace *base.Trace, series *base.Series, maxRows int) {
	FprintTraceListing(color.Output, trace, series, maxRows)
}
