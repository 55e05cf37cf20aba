package writer

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/handegar/swvplot/base"
)

type CSVRow struct {
	Index     int     `csv:"index"`
	Ticks     float64 `csv:"ticks"`
	TimeMs    float64 `csv:"time_ms"`
	Amplitude float64 `csv:"amplitude"`
}

func CSVRows(series *base.Series) []*CSVRow {
	rows := make([]*CSVRow, series.Len())
	for i := range rows {
		rows[i] = &CSVRow{
			Index:     i,
			Ticks:     series.Ticks[i],
			TimeMs:    series.TimeMs[i],
			Amplitude: series.Amplitude[i],
		}
	}
	return rows
}

// WriteCSV writes the converted trace. Missing values are written as
// NaN.
func WriteCSV(w io.Writer, series *base.Series) error {
	rows := CSVRows(series)
	return gocsv.Marshal(&rows, w)
}

func SaveAsCSV(filename string, series *base.Series) error {
	fmt.Printf("* Writing to '%s' (%d rows)\n", filename, series.Len())
	outFile, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating '%s'", filename)
	}
	defer outFile.Close()

	if err := WriteCSV(outFile, series); err != nil {
		return errors.Wrapf(err, "writing '%s'", filename)
	}

	return nil
}
