package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/handegar/swvplot/base"
	"github.com/handegar/swvplot/utils"
)

var gridStyle = chart.Style{
	StrokeColor: drawing.ColorFromHex("d9d9d9"),
	StrokeWidth: 1.0,
}

var lineStyle = chart.Style{
	StrokeColor: chart.ColorBlue,
	StrokeWidth: 1.5,
}

// BuildChart lays out the amplitude over time chart. Points with a
// missing time or amplitude are left out.
func BuildChart(series *base.Series, widthPx, heightPx int) chart.Chart {
	xs, ys := series.ValidPoints()
	xMin, xMax, yMin, yMax, ok := series.Bounds()
	if !ok {
		xMin, xMax, yMin, yMax = 0, 1, 0, 1
	}
	xLo, xHi := utils.NiceBounds(xMin, xMax, 10)
	yLo, yHi := utils.NiceBounds(yMin, yMax, 5)

	line := chart.ContinuousSeries{
		Name:    base.LegendLabel,
		XValues: xs,
		YValues: ys,
		Style:   lineStyle,
	}
	if len(xs) == 0 {
		// go-chart refuses empty series. Keep the legend entry.
		line.XValues = []float64{xLo, xHi}
		line.YValues = []float64{yLo, yLo}
		line.Style = chart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: 1.5}
	}

	graph := chart.Chart{
		Title:      base.ChartTitle,
		Width:      widthPx,
		Height:     heightPx,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 10}},
		XAxis: chart.XAxis{
			Name:           base.XAxisLabel,
			Range:          &chart.ContinuousRange{Min: xLo, Max: xHi},
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           base.YAxisLabel,
			AxisType:       chart.YAxisSecondary,
			Range:          &chart.ContinuousRange{Min: yLo, Max: yHi},
			GridMajorStyle: gridStyle,
		},
		Series: []chart.Series{line},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph
}

func RenderChart(w io.Writer, series *base.Series, widthPx, heightPx int, provider chart.RendererProvider) error {
	graph := BuildChart(series, widthPx, heightPx)
	return graph.Render(provider, w)
}

// SaveChart writes the chart as SVG for '.svg' files and as PNG
// otherwise.
func SaveChart(filename string, series *base.Series, widthPx, heightPx int) error {
	provider := chart.PNG
	if strings.EqualFold(filepath.Ext(filename), ".svg") {
		provider = chart.SVG
	}

	fmt.Printf("* Writing chart to '%s' (%dx%d)\n", filename, widthPx, heightPx)
	outFile, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating '%s'", filename)
	}
	defer outFile.Close()

	if err := RenderChart(outFile, series, widthPx, heightPx, provider); err != nil {
		return errors.Wrapf(err, "rendering chart to '%s'", filename)
	}

	return nil
}
