package viewer

import (
	"fmt"
	"image"

	termui "github.com/gizak/termui/v3"
	ui "github.com/gizak/termui/v3"
	widgets "github.com/gizak/termui/v3/widgets"
	"github.com/pkg/errors"

	"github.com/handegar/swvplot/base"
	"github.com/handegar/swvplot/settings"
	"github.com/handegar/swvplot/utils"
)

const (
	PlotScreen int = iota
	HelpScreen
)

// Smallest terminal we try to draw a chart in
const (
	minTerminalWidth  = 30
	minTerminalHeight = 10
)

type UIState struct {
	terminalWidth  int
	terminalHeight int

	currentScreen int
	showGrid      bool

	series *base.Series
	full   View
	view   View
}

var uiState UIState

var boxTitleStyle = termui.NewStyle(termui.ColorRed, termui.ColorBlue)
var titleStyle = termui.NewStyle(termui.ColorWhite, termui.ColorClear, termui.ModifierBold)
var axisStyle = termui.NewStyle(termui.ColorWhite)
var lineColor = termui.ColorCyan
var gridColor = termui.ColorBlue

// Show opens the viewer and blocks until the user quits it.
func Show(series *base.Series) error {
	if err := ui.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal UI")
	}
	defer ui.Close()

	Init(series)
	UpdateScreen()
	WaitForInput()

	return nil
}

func Init(series *base.Series) {
	width, height := termui.TerminalDimensions()
	uiState.terminalWidth = width
	uiState.terminalHeight = height
	uiState.currentScreen = PlotScreen
	uiState.showGrid = true
	uiState.series = series
	uiState.full = FullView(series)
	uiState.view = uiState.full
}

func WaitForInput() {
	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return
		case "h", "<F1>", "?":
			if uiState.currentScreen == HelpScreen {
				uiState.currentScreen = PlotScreen
			} else {
				uiState.currentScreen = HelpScreen
			}
		case "g":
			uiState.showGrid = !uiState.showGrid
		case "+", "=":
			uiState.view = Zoom(uiState.view, uiState.full, 0.5)
		case "-", "_":
			uiState.view = Zoom(uiState.view, uiState.full, 2.0)
		case "<Left>", "a":
			uiState.view = Pan(uiState.view, uiState.full, -0.25)
		case "<Right>", "d":
			uiState.view = Pan(uiState.view, uiState.full, 0.25)
		case "0", "r":
			uiState.view = uiState.full
		case "<Resize>":
			width, height := termui.TerminalDimensions()
			uiState.terminalHeight = height
			uiState.terminalWidth = width
		default:
			continue
		}
		UpdateScreen()
	}
}

func UpdateScreen() {
	ui.Clear()

	switch uiState.currentScreen {
	case HelpScreen:
		renderHelpScreen()
	case PlotScreen:
		renderPlotScreen()
	default:
		utils.Assert(false, "Unknown ui-screen: %d", uiState.currentScreen)
	}
}

func renderPlotScreen() {
	width := uiState.terminalWidth
	height := uiState.terminalHeight

	if width < minTerminalWidth || height < minTerminalHeight {
		ui.Render(newLabel("Terminal too small", axisStyle, 0, 0))
		return
	}

	// The y range follows the visible part of the trace
	yMin, yMax, ok := visibleAmplitudeRange(uiState.series, uiState.view.Min, uiState.view.Max)
	if !ok {
		yMin, yMax = 0, 1
	}
	yLo, yHi := utils.NiceBounds(yMin, yMax, 5)

	plotRows := height - 4 - 2 // Title, tick labels, axis name, help line and the frame
	yValues, yStep := utils.NiceTicks(yLo, yHi, max(2, plotRows/3))
	labelWidth := 1
	for _, v := range yValues {
		labelWidth = max(labelWidth, len(utils.FormatTick(v, yStep)))
	}

	left := 2 + labelWidth
	frame := termui.NewBlock()
	frame.Title = infoTitle()
	frame.TitleStyle = boxTitleStyle
	frame.BorderStyle = termui.NewStyle(termui.ColorWhite)
	frame.SetRect(left, 1, width, height-3)
	area := frame.Inner

	proj := Projection{
		Area: area,
		XMin: uiState.view.Min, XMax: uiState.view.Max,
		YMin: yLo, YMax: yHi,
	}

	canvas := termui.NewCanvas()
	canvas.SetRect(area.Min.X, area.Min.Y, area.Max.X, area.Max.Y)
	if uiState.showGrid {
		drawGrid(canvas, proj, area.Dx()/12, max(2, area.Dy()/3))
	}
	for _, run := range Polylines(uiState.series, proj) {
		if len(run) == 1 {
			canvas.SetPoint(run[0], lineColor)
			continue
		}
		for i := 1; i < len(run); i++ {
			canvas.SetLine(run[i-1], run[i], lineColor)
		}
	}

	items := []termui.Drawable{frame, canvas}

	title := base.ChartTitle
	items = append(items, newLabel(title, titleStyle, max(0, (width-len(title))/2), 0))

	for _, t := range yTicks(proj, max(2, area.Dy()/3)) {
		if t.Pos < area.Min.Y || t.Pos >= area.Max.Y {
			continue
		}
		items = append(items, newLabel(fmt.Sprintf("%*s", labelWidth, t.Label), axisStyle, 1, t.Pos))
	}
	xLine := xTickLine(xTicks(proj, max(2, area.Dx()/12)), 0, width)
	items = append(items, newLabel(xLine, axisStyle, 0, height-3))

	xName := base.XAxisLabel
	items = append(items, newLabel(xName, axisStyle, area.Min.X+max(0, (area.Dx()-len(xName))/2), height-2))

	yName := base.YAxisLabel
	if len(yName) <= area.Dy() {
		items = append(items, newVerticalLabel(yName, axisStyle, 0, area.Min.Y+(area.Dy()-len(yName))/2))
	}

	legend := "── " + base.LegendLabel + " "
	legendWidth := len([]rune(legend))
	if area.Dx() > legendWidth+2 {
		items = append(items, newLabel(legend, termui.NewStyle(lineColor), area.Max.X-legendWidth-1, area.Min.Y))
	}

	items = append(items, helpLine())

	ui.Render(items...)
}

func drawGrid(canvas *termui.Canvas, p Projection, xCount, yCount int) {
	top := p.Area.Min.Y * dotsPerCellY
	bottom := p.Area.Max.Y * dotsPerCellY
	leftDot := p.Area.Min.X * dotsPerCellX
	rightDot := p.Area.Max.X * dotsPerCellX

	xValues, _ := utils.NiceTicks(p.XMin, p.XMax, max(2, xCount))
	for _, v := range xValues {
		x := p.X(v)
		for y := top; y < bottom; y += 2 {
			canvas.SetPoint(image.Pt(x, y), gridColor)
		}
	}

	yValues, _ := utils.NiceTicks(p.YMin, p.YMax, max(2, yCount))
	for _, v := range yValues {
		y := p.Y(v)
		for x := leftDot; x < rightDot; x += 2 {
			canvas.SetPoint(image.Pt(x, y), gridColor)
		}
	}
}

func infoTitle() string {
	view := uiState.view
	step := utils.NiceStep(view.Span() / 100)
	return fmt.Sprintf("  %d samples | %s .. %s ms  ",
		uiState.series.Len(),
		utils.FormatTick(view.Min, step),
		utils.FormatTick(view.Max, step))
}

func helpLine() *widgets.Paragraph {
	width, height := uiState.terminalWidth, uiState.terminalHeight
	help := widgets.NewParagraph()
	help.Text =
		"[ESC/q:](fg:black) Quit [|](fg:white,bg:black) " +
			"[F1/h/?:](fg:black) Help [|](fg:white,bg:black) " +
			"[+/-:](fg:black) Zoom [|](fg:white,bg:black) " +
			"[Left/Right:](fg:black) Pan [|](fg:white,bg:black) " +
			"[g:](fg:black) Grid "

	help.Border = false
	help.TextStyle = boxTitleStyle
	help.SetRect(0, height-1, width, height)

	return help
}

func renderHelpScreen() {
	width, height := uiState.terminalWidth, uiState.terminalHeight
	ypos := 0

	frame := widgets.NewParagraph()
	frame.Title = "  Help / Keys  "
	frame.TitleStyle = boxTitleStyle
	frame.SetRect(0, 0, width, height)
	ypos += 1

	keys := widgets.NewList()
	keys.Border = false
	keys.TextStyle = termui.NewStyle(termui.ColorYellow)
	keys.SelectedRowStyle = termui.NewStyle(termui.ColorYellow)

	keys.Rows = append(keys.Rows, "Keys:")
	keys.Rows = append(keys.Rows, " h, F1, ?:          [This help-page](fg:white)")
	keys.Rows = append(keys.Rows, " ESC, q, CTRL-C:    [Quit viewer](fg:white)")
	keys.Rows = append(keys.Rows, " +, =:              [Zoom in (time)](fg:white)")
	keys.Rows = append(keys.Rows, " -, _:              [Zoom out (time)](fg:white)")
	keys.Rows = append(keys.Rows, " Left, a:           [Pan towards start](fg:white)")
	keys.Rows = append(keys.Rows, " Right, d:          [Pan towards end](fg:white)")
	keys.Rows = append(keys.Rows, " 0, r:              [Show the whole trace](fg:white)")
	keys.Rows = append(keys.Rows, " g:                 [Toggle grid](fg:white)")

	keys.SetRect(1, ypos, width-1, ypos+len(keys.Rows)+2)
	ypos += len(keys.Rows) + 1

	info := widgets.NewParagraph()
	info.Border = false
	info.Text = "[Trace:](fg:cyan)\n" +
		fmt.Sprintf(" [File](fg:yellow):        %s\n", settings.InFilename) +
		fmt.Sprintf(" [Samples](fg:yellow):     %d\n", uiState.series.Len()) +
		fmt.Sprintf(" [Clock](fg:yellow):       %.0f Hz\n", settings.ClockFrequency) +
		" [Time](fg:yellow):        1000 * timestamp / clock (ms)\n" +
		" Rows with a non-numeric value leave a gap in the line.\n" +
		fmt.Sprintf(" [swvplot v%s](fg:blue)", settings.Version)
	info.SetRect(1, ypos, width-1, min(height-1, ypos+9))

	ui.Render(frame)
	ui.Render(keys)
	ui.Render(info)
}
