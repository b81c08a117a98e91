// Package debugui draws Dear ImGui windows describing a running Marble Crush session.
package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/marblecrush/loop"
	"github.com/plus3/marblecrush/marble"
)

// Overlay renders the board and scheduler windows. Call Render between the backend's
// BeginFrame and EndFrame.
type Overlay struct {
	scheduler *loop.Scheduler
	frames    *frameTimes
}

// NewOverlay creates an overlay for the scheduler's session keeping historyFrames frame times.
func NewOverlay(scheduler *loop.Scheduler, historyFrames int) *Overlay {
	return &Overlay{
		scheduler: scheduler,
		frames:    newFrameTimes(historyFrames, time.Now()),
	}
}

// WantCaptureMouse reports whether ImGui is consuming mouse input this frame.
func (o *Overlay) WantCaptureMouse() bool {
	return imgui.CurrentIO().WantCaptureMouse()
}

// WantCaptureKeyboard reports whether ImGui is consuming keyboard input this frame.
func (o *Overlay) WantCaptureKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}

// Render draws every overlay window.
func (o *Overlay) Render() {
	o.frames.lap(time.Now())

	o.renderBoard()
	o.renderSystems()
}

func (o *Overlay) renderBoard() {
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	session := o.scheduler.Session()
	board := session.Board()
	grid := session.Grid()

	imgui.Text(fmt.Sprintf("Grid: %d x %d (radius %d)", grid.Cols, grid.Rows, grid.Radius))
	imgui.Text(fmt.Sprintf("Pieces: %d", board.Len()))
	imgui.Text(fmt.Sprintf("Vacancies: %d", marble.EmptyLocations(board, grid)))
	imgui.Text(fmt.Sprintf("Transitions: %d", session.Transitions()))
	imgui.Text(fmt.Sprintf("Refill key: %q", session.Controller().RefillKey()))

	imgui.Separator()
	counts := board.ColourCounts()
	for _, c := range marble.Colours {
		imgui.BulletText(fmt.Sprintf("%s: %d", c, counts[c]))
	}

	imgui.End()
}

func (o *Overlay) renderSystems() {
	if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := o.scheduler.GetStats()
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms", o.frames.average()))
	imgui.PlotLinesFloatPtr("##frametime", &o.frames.millis[0], int32(len(o.frames.millis)))

	if imgui.TreeNodeStr("System Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// frameTimes is a ring of the most recent frame periods in milliseconds.
type frameTimes struct {
	last   time.Time
	millis []float32
	next   int
	filled int
}

func newFrameTimes(size int, start time.Time) *frameTimes {
	return &frameTimes{
		last:   start,
		millis: make([]float32, max(size, 1)),
	}
}

// lap records the time since the previous lap.
func (f *frameTimes) lap(now time.Time) {
	f.millis[f.next] = float32(now.Sub(f.last).Seconds() * 1000)
	f.last = now
	f.next = (f.next + 1) % len(f.millis)
	f.filled = min(f.filled+1, len(f.millis))
}

// average returns the mean of the recorded laps, or zero before the first one.
func (f *frameTimes) average() float32 {
	if f.filled == 0 {
		return 0
	}
	var sum float32
	for _, ms := range f.millis[:f.filled] {
		sum += ms
	}
	return sum / float32(f.filled)
}
