package sim

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/marblecrush/loop"
	"github.com/plus3/marblecrush/marble"
)

type Report struct {
	// Configuration
	Frames int
	Grid   marble.Grid
	Seed   uint64

	// Results
	FramesRun      int
	Interrupted    bool
	Transitions    int64
	Clicks         int64
	Refills        int64
	Clears         int
	Cleared        [marble.ColourCount]int
	Refilled       [marble.ColourCount]int
	InitialCounts  [marble.ColourCount]int
	FinalCounts    [marble.ColourCount]int
	FinalPieces    int
	FinalVacancies int

	TotalTime     time.Duration
	UpdateTime    Stats
	Systems       []loop.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// ColourRow is one line of the per-colour table.
type ColourRow struct {
	Colour   marble.Colour
	Initial  int
	Cleared  int
	Refilled int
	Final    int
}

// Colours returns the per-colour table in enumeration order.
func (r *Report) Colours() []ColourRow {
	rows := make([]ColourRow, 0, marble.ColourCount)
	for _, c := range marble.Colours {
		rows = append(rows, ColourRow{
			Colour:   c,
			Initial:  r.InitialCounts[c],
			Cleared:  r.Cleared[c],
			Refilled: r.Refilled[c],
			Final:    r.FinalCounts[c],
		})
	}
	return rows
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Marble Crush Simulation Report

## Configuration
- **Frames:** {{.Frames}}{{if .Interrupted}} (interrupted after {{.FramesRun}}){{end}}
- **Grid:** {{.Grid.Cols}} x {{.Grid.Rows}} cells, radius {{.Grid.Radius}}
- **Seed:** {{.Seed}}

## Play
- **Transitions:** {{.Transitions}}
- **Clicks:** {{.Clicks}} ({{.Clears}} cleared something)
- **Refills:** {{.Refills}}
- **Final Board:** {{.FinalPieces}} pieces, {{.FinalVacancies}} vacancies

| Colour | Initial | Cleared | Refilled | Final |
|---|---|---|---|---|
{{- range .Colours}}
| {{.Colour}} | {{.Initial}} | {{.Cleared}} | {{.Refilled}} | {{.Final}} |
{{- end}}

## Performance
- **Total Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{- range .Systems}}
- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc: {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:      {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
