package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/marblecrush/loop"
	"github.com/plus3/marblecrush/marble"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newTermCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			logger := cfg.Logger(cmd.ErrOrStderr())

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing screen: %w", err)
			}
			screen.EnableMouse()
			screen.HideCursor()
			logStart(logger, "term", cfg)

			session := loop.NewSession(newController(cfg))
			scheduler := loop.NewScheduler(session)

			g, gctx := errgroup.WithContext(cmd.Context())
			ctx, quit := context.WithCancel(gctx)
			defer quit()

			events := make(chan tcell.Event, 100)
			input := newTermInput(events, session.Grid().Radius, quit)
			input.resize = screen.Sync
			scheduler.Register(input)
			scheduler.Register(&termRenderer{screen: screen, session: session})

			g.Go(func() error {
				for {
					ev := screen.PollEvent()
					if ev == nil {
						return nil
					}
					select {
					case events <- ev:
					case <-ctx.Done():
						return nil
					}
				}
			})

			g.Go(func() error {
				scheduler.Run(ctx, cfg.TickInterval)
				screen.Fini()
				return nil
			})

			err = g.Wait()
			stats := scheduler.GetStats()
			logger.Info("terminal closed", "frames", stats.Frames, "transitions", session.Transitions())
			return err
		},
	}
}

// termInput drains terminal events into board events. Each marble is drawn
// two cells wide and one cell tall.
type termInput struct {
	events  <-chan tcell.Event
	radius  int
	quit    func()
	resize  func()
	buttons tcell.ButtonMask
}

func newTermInput(events <-chan tcell.Event, radius int, quit func()) *termInput {
	return &termInput{events: events, radius: radius, quit: quit}
}

func (t *termInput) Execute(frame *loop.Frame) {
	for {
		select {
		case ev := <-t.events:
			for _, out := range t.translate(ev) {
				frame.Events.Push(out)
			}
		default:
			return
		}
	}
}

// translate maps one terminal event to zero or more board events.
// A terminal never reports key releases.
func (t *termInput) translate(ev tcell.Event) []marble.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			if t.quit != nil {
				t.quit()
			}
			return nil
		}
		return []marble.Event{marble.KeyEvent{Kind: marble.KeyPressed, Key: termKeyName(ev)}}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons &^ t.buttons
		t.buttons = buttons

		col, row := ev.Position()
		x, y := t.cellToPixel(col, row)

		var out []marble.Event
		if pressed&tcell.Button1 != 0 {
			out = append(out, marble.PointerEvent{Kind: marble.PrimaryClick, X: x, Y: y})
		}
		if pressed&(tcell.Button2|tcell.Button3) != 0 {
			out = append(out, marble.PointerEvent{Kind: marble.PointerOther, X: x, Y: y})
		}
		return out

	case *tcell.EventResize:
		if t.resize != nil {
			t.resize()
		}
	}
	return nil
}

func (t *termInput) cellToPixel(col, row int) (int, int) {
	d := 2 * t.radius
	return (col/2)*d + t.radius, row*d + t.radius
}

func termKeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return strings.ToLower(string(ev.Rune()))
	}
	if name, ok := tcell.KeyNames[ev.Key()]; ok {
		return strings.ToLower(name)
	}
	return ""
}

// termRenderer redraws the board once the frame's events have been applied.
type termRenderer struct {
	screen  tcell.Screen
	session *loop.Session
}

func (r *termRenderer) Execute(frame *loop.Frame) {
	frame.Events.Defer(r.draw)
}

func (r *termRenderer) draw() {
	r.screen.Clear()

	board := r.session.Board()
	grid := r.session.Grid()
	for _, p := range board.All() {
		col, row := pixelToCell(p, grid.Radius)
		r.screen.SetContent(col, row, '●', nil, termStyle(p.Colour))
	}

	status := fmt.Sprintf("%d pieces  %d empty  [%s] refill  [q] quit",
		board.Len(), marble.EmptyLocations(board, grid), r.session.Controller().RefillKey())
	for i, c := range status {
		r.screen.SetContent(i, grid.Rows+1, c, nil, tcell.StyleDefault)
	}
	r.screen.Show()
}

func pixelToCell(p marble.Piece, radius int) (int, int) {
	d := 2 * radius
	return ((p.X - radius) / d) * 2, (p.Y - radius) / d
}
