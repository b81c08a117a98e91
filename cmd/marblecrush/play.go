package main

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/marblecrush/config"
	"github.com/plus3/marblecrush/debugui"
	debugui_ebiten "github.com/plus3/marblecrush/debugui/ebiten"
	"github.com/plus3/marblecrush/loop"
	"github.com/plus3/marblecrush/marble"
	"github.com/spf13/cobra"
)

const windowTitle = "Marble Crush"

func newPlayCommand(root *rootOptions) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			logger := cfg.Logger(cmd.ErrOrStderr())
			logStart(logger, "play", cfg)

			game := newGame(cfg, debug)
			if err := ebiten.RunGame(game); err != nil {
				return err
			}
			logger.Info("window closed", "transitions", game.scheduler.Session().Transitions())
			return nil
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "show the ImGui debug overlay")
	return cmd
}

// InputSystem translates Ebiten input into board events.
type InputSystem struct {
	overlay *debugui.Overlay
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	if s.overlay == nil || !s.overlay.WantCaptureKeyboard() {
		for _, k := range inpututil.AppendJustPressedKeys(nil) {
			frame.Events.Key(marble.KeyPressed, keyName(k))
		}
		for _, k := range inpututil.AppendJustReleasedKeys(nil) {
			frame.Events.Key(marble.KeyReleased, keyName(k))
		}
	}

	if s.overlay != nil && s.overlay.WantCaptureMouse() {
		return
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		frame.Events.Pointer(marble.PrimaryClick, x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		frame.Events.Pointer(marble.PointerOther, x, y)
	}
}

func keyName(k ebiten.Key) string {
	return strings.ToLower(k.String())
}

// Game implements ebiten.Game on top of a loop.Scheduler.
type Game struct {
	cfg          config.Config
	scheduler    *loop.Scheduler
	overlay      *debugui.Overlay
	imguiBackend *debugui_ebiten.ImguiBackend
}

func newGame(cfg config.Config, debug bool) *Game {
	session := loop.NewSession(newController(cfg))
	scheduler := loop.NewScheduler(session)

	game := &Game{
		cfg:       cfg,
		scheduler: scheduler,
	}

	if debug {
		game.imguiBackend = debugui_ebiten.NewImguiBackend(windowTitle, cfg.Board.Width*2, cfg.Board.Height)
		game.overlay = debugui.NewOverlay(scheduler, 120)
	} else {
		ebiten.SetWindowSize(cfg.Board.Width, cfg.Board.Height)
		ebiten.SetWindowTitle(windowTitle)
	}
	ebiten.SetTPS(ticksPerSecond(cfg.TickInterval))

	scheduler.Register(&InputSystem{overlay: game.overlay})
	return game
}

// ticksPerSecond converts a frame period to an update rate of at least one tick per second.
func ticksPerSecond(interval time.Duration) int {
	if interval <= 0 {
		return ebiten.DefaultTPS
	}
	return max(1, int(time.Second/interval))
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
	}

	g.scheduler.Once(1.0 / float64(ebiten.TPS()))

	if g.imguiBackend != nil {
		g.overlay.Render()
		g.imguiBackend.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColour)

	radius := float32(g.scheduler.Session().Grid().Radius)
	for _, p := range g.scheduler.Session().Board().All() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), radius, screenColour(p.Colour), true)
	}

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.cfg.Board.Width, g.cfg.Board.Height
}
