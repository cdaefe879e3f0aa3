package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/floating-rectangles/internal/anim"
	"github.com/iburimskiy/floating-rectangles/internal/config"
	"github.com/iburimskiy/floating-rectangles/internal/render"
	"github.com/iburimskiy/floating-rectangles/internal/scene"
)

// Game hosts the scene in a window. S starts the animation, Q or Escape
// closes the window.
type Game struct {
	cfg      config.Config
	scene    *scene.Scene
	renderer *render.Renderer
	driver   *anim.Driver
	screen   screenDevice

	// OnStart runs once, when the animation starts.
	OnStart func() error

	frames  int
	lastErr error
}

func New(cfg config.Config, s *scene.Scene, r *render.Renderer, d *anim.Driver, shader *ebiten.Shader) *Game {
	return &Game{
		cfg:      cfg,
		scene:    s,
		renderer: r,
		driver:   d,
		screen:   screenDevice{shader: shader},
	}
}

func (g *Game) Update() error {
	if g.lastErr != nil {
		return g.lastErr
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && g.driver.Start() {
		Logger().Info("animation started", "objects", len(g.scene.Objects))
		if g.OnStart != nil {
			if err := g.OnStart(); err != nil {
				Logger().Warn("start cue failed, continuing without audio", "err", err)
			}
		}
	}

	// ebiten calls Draw after Update, so a frame shows the state advanced
	// in the same tick.
	g.driver.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.dst = screen
	if err := g.renderer.Frame(&g.screen, g.scene); err != nil {
		g.lastErr = err
		return
	}
	g.frames++
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}

func (g *Game) status() string {
	if g.driver.State() == anim.Stopped {
		return "S: start  Q: quit"
	}
	return fmt.Sprintf("%s %s  %d objects  %.0f fps  Q: quit",
		g.driver.State(), formatDuration(g.driver.Uptime()), len(g.scene.Objects), ebiten.ActualFPS())
}

// Run opens the window and blocks until it closes. A failure before the
// first frame is drawn is reported as render.ErrDeviceUnavailable.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.WindowWidth, g.cfg.WindowHeight)
	ebiten.SetWindowTitle("Floating Rectangles - S: start, Q: quit")

	return exitError(ebiten.RunGame(g), g.frames, g.lastErr)
}

// exitError maps the error RunGame returned. Closing the window is not an
// error. A failure before any frame was drawn, other than one raised by the
// renderer itself, means the graphics device never came up.
func exitError(err error, frames int, renderErr error) error {
	switch {
	case err == nil || errors.Is(err, ebiten.Termination):
		return nil
	case frames == 0 && (renderErr == nil || !errors.Is(err, renderErr)):
		return fmt.Errorf("%w: %w", render.ErrDeviceUnavailable, err)
	default:
		return err
	}
}
