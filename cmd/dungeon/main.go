// Command dungeon runs the game in a window, with an ImGui world inspector
// toggled by F1.
package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/plus3/oxide/assets"
	debugui_ebiten "github.com/plus3/oxide/ecs/debugui/ebiten"
	"github.com/plus3/oxide/game"
	"github.com/plus3/oxide/internal/config"
	"github.com/plus3/oxide/internal/logging"
	"github.com/plus3/oxide/render/ebitenrender"
)

// Game implements ebiten.Game on top of a game session.
type Game struct {
	session  *game.Session
	renderer *ebitenrender.Renderer
	overlay  *debugui_ebiten.Overlay
	logger   zerolog.Logger
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.Inspector.Toggle()
		g.logger.Debug().Bool("visible", g.overlay.Inspector.Visible).Msg("inspector toggled")
	}

	input := ebitenrender.Input{Disabled: g.overlay.WantsKeyboard()}
	if err := g.session.Update(input); err != nil {
		return err
	}

	g.overlay.Update(g.session.World())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session.Canvas())
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	logger, closer, err := logging.New(cfg, os.Stderr)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}
	defer closer.Close()

	session, err := game.NewSession(assets.Catalog(), game.WithSessionLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start session")
	}
	if cfg.Level != 0 {
		if err := session.Load(cfg.Level); err != nil {
			logger.Fatal().Err(err).Int("level", cfg.Level).Msg("failed to load level")
		}
	}
	session.World().LogComponents(zerolog.DebugLevel)
	session.World().LogSystems(zerolog.DebugLevel)

	overlay := debugui_ebiten.NewOverlay(
		"Dungeon Oxide",
		ebitenrender.ScreenWidth*cfg.Scale,
		ebitenrender.ScreenHeight*cfg.Scale,
	)
	overlay.Inspector.Visible = cfg.Debug
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &Game{
		session:  session,
		renderer: ebitenrender.NewRenderer(),
		overlay:  overlay,
		logger:   logger,
	}

	if err := ebiten.RunGame(g); err != nil {
		logger.Error().Err(err).Msg("game stopped")
	}
}
