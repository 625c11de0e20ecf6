// Command dungeon-tty runs the game in a terminal. The log goes to a file,
// since the terminal is taken by the game.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/plus3/oxide/assets"
	"github.com/plus3/oxide/game"
	"github.com/plus3/oxide/internal/config"
	"github.com/plus3/oxide/internal/logging"
	"github.com/plus3/oxide/render/ttyrender"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "dungeon-tty.log"
	}

	logger, closer, err := logging.New(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	session, err := game.NewSession(assets.Catalog(), game.WithSessionLogger(logger))
	if err != nil {
		return err
	}
	if cfg.Level != 0 {
		if err := session.Load(cfg.Level); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return loop(ctx, screen, session, cfg.TickInterval(), logger)
}

func loop(ctx context.Context, screen tcell.Screen, session *game.Session, interval time.Duration, logger zerolog.Logger) error {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go pump(screen, events, done)

	renderer := ttyrender.NewRenderer(screen)
	input := ttyrender.NewInput()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if input.Handle(ev) {
					logger.Info().Msg("quit requested")
					return nil
				}
			}
		case <-ticker.C:
			if err := session.Update(input); err != nil {
				return err
			}
			input.EndFrame()
			renderer.Draw(session.Canvas(), status(session))
		}
	}
}

// pump forwards screen events until the screen is finalized or done is
// closed.
func pump(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func status(session *game.Session) string {
	state := "alive"
	if !session.PlayerAlive() {
		state = "dead"
	}
	return fmt.Sprintf("level %d  %s  tick %d   arrows/wasd move  , . level  q quit",
		session.Level()+1, state, session.World().Ticks())
}
