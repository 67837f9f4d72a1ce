// Package game provides the main game loop and session management.
package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeman/internal/entity"
	"github.com/samdwyer/mazeman/internal/gamedata"
	"github.com/samdwyer/mazeman/internal/telemetry"
	"github.com/samdwyer/mazeman/internal/ui"
)

// Game holds the terminal front end and the active session.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	scene    *ui.Scene
	session  *Session
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, cfg.Layout),
		scene:    ui.NewScene(),
		running:  true,
	}, nil
}

// Run loads the level and executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	if err := g.init(ctx); err != nil {
		return err
	}

	// Main game loop
	for g.running {
		g.renderer.Render(g.scene, g.session.Player, g.session.Maze)

		// Handle input (blocking)
		g.handleInput(ctx)
	}
	return nil
}

// init loads the level and starts a session (traced).
func (g *Game) init(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	m, err := LoadLevel(ctx, g.cfg)
	if err != nil {
		span.RecordError(err)
		return err
	}

	glyphs, err := gamedata.LoadGlyphSet()
	if err != nil {
		span.RecordError(err)
		return err
	}

	g.session, err = NewSession(ctx, g.cfg, m, g.scene, glyphs)
	if err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttributes(
		attribute.String("session.id", g.session.ID.String()),
		attribute.Int("scene.visuals", g.scene.Len()),
		attribute.Bool("display.full_refresh", g.cfg.FullRefresh),
	)
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.session.Tick(ctx, entity.DirUp)
	case tcell.KeyDown:
		g.session.Tick(ctx, entity.DirDown)
	case tcell.KeyLeft:
		g.session.Tick(ctx, entity.DirLeft)
	case tcell.KeyRight:
		g.session.Tick(ctx, entity.DirRight)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'h':
			g.session.Tick(ctx, entity.DirLeft)
		case 'j':
			g.session.Tick(ctx, entity.DirDown)
		case 'k':
			g.session.Tick(ctx, entity.DirUp)
		case 'l':
			g.session.Tick(ctx, entity.DirRight)
		}
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
