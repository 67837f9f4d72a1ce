package game

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeman/internal/display"
	"github.com/samdwyer/mazeman/internal/entity"
	"github.com/samdwyer/mazeman/internal/gamedata"
	"github.com/samdwyer/mazeman/internal/maze"
	"github.com/samdwyer/mazeman/internal/rules"
	"github.com/samdwyer/mazeman/internal/telemetry"
)

// ErrNoStart is returned when a level has no walkable cell for the player.
var ErrNoStart = errors.New("level has no walkable cell")

// Session is one playthrough of one level. It owns the maze; every rule and
// the display synchronizer are handed the same instance.
type Session struct {
	ID     uuid.UUID
	Maze   *maze.Maze
	Layout maze.Layout
	Player *entity.Player

	eater       *rules.DotEater
	display     *display.Synchronizer
	fullRefresh bool
	dropAllDots bool
}

// TickResult reports what happened during a tick.
type TickResult struct {
	Moved   bool
	Ate     bool
	Cell    maze.Cell // Cell whose dot was eaten, valid when Ate is set
	Dropped int       // Visuals dropped in response to the eat
	Display display.Stats
}

// LoadLevel reads the configured level, or the bundled one when none is set.
func LoadLevel(ctx context.Context, cfg Config) (*maze.Maze, error) {
	_, span := telemetry.Tracer("maze").Start(ctx, "maze.load")
	defer span.End()

	var (
		m      *maze.Maze
		err    error
		source = cfg.LevelPath
	)
	if source != "" {
		m, err = maze.LoadFile(source)
	} else {
		source = gamedata.DefaultLevel
		m, err = loadBundled(source)
	}
	span.SetAttributes(attribute.String("maze.source", source))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("maze.rows", m.Rows()),
		attribute.Int("maze.cols", m.Cols()),
		attribute.Int("maze.dots", m.DotsRemaining()),
	)
	return m, nil
}

func loadBundled(name string) (*maze.Maze, error) {
	text, err := gamedata.Level(name)
	if err != nil {
		return nil, &maze.LoadError{Source: name, Err: err}
	}
	m, err := maze.Load(text)
	if err != nil {
		var le *maze.LoadError
		if errors.As(err, &le) {
			le.Source = name
		}
		return nil, err
	}
	return m, nil
}

// StartCell picks the player's spawn: the first Path cell in row-major
// order, or failing that the first walkable cell.
func StartCell(m *maze.Maze) (maze.Cell, bool) {
	var path, walkable *maze.Cell
	m.Each(func(c maze.Cell, kind maze.TileKind) {
		if kind == maze.Path && path == nil {
			path = &c
		}
		if kind.Walkable() && walkable == nil {
			walkable = &c
		}
	})
	switch {
	case path != nil:
		return *path, true
	case walkable != nil:
		return *walkable, true
	default:
		return maze.Cell{}, false
	}
}

// NewSession wires a maze to its rules and display and draws the first frame.
func NewSession(ctx context.Context, cfg Config, m *maze.Maze, scene display.Scene, assets display.Assets) (*Session, error) {
	start, ok := StartCell(m)
	if !ok {
		return nil, ErrNoStart
	}

	s := &Session{
		ID:          uuid.New(),
		Maze:        m,
		Layout:      cfg.Layout,
		Player:      entity.NewPlayer(cfg.Layout, start),
		eater:       rules.NewDotEater(m, cfg.Layout),
		display:     display.NewSynchronizer(scene, assets, cfg.Layout),
		fullRefresh: cfg.FullRefresh,
		dropAllDots: cfg.DropAllDots,
	}
	s.display.Rebuild(ctx, m)
	return s, nil
}

// Tick advances the session by one step: move, eat, then refresh the display,
// so the frame drawn after a tick never lags the grid.
func (s *Session) Tick(ctx context.Context, dir entity.Direction) TickResult {
	var res TickResult
	if dir != entity.DirNone {
		res.Moved = s.Player.Step(s.Maze, s.Layout, dir)
	}

	res.Cell, res.Ate = s.eater.Step(ctx, s.Player)
	switch {
	case res.Ate && s.dropAllDots:
		res.Dropped = s.display.DropDots()
	case res.Ate:
		if s.display.Invalidate(res.Cell) {
			res.Dropped = 1
		}
	}

	if s.fullRefresh {
		res.Display = s.display.Rebuild(ctx, s.Maze)
	} else {
		res.Display = s.display.Sync(ctx, s.Maze)
	}
	return res
}

// Eaten returns the number of dots eaten this session.
func (s *Session) Eaten() int {
	return s.eater.Eaten()
}

// Visuals returns the number of tile visuals the session keeps on screen.
func (s *Session) Visuals() int {
	return s.display.Len()
}
