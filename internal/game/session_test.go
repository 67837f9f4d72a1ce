package game

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/mazeman/internal/entity"
	"github.com/samdwyer/mazeman/internal/gamedata"
	"github.com/samdwyer/mazeman/internal/maze"
	"github.com/samdwyer/mazeman/internal/ui"
)

func newTestSession(t *testing.T, level string, full bool) (*Session, *ui.Scene) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.FullRefresh = full
	return newTestSessionConfig(t, level, cfg)
}

func newTestSessionConfig(t *testing.T, level string, cfg Config) (*Session, *ui.Scene) {
	t.Helper()
	m, err := maze.Load(level)
	if err != nil {
		t.Fatal(err)
	}
	glyphs, err := gamedata.LoadGlyphSet()
	if err != nil {
		t.Fatal(err)
	}

	scene := ui.NewScene()
	s, err := NewSession(t.Context(), cfg, m, scene, glyphs)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s, scene
}

func TestLoadLevelBundled(t *testing.T) {
	m, err := LoadLevel(t.Context(), DefaultConfig())
	if err != nil {
		t.Fatalf("LoadLevel() error = %v", err)
	}
	if m.Rows() != 13 || m.Cols() != 38 {
		t.Errorf("bundled level size = %dx%d, want 13x38", m.Rows(), m.Cols())
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LevelPath = filepath.Join(t.TempDir(), "nope.txt")

	_, err := LoadLevel(t.Context(), cfg)
	var le *maze.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("LoadLevel() error = %v, want *maze.LoadError", err)
	}
	if le.Source != cfg.LevelPath || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadLevel() error = %v, want not-exist naming %s", err, cfg.LevelPath)
	}
}

func TestLoadLevelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.txt")
	if err := os.WriteFile(path, []byte("WWW\nWDW\nWWW\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.LevelPath = path

	m, err := LoadLevel(t.Context(), cfg)
	if err != nil {
		t.Fatalf("LoadLevel() error = %v", err)
	}
	if m.DotsRemaining() != 1 {
		t.Errorf("DotsRemaining() = %d, want 1", m.DotsRemaining())
	}
}

func TestStartCell(t *testing.T) {
	tests := []struct {
		level string
		want  maze.Cell
		ok    bool
	}{
		{"WDW\nW W\n", maze.Cell{Col: 1, Row: 1}, true},
		{"WDW\nWCW\n", maze.Cell{Col: 1, Row: 0}, true},
		{"WWW\n", maze.Cell{}, false},
	}

	for _, tt := range tests {
		m, err := maze.Load(tt.level)
		if err != nil {
			t.Fatal(err)
		}
		got, ok := StartCell(m)
		if got != tt.want || ok != tt.ok {
			t.Errorf("StartCell(%q) = %v, %v, want %v, %v", tt.level, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNewSessionNoStart(t *testing.T) {
	m, err := maze.Load("WW\nWW\n")
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewSession(t.Context(), DefaultConfig(), m, ui.NewScene(), nil)
	if !errors.Is(err, ErrNoStart) {
		t.Errorf("NewSession() error = %v, want ErrNoStart", err)
	}
}

func TestSessionSingleDot(t *testing.T) {
	s, scene := newTestSession(t, "D", false)
	if scene.Len() != 1 {
		t.Fatalf("initial visuals = %d, want 1", scene.Len())
	}

	res := s.Tick(t.Context(), entity.DirNone)
	if !res.Ate || res.Cell != (maze.Cell{}) {
		t.Errorf("Tick() = %+v, want dot eaten at {0 0}", res)
	}
	if k, _ := s.Maze.KindAt(0, 0); k != maze.Path {
		t.Errorf("KindAt(0, 0) = %v, want path", k)
	}
	if scene.Len() != 0 || s.Visuals() != 0 {
		t.Errorf("visuals after eating = %d (registry %d), want 0", scene.Len(), s.Visuals())
	}

	if res := s.Tick(t.Context(), entity.DirNone); res.Ate {
		t.Error("second Tick() ate again")
	}
	if s.Eaten() != 1 {
		t.Errorf("Eaten() = %d, want 1", s.Eaten())
	}
}

func TestSessionEatsOneDotPerStep(t *testing.T) {
	for _, full := range []bool{false, true} {
		s, scene := newTestSession(t, "WWWWW\nW DDW\nWWWWW\n", full)
		if scene.Len() != 14 {
			t.Fatalf("full=%v: initial visuals = %d, want 14", full, scene.Len())
		}

		res := s.Tick(t.Context(), entity.DirRight)
		if !res.Moved || !res.Ate {
			t.Fatalf("full=%v: Tick(right) = %+v, want move and eat", full, res)
		}
		if s.Maze.DotsRemaining() != 1 {
			t.Errorf("full=%v: DotsRemaining() = %d, want 1", full, s.Maze.DotsRemaining())
		}
		if scene.Len() != 13 {
			t.Errorf("full=%v: visuals = %d, want 13 (one dot left on screen)", full, scene.Len())
		}

		res = s.Tick(t.Context(), entity.DirUp)
		if res.Moved || res.Ate {
			t.Errorf("full=%v: Tick(up) into wall = %+v, want nothing", full, res)
		}
	}
}

func TestSessionDropAllDotsRedrawsRemaining(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DropAllDots = true
	s, scene := newTestSessionConfig(t, "WWWWWW\nW DDDW\nWWWWWW\n", cfg)
	if scene.Len() != 17 {
		t.Fatalf("initial visuals = %d, want 17", scene.Len())
	}

	res := s.Tick(t.Context(), entity.DirRight)
	if !res.Ate {
		t.Fatalf("Tick(right) = %+v, want dot eaten", res)
	}
	if res.Dropped != 3 {
		t.Errorf("Dropped = %d, want all 3 dot visuals", res.Dropped)
	}
	if res.Display.Spawned != 2 {
		t.Errorf("Display.Spawned = %d, want 2 remaining dots redrawn", res.Display.Spawned)
	}
	if s.Maze.DotsRemaining() != 2 {
		t.Errorf("DotsRemaining() = %d, want 2", s.Maze.DotsRemaining())
	}
	if scene.Len() != 16 {
		t.Errorf("visuals = %d, want 16", scene.Len())
	}
}

func TestSessionInvalidatesOnlyEatenCell(t *testing.T) {
	s, _ := newTestSession(t, "WWWWWW\nW DDDW\nWWWWWW\n", false)

	res := s.Tick(t.Context(), entity.DirRight)
	if !res.Ate || res.Dropped != 1 {
		t.Errorf("Tick(right) = %+v, want one visual dropped", res)
	}
	if res.Display.Spawned != 0 || res.Display.Despawned != 0 {
		t.Errorf("Display = %+v, want no further changes", res.Display)
	}
}
