package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyLevel is returned for a level description without any cells.
	ErrEmptyLevel = errors.New("level has no cells")
	// ErrJaggedRows is returned when rows differ in length.
	ErrJaggedRows = errors.New("row length differs from first row")
)

// LoadError describes a level that could not be read or parsed.
type LoadError struct {
	Source string // File name or "<text>"
	Line   int    // 1-based line number, 0 if not line specific
	Err    error
}

func (e *LoadError) Error() string {
	src := e.Source
	if src == "" {
		src = "<text>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("load maze %s:%d: %v", src, e.Line, e.Err)
	}
	return fmt.Sprintf("load maze %s: %v", src, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Parse reads a level description, one line per row and one character per column.
func Parse(r io.Reader) (*Maze, error) {
	var cells [][]TileKind
	width := -1

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")

		if width < 0 {
			width = utf8.RuneCountInString(text)
		} else if n := utf8.RuneCountInString(text); n != width {
			return nil, &LoadError{
				Line: line,
				Err:  fmt.Errorf("%w: got %d columns, want %d", ErrJaggedRows, n, width),
			}
		}

		row := make([]TileKind, 0, width)
		for _, ch := range text {
			row = append(row, KindFromRune(ch))
		}
		cells = append(cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Err: err}
	}

	if len(cells) == 0 || width == 0 {
		return nil, &LoadError{Err: ErrEmptyLevel}
	}
	return New(cells)
}

// Load parses a level description held in memory.
func Load(text string) (*Maze, error) {
	return Parse(strings.NewReader(text))
}

// LoadFile reads and parses a level file.
func LoadFile(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Source = path
		}
		return nil, err
	}
	return m, nil
}
