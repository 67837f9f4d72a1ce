package gamedata

import (
	"encoding/json"
	"fmt"
	"path"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// DefaultLevel is the name of the bundled level.
const DefaultLevel = "maze.txt"

// Level returns the raw text of a bundled level.
func Level(name string) (string, error) {
	content, err := dataFS.ReadFile(path.Join("levels", name))
	if err != nil {
		return "", fmt.Errorf("failed to read bundled level %s: %w", name, err)
	}
	return string(content), nil
}
