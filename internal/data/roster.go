// Package data reads the read-only setup files a table can bring to a game.
package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Roster is the YAML player list used to seat a game without interactive
// prompts. Seat order in the file is turn order in the game.
type Roster struct {
	Players []PlayerDef `yaml:"players"`
}

// PlayerDef is one seated player in a roster file.
type PlayerDef struct {
	Name string `yaml:"name"`
}

// LoadRoster reads and decodes a roster YAML file.
func LoadRoster(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open roster %s: %w", path, err)
	}
	defer f.Close()

	var r Roster
	if err := yaml.NewDecoder(f).Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to decode roster %s: %w", path, err)
	}
	if len(r.Players) == 0 {
		return nil, fmt.Errorf("roster %s lists no players", path)
	}
	return &r, nil
}

// Names returns the seat-ordered player names.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.Players))
	for _, p := range r.Players {
		names = append(names, p.Name)
	}
	return names
}
