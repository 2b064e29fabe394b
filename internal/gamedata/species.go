package gamedata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownSpecies is returned when a species name has no definition.
var ErrUnknownSpecies = errors.New("unknown species")

// Scaling describes how one stat grows with monster level:
// value = Base + level*PerLevel/Divisor, with integer division.
// A zero Divisor is treated as 1.
type Scaling struct {
	Base     int `yaml:"base"`
	PerLevel int `yaml:"per_level"`
	Divisor  int `yaml:"divisor"`
}

// At returns the stat value for the given level.
func (s Scaling) At(level int) int {
	div := s.Divisor
	if div <= 0 {
		div = 1
	}
	return s.Base + level*s.PerLevel/div
}

// SpeciesDef defines a monster species loaded from YAML.
type SpeciesDef struct {
	ID      string  `yaml:"id"`    // Unique identifier (e.g., "slime")
	Name    string  `yaml:"name"`  // Display name, also used by zone pools (e.g., "Slime")
	Glyph   string  `yaml:"glyph"` // Single character for rendering (e.g., "s")
	Color   string  `yaml:"color"` // Hex color code (e.g., "#00FF00")
	Health  Scaling `yaml:"health"`
	Attack  Scaling `yaml:"attack"`
	Defence Scaling `yaml:"defence"`
	Speed   Scaling `yaml:"speed"`
}

// Validate checks that the definition can produce monsters.
func (s *SpeciesDef) Validate() error {
	if s.ID == "" {
		return errors.New("species: id must not be empty")
	}
	if s.Name == "" {
		return fmt.Errorf("species %q: name must not be empty", s.ID)
	}
	if s.Health.Base+s.Health.PerLevel <= 0 {
		return fmt.Errorf("species %q: health must be positive at level 1", s.ID)
	}
	for _, d := range []int{s.Health.Divisor, s.Attack.Divisor, s.Defence.Divisor, s.Speed.Divisor} {
		if d < 0 {
			return fmt.Errorf("species %q: divisor must not be negative", s.ID)
		}
	}
	return nil
}

// GlyphRune returns the glyph as a rune for rendering.
func (s *SpeciesDef) GlyphRune() rune {
	if len(s.Glyph) == 0 {
		return '?'
	}
	return rune(s.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (s *SpeciesDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// SpeciesFile represents the structure of species.yaml.
type SpeciesFile struct {
	Species []SpeciesDef `yaml:"species"`
}

// LoadSpecies loads species definitions from the embedded species.yaml file.
func LoadSpecies() ([]SpeciesDef, error) {
	file, err := Load[SpeciesFile]("species.yaml")
	if err != nil {
		return nil, err
	}
	for i := range file.Species {
		if err := file.Species[i].Validate(); err != nil {
			return nil, err
		}
	}
	return file.Species, nil
}

// SpeciesRegistry holds loaded species definitions keyed by ID and name.
type SpeciesRegistry struct {
	species []SpeciesDef
	byName  map[string]*SpeciesDef
}

// NewSpeciesRegistry creates a registry from loaded species definitions.
// Name lookups are case-insensitive.
func NewSpeciesRegistry(species []SpeciesDef) *SpeciesRegistry {
	r := &SpeciesRegistry{
		species: species,
		byName:  make(map[string]*SpeciesDef, len(species)),
	}
	for i := range species {
		r.byName[strings.ToLower(species[i].Name)] = &species[i]
	}
	return r
}

// LoadSpeciesRegistry loads and creates a registry from the embedded species.yaml.
func LoadSpeciesRegistry() (*SpeciesRegistry, error) {
	species, err := LoadSpecies()
	if err != nil {
		return nil, err
	}
	if len(species) == 0 {
		return nil, errors.New("no species loaded from species.yaml")
	}
	return NewSpeciesRegistry(species), nil
}

// MustLoadSpeciesRegistry loads a registry, panicking on error.
func MustLoadSpeciesRegistry() *SpeciesRegistry {
	registry, err := LoadSpeciesRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the species definition with the given ID, or nil if not found.
func (r *SpeciesRegistry) GetByID(id string) *SpeciesDef {
	for i := range r.species {
		if r.species[i].ID == id {
			return &r.species[i]
		}
	}
	return nil
}

// Lookup returns the species with the given display name.
func (r *SpeciesRegistry) Lookup(name string) (*SpeciesDef, error) {
	def, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
	}
	return def, nil
}

// All returns all species definitions.
func (r *SpeciesRegistry) All() []SpeciesDef {
	return r.species
}

// Count returns the number of species in the registry.
func (r *SpeciesRegistry) Count() int {
	return len(r.species)
}
