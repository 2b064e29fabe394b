package gamedata

import (
	"errors"
	"fmt"
)

// LevelRange is an inclusive monster level bound for one zone difficulty.
type LevelRange struct {
	Difficulty string `yaml:"difficulty"`
	MinLevel   int    `yaml:"min_level"`
	MaxLevel   int    `yaml:"max_level"`
}

// ZoneDef defines a themed zone loaded from YAML.
type ZoneDef struct {
	Type             string       `yaml:"type"`
	Name             string       `yaml:"name"`
	Description      string       `yaml:"description"`
	RecommendedLevel int          `yaml:"recommended_level"`
	UniqueMonsters   []string     `yaml:"unique_monsters"`
	BossName         string       `yaml:"boss_name"`
	Difficulties     []LevelRange `yaml:"difficulties"`
}

// Validate checks the zone's level ranges.
func (z *ZoneDef) Validate() error {
	if z.Type == "" {
		return errors.New("zone: type must not be empty")
	}
	if len(z.Difficulties) == 0 {
		return fmt.Errorf("zone %q: at least one difficulty is required", z.Type)
	}
	for _, d := range z.Difficulties {
		if d.MinLevel < 1 || d.MaxLevel < d.MinLevel {
			return fmt.Errorf("zone %q difficulty %q: invalid level range [%d, %d]",
				z.Type, d.Difficulty, d.MinLevel, d.MaxLevel)
		}
	}
	return nil
}

// ZonesFile represents the structure of zones.yaml.
type ZonesFile struct {
	Zones []ZoneDef `yaml:"zones"`
}

// LoadZones loads zone definitions from the embedded zones.yaml file.
func LoadZones() ([]ZoneDef, error) {
	file, err := Load[ZonesFile]("zones.yaml")
	if err != nil {
		return nil, err
	}
	for i := range file.Zones {
		if err := file.Zones[i].Validate(); err != nil {
			return nil, err
		}
	}
	return file.Zones, nil
}

// MustLoadZones loads zone definitions, panicking on error.
func MustLoadZones() []ZoneDef {
	zones, err := LoadZones()
	if err != nil {
		panic(err)
	}
	return zones
}
