package gamedata

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
)

func TestLoadSpecies(t *testing.T) {
	species, err := LoadSpecies()
	if err != nil {
		t.Fatalf("Failed to load species: %v", err)
	}

	if len(species) != 3 {
		t.Errorf("Expected 3 species, got %d", len(species))
	}

	expectedIDs := map[string]bool{"slime": false, "goblin": false, "ogre": false}
	for _, s := range species {
		if _, ok := expectedIDs[s.ID]; ok {
			expectedIDs[s.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected species %q not found", id)
		}
	}
}

func TestSpeciesScaling(t *testing.T) {
	registry := MustLoadSpeciesRegistry()

	tests := []struct {
		name                           string
		level                          int
		health, attack, defence, speed int
	}{
		{"Slime", 1, 5, 1, 0, 1},
		{"Slime", 4, 8, 4, 0, 4},
		{"Goblin", 1, 10, 3, 0, 5},
		{"Goblin", 3, 14, 5, 1, 9},
		{"Ogre", 2, 21, 7, 3, 1},
		{"Ogre", 4, 27, 11, 5, 2},
	}

	for _, tt := range tests {
		def, err := registry.Lookup(tt.name)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", tt.name, err)
		}
		got := [4]int{def.Health.At(tt.level), def.Attack.At(tt.level), def.Defence.At(tt.level), def.Speed.At(tt.level)}
		want := [4]int{tt.health, tt.attack, tt.defence, tt.speed}
		if got != want {
			t.Errorf("%s level %d stats = %v, want %v", tt.name, tt.level, got, want)
		}
	}
}

func TestSpeciesRegistryLookup(t *testing.T) {
	registry, err := LoadSpeciesRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 species, got %d", registry.Count())
	}

	if goblin := registry.GetByID("goblin"); goblin == nil || goblin.Name != "Goblin" {
		t.Errorf("GetByID(goblin) = %v, want Goblin", goblin)
	}

	if _, err := registry.Lookup("goblin"); err != nil {
		t.Errorf("Lookup should be case-insensitive: %v", err)
	}

	_, err = registry.Lookup("Dragon")
	if !errors.Is(err, ErrUnknownSpecies) {
		t.Errorf("Lookup(Dragon) error = %v, want ErrUnknownSpecies", err)
	}
}

func TestSpeciesValidate(t *testing.T) {
	tests := []struct {
		name string
		def  SpeciesDef
		ok   bool
	}{
		{"valid", SpeciesDef{ID: "x", Name: "X", Health: Scaling{Base: 1}}, true},
		{"missing id", SpeciesDef{Name: "X", Health: Scaling{Base: 1}}, false},
		{"missing name", SpeciesDef{ID: "x", Health: Scaling{Base: 1}}, false},
		{"no health", SpeciesDef{ID: "x", Name: "X"}, false},
		{"negative divisor", SpeciesDef{ID: "x", Name: "X", Health: Scaling{Base: 1}, Speed: Scaling{Divisor: -1}}, false},
	}

	for _, tt := range tests {
		err := tt.def.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("%s: Validate() = %v, want ok=%v", tt.name, err, tt.ok)
		}
	}
}

func TestLoadZones(t *testing.T) {
	zones := MustLoadZones()
	if len(zones) != 1 {
		t.Fatalf("Expected 1 zone, got %d", len(zones))
	}

	jungle := zones[0]
	if jungle.Type != "jungle" || jungle.Name != "Jungle" {
		t.Errorf("Unexpected zone %q (%q)", jungle.Type, jungle.Name)
	}
	if jungle.BossName != "Giant Spider" {
		t.Errorf("BossName = %q, want Giant Spider", jungle.BossName)
	}
	if len(jungle.Difficulties) != 1 || jungle.Difficulties[0].MinLevel != 1 || jungle.Difficulties[0].MaxLevel != 4 {
		t.Errorf("Unexpected difficulties %+v", jungle.Difficulties)
	}
}

func TestLoadWeapons(t *testing.T) {
	weapons := MustLoadWeapons()

	base := map[string]int{"sword": 10, "dagger": 5, "axe": 15}
	for id, attack := range base {
		def := weapons.TypeByID(id)
		if def == nil {
			t.Fatalf("weapon type %q not found", id)
		}
		if def.Attack != attack {
			t.Errorf("%s attack = %d, want %d", id, def.Attack, attack)
		}
	}

	want := map[string]int{"Broken": 5, "Rusty": 8, "": 10, "Sharp": 12}
	if len(weapons.Prefixes) != len(want) {
		t.Fatalf("Expected %d prefixes, got %d", len(want), len(weapons.Prefixes))
	}
	for _, p := range weapons.Prefixes {
		if got := p.Apply(10); got != want[p.Name] {
			t.Errorf("prefix %q Apply(10) = %d, want %d", p.Name, got, want[p.Name])
		}
	}
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	if catalog.Species == nil || catalog.Weapons == nil || len(catalog.Zones) == 0 {
		t.Error("LoadCatalog() returned an incomplete catalog")
	}
}

func TestParseHexColor(t *testing.T) {
	got, err := ParseHexColor("#FF0000")
	if err != nil {
		t.Fatalf("ParseHexColor failed: %v", err)
	}
	if got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("ParseHexColor(#FF0000) = %v, want red", got)
	}

	if _, err := ParseHexColor("00FF00"); err != nil {
		t.Errorf("ParseHexColor without # failed: %v", err)
	}

	if _, err := ParseHexColor("nope"); err == nil {
		t.Error("ParseHexColor(nope) should fail")
	}
}

func TestGlyphRune(t *testing.T) {
	def := &SpeciesDef{Glyph: "s"}
	if def.GlyphRune() != 's' {
		t.Errorf("GlyphRune() = %q, want 's'", def.GlyphRune())
	}
	empty := &SpeciesDef{}
	if empty.GlyphRune() != '?' {
		t.Errorf("empty GlyphRune() = %q, want '?'", empty.GlyphRune())
	}
}

type loaderFixture struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"ok.yaml":     {Data: []byte("name: Slime\nlevel: 2\n")},
		"typo.yaml":   {Data: []byte("name: Slime\nlevle: 2\n")},
		"broken.yaml": {Data: []byte("name: [unterminated\n")},
	}

	got, err := LoadFS[loaderFixture](fsys, "ok.yaml")
	if err != nil {
		t.Fatalf("LoadFS(ok.yaml) error = %v", err)
	}
	if got.Name != "Slime" || got.Level != 2 {
		t.Errorf("LoadFS(ok.yaml) = %+v, want {Slime 2}", got)
	}

	for _, name := range []string{"typo.yaml", "broken.yaml", "missing.yaml"} {
		if _, err := LoadFS[loaderFixture](fsys, name); err == nil {
			t.Errorf("LoadFS(%s) expected error, got nil", name)
		}
	}
}
