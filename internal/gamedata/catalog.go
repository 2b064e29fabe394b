package gamedata

// Catalog bundles every embedded definition the game needs.
type Catalog struct {
	Species *SpeciesRegistry
	Zones   []ZoneDef
	Weapons *WeaponsFile
}

// LoadCatalog loads species, zones and weapons from the embedded files.
func LoadCatalog() (*Catalog, error) {
	species, err := LoadSpeciesRegistry()
	if err != nil {
		return nil, err
	}
	zones, err := LoadZones()
	if err != nil {
		return nil, err
	}
	weapons, err := LoadWeapons()
	if err != nil {
		return nil, err
	}
	return &Catalog{Species: species, Zones: zones, Weapons: weapons}, nil
}

// MustLoadCatalog loads the catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}
