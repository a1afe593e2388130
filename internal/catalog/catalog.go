// Package catalog holds the school dataset and the search over it.
//
// The dataset is parsed once at startup and never mutated afterwards, so a
// Catalog is safe for concurrent use without locking.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"AtsAssistant/entity"
)

//go:embed data/schools.csv
var embeddedDataset string

type Catalog struct {
	schools []entity.School
	byID    map[string]int
}

func New(schools []entity.School) *Catalog {
	byID := make(map[string]int, len(schools))
	for i, s := range schools {
		if _, ok := byID[s.ID]; !ok {
			byID[s.ID] = i
		}
	}
	return &Catalog{
		schools: schools,
		byID:    byID,
	}
}

// Load builds a catalog from the embedded dataset, or from the file at path
// when one is given.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return New(Parse(embeddedDataset)), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	return New(Parse(string(data))), nil
}

// Schools returns a copy of all records in dataset order.
func (c *Catalog) Schools() []entity.School {
	out := make([]entity.School, len(c.schools))
	copy(out, c.schools)
	return out
}

func (c *Catalog) Len() int {
	return len(c.schools)
}

func (c *Catalog) Filter(criteria entity.FilterCriteria, favorites map[string]struct{}) []entity.School {
	return Filter(c.schools, criteria, favorites)
}

func (c *Catalog) Specialties() []string {
	return Specialties(c.schools)
}

func (c *Catalog) SchoolNames() []string {
	return SchoolNames(c.schools)
}

func (c *Catalog) Governorates() []string {
	out := make([]string, len(governorates))
	copy(out, governorates)
	return out
}

func (c *Catalog) Facets() entity.Facets {
	return entity.Facets{
		Governorates: c.Governorates(),
		Specialties:  c.Specialties(),
		SchoolNames:  c.SchoolNames(),
	}
}

// FindByID returns the first school with the given id.
func (c *Catalog) FindByID(id string) (entity.School, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entity.School{}, false
	}
	return c.schools[i], true
}

// FindByName returns the first school with exactly the given name.
func (c *Catalog) FindByName(name string) (entity.School, bool) {
	for _, s := range c.schools {
		if s.Name == name {
			return s, true
		}
	}
	return entity.School{}, false
}
