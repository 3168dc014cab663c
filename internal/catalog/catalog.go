// Package catalog holds the read-only star catalogue used to validate
// science plan targets.
//
// Lookups are case-insensitive: names are compared after trimming and
// Unicode case folding, so "orion", " ORION " and "Orion" all match.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Quadrant is one of the eight sky quadrants a constellation belongs to
type Quadrant string

const (
	NQ1 Quadrant = "NQ1"
	NQ2 Quadrant = "NQ2"
	NQ3 Quadrant = "NQ3"
	NQ4 Quadrant = "NQ4"
	SQ1 Quadrant = "SQ1"
	SQ2 Quadrant = "SQ2"
	SQ3 Quadrant = "SQ3"
	SQ4 Quadrant = "SQ4"
)

// IsValid checks if the quadrant value is valid
func (q Quadrant) IsValid() bool {
	switch q {
	case NQ1, NQ2, NQ3, NQ4, SQ1, SQ2, SQ3, SQ4:
		return true
	}
	return false
}

// Hemisphere returns which observatory must observe this quadrant.
func (q Quadrant) Hemisphere() Hemisphere {
	if strings.HasPrefix(string(q), "N") {
		return North
	}
	return South
}

// Hemisphere is the hemisphere of visibility
type Hemisphere string

const (
	North Hemisphere = "north"
	South Hemisphere = "south"
)

// Constellation is a single catalogue entry.
type Constellation struct {
	Name          string   `json:"name"`
	EnglishName   string   `json:"english_name"`
	Area          float64  `json:"area"`
	Quadrant      Quadrant `json:"quadrant"`
	StartLatitude int      `json:"start_latitude"`
	EndLatitude   int      `json:"end_latitude"`
	Month         int      `json:"month"`
}

// Hemisphere is a shorthand for c.Quadrant.Hemisphere().
func (c Constellation) Hemisphere() Hemisphere {
	return c.Quadrant.Hemisphere()
}

// Catalog is an immutable name index over a set of constellations.
// It is safe for concurrent use.
type Catalog struct {
	entries []Constellation
	byKey   map[string]int
}

var defaultCatalog = mustNew(constellations)

// Default returns the facility catalogue.
func Default() *Catalog {
	return defaultCatalog
}

// New builds a catalog. Names must be non-blank and unique after folding.
func New(entries []Constellation) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Constellation, 0, len(entries)),
		byKey:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		key := foldKey(e.Name)
		if key == "" {
			return nil, fmt.Errorf("constellation name is required")
		}
		if !e.Quadrant.IsValid() {
			return nil, fmt.Errorf("constellation %s: invalid quadrant %q", e.Name, e.Quadrant)
		}
		if _, dup := c.byKey[key]; dup {
			return nil, fmt.Errorf("duplicate constellation %q", e.Name)
		}
		c.byKey[key] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

func mustNew(entries []Constellation) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Contains reports whether name is a catalogue target.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Get returns the entry for name.
func (c *Catalog) Get(name string) (Constellation, bool) {
	i, ok := c.byKey[foldKey(name)]
	if !ok {
		return Constellation{}, false
	}
	return c.entries[i], true
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// All returns a copy of every entry in catalogue order.
func (c *Catalog) All() []Constellation {
	return append([]Constellation(nil), c.entries...)
}

// Names returns the canonical names sorted alphabetically.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	sort.Strings(names)
	return names
}

// Filter narrows catalogue listings. Zero fields match everything.
type Filter struct {
	Hemisphere Hemisphere
	Quadrant   Quadrant
	Month      int
}

// Find returns entries matching f in catalogue order.
func (c *Catalog) Find(f Filter) []Constellation {
	var out []Constellation
	for _, e := range c.entries {
		if f.Hemisphere != "" && e.Hemisphere() != f.Hemisphere {
			continue
		}
		if f.Quadrant != "" && e.Quadrant != f.Quadrant {
			continue
		}
		if f.Month != 0 && e.Month != f.Month {
			continue
		}
		out = append(out, e)
	}
	return out
}

// foldKey normalizes a name for lookup. A new Caser is built per call
// because cases.Caser is not safe for concurrent use.
func foldKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
