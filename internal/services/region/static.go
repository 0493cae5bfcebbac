// Package region classifies world locations from a static table of rectangles
package region

import (
	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Static answers region queries from configured rectangles. The first
// rectangle containing a location wins.
type Static struct {
	regions []config.RegionDef
}

var _ engine.RegionLookup = (*Static)(nil)

// NewStatic creates a lookup over a copy of defs
func NewStatic(defs []config.RegionDef) (*Static, error) {
	vb := errors.NewValidationBuilder()
	for i, d := range defs {
		if d.Name == "" {
			vb.Fieldf("regions", "region %d needs a name", i)
		}
		if d.MaxX < d.MinX || d.MaxY < d.MinY {
			vb.Fieldf("regions", "region %q has inverted bounds", d.Name)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	regions := make([]config.RegionDef, len(defs))
	copy(regions, defs)
	return &Static{regions: regions}, nil
}

// Find returns the first region containing loc
func (s *Static) Find(loc entities.Location) (config.RegionDef, bool) {
	for _, r := range s.regions {
		if r.Contains(loc) {
			return r, true
		}
	}
	return config.RegionDef{}, false
}

// DifficultyLevel is the configured difficulty of the containing region, or 0
func (s *Static) DifficultyLevel(loc entities.Location) float64 {
	r, ok := s.Find(loc)
	if !ok {
		return 0
	}
	return r.Difficulty
}

// Classify describes the containing region
func (s *Static) Classify(loc entities.Location) engine.RegionClass {
	r, ok := s.Find(loc)
	if !ok {
		return engine.RegionClass{Kind: engine.RegionNone}
	}
	return engine.RegionClass{
		Kind:        r.Kind,
		Name:        r.Name,
		ZoneID:      r.ZoneID,
		NoSkillGain: r.NoSkillGain,
		Ruleset:     r.Ruleset,
	}
}
