// Package taxonomy holds the static complaint hierarchy: sectors and their
// subprocesses, each with a semantic scope description used as classification
// context. The menu is read-only after construction and safe for concurrent
// use.
package taxonomy

import "fmt"

// OthersName is the reserved subprocess present in every sector. Selecting it
// routes the complaint to free-text category matching.
const OthersName = "Others"

// Subprocess is a sector-scoped complaint category. SemanticScope describes
// the kinds of real-world problems it covers, as classification context
// rather than keywords.
type Subprocess struct {
	Name          string
	SemanticScope string
}

// Sector is a top-level complaint domain.
type Sector struct {
	Key             string
	Name            string
	Icon            string
	Description     string
	SubprocessOrder []string
	Subprocesses    map[string]Subprocess
}

// Menu is the ordered sector hierarchy.
type Menu struct {
	SectorOrder []string
	Sectors     map[string]Sector
}

// Sector looks up a sector by key. Callers decide their own default on a
// miss; there is no silent empty-sector fallback.
func (m *Menu) Sector(key string) (Sector, bool) {
	s, ok := m.Sectors[key]
	return s, ok
}

// Subprocess looks up a subprocess by key within the sector.
func (s *Sector) Subprocess(key string) (Subprocess, bool) {
	sp, ok := s.Subprocesses[key]
	return sp, ok
}

// SubprocessName resolves a sector/subprocess key pair to the subprocess
// display name.
func (m *Menu) SubprocessName(sectorKey, subprocessKey string) (string, bool) {
	sector, ok := m.Sector(sectorKey)
	if !ok {
		return "", false
	}
	sp, ok := sector.Subprocess(subprocessKey)
	if !ok {
		return "", false
	}
	return sp.Name, true
}

// Matchable returns the sector's subprocesses in display order, excluding the
// reserved "Others" entry. These are the candidates for semantic matching.
func (s *Sector) Matchable() []Subprocess {
	out := make([]Subprocess, 0, len(s.SubprocessOrder))
	for _, key := range s.SubprocessOrder {
		sp := s.Subprocesses[key]
		if sp.Name == OthersName {
			continue
		}
		out = append(out, sp)
	}
	return out
}

// HasSubprocessNamed reports whether name exactly matches one of the sector's
// subprocess display names.
func (s *Sector) HasSubprocessNamed(name string) bool {
	for _, sp := range s.Subprocesses {
		if sp.Name == name {
			return true
		}
	}
	return false
}

// Validate enforces the structural invariants: every sector carries exactly
// one "Others" entry with an empty scope, the order slices cover the maps,
// and display names are unique within a sector.
func (m *Menu) Validate() error {
	if len(m.SectorOrder) != len(m.Sectors) {
		return fmt.Errorf("taxonomy: sector order lists %d keys, map has %d", len(m.SectorOrder), len(m.Sectors))
	}
	for _, key := range m.SectorOrder {
		sector, ok := m.Sectors[key]
		if !ok {
			return fmt.Errorf("taxonomy: ordered sector key %q missing from map", key)
		}
		if len(sector.SubprocessOrder) != len(sector.Subprocesses) {
			return fmt.Errorf("taxonomy: sector %q subprocess order lists %d keys, map has %d",
				key, len(sector.SubprocessOrder), len(sector.Subprocesses))
		}

		others := 0
		names := make(map[string]bool, len(sector.Subprocesses))
		for _, spKey := range sector.SubprocessOrder {
			sp, ok := sector.Subprocesses[spKey]
			if !ok {
				return fmt.Errorf("taxonomy: sector %q ordered subprocess key %q missing from map", key, spKey)
			}
			if names[sp.Name] {
				return fmt.Errorf("taxonomy: sector %q has duplicate subprocess name %q", key, sp.Name)
			}
			names[sp.Name] = true
			if sp.Name == OthersName {
				others++
				if sp.SemanticScope != "" {
					return fmt.Errorf("taxonomy: sector %q %q entry must carry an empty scope", key, OthersName)
				}
			}
		}
		if others != 1 {
			return fmt.Errorf("taxonomy: sector %q has %d %q entries, want exactly 1", key, others, OthersName)
		}
	}
	return nil
}
