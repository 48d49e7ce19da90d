package piece

import (
	"fmt"

	"github.com/talgya/cityforge/internal/geom"
)

// MemorySource serves piece definitions from memory. The demo binary and
// tests use it; production hosts typically load from SQLite instead.
type MemorySource struct {
	defs  map[string]Instance
	order []string
}

// NewMemorySource builds a source from literal instance definitions.
// Definitions are served in the order given.
func NewMemorySource(defs ...Instance) *MemorySource {
	s := &MemorySource{defs: make(map[string]Instance, len(defs))}
	for _, d := range defs {
		if _, dup := s.defs[d.ID]; dup {
			continue
		}
		s.defs[d.ID] = d
		s.order = append(s.order, d.ID)
	}
	return s
}

// List returns every definition identifier.
func (s *MemorySource) List() ([]string, error) {
	return append([]string(nil), s.order...), nil
}

// Instantiate returns a fresh copy of the named definition.
func (s *MemorySource) Instantiate(id string) (*Instance, error) {
	d, ok := s.defs[id]
	if !ok {
		return nil, fmt.Errorf("unknown piece template %q", id)
	}
	inst := d
	inst.Attachments = append([]AttachmentPoint(nil), d.Attachments...)
	inst.Parts = append([]geom.AABB(nil), d.Parts...)
	return &inst, nil
}
