package piece

import "github.com/talgya/cityforge/internal/geom"

// Template is the immutable catalog record for one piece: metadata plus
// the attachment points and collision parts extracted from a throwaway
// instance at catalog load. Templates are created once and never mutated.
type Template struct {
	ID       string   `json:"id"` // Source-defined identifier (path-like)
	Category Category `json:"category"`
	Weight   float64  `json:"weight"` // Spawn weight; 0 treated as 1

	// Inclusive biome band the template may appear in.
	BiomeMin int `json:"biome_min"`
	BiomeMax int `json:"biome_max"`

	// Occupants marks templates pedestrians may spawn on.
	Occupants bool `json:"occupants"`

	Attachments []AttachmentPoint `json:"attachments"`
	Parts       []geom.AABB       `json:"parts"` // Local-space collision boxes
}

// InBiome reports whether the template's biome band contains the index.
func (t *Template) InBiome(biome int) bool {
	return biome >= t.BiomeMin && biome <= t.BiomeMax
}

// HasPlugOfSize reports whether any attachment is a plug whose size set
// intersects sizes.
func (t *Template) HasPlugOfSize(sizes SizeFlags) bool {
	for _, a := range t.Attachments {
		if a.Plug && a.Sizes&sizes != 0 {
			return true
		}
	}
	return false
}

// Instance is a freshly materialized piece produced by a Source. The
// catalog uses one transient instance per template at load to extract
// metadata; the growth scheduler requests one per placement attempt.
type Instance struct {
	ID       string
	Category Category
	Weight   float64

	BiomeMin int
	BiomeMax int

	Occupants bool

	Attachments []AttachmentPoint
	Parts       []geom.AABB
}

// template builds the immutable catalog record from an instance.
func (in *Instance) template() *Template {
	w := in.Weight
	if w <= 0 {
		w = 1
	}
	return &Template{
		ID:          in.ID,
		Category:    in.Category,
		Weight:      w,
		BiomeMin:    in.BiomeMin,
		BiomeMax:    in.BiomeMax,
		Occupants:   in.Occupants,
		Attachments: append([]AttachmentPoint(nil), in.Attachments...),
		Parts:       append([]geom.AABB(nil), in.Parts...),
	}
}

// Source enumerates loadable piece definitions and materializes them.
// The concrete encoding (directory listing, database rows) is a host
// concern; the catalog only needs these two operations.
type Source interface {
	// List returns the identifiers of every available template.
	List() ([]string, error)

	// Instantiate materializes one template by identifier. Each call
	// returns a fresh instance.
	Instantiate(id string) (*Instance, error)
}
