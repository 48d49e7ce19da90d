package piece

import (
	"fmt"
	"log/slog"
)

// Catalog holds every loadable template, indexed once at load. It keeps
// the source so the growth scheduler can materialize fresh instances at
// placement time.
type Catalog struct {
	source    Source
	templates []*Template
	byID      map[string]*Template
}

// LoadCatalog enumerates the source and caches one immutable Template per
// definition. An unreadable source is a warning, not an error: the
// catalog stays empty and growth sessions place nothing.
func LoadCatalog(src Source) *Catalog {
	c := &Catalog{source: src, byID: make(map[string]*Template)}

	ids, err := src.List()
	if err != nil {
		slog.Warn("piece catalog source unreadable, catalog will be empty", "error", err)
		return c
	}

	for _, id := range ids {
		inst, err := src.Instantiate(id)
		if err != nil {
			slog.Warn("piece template failed to instantiate, skipping", "id", id, "error", err)
			continue
		}
		t := inst.template()
		c.templates = append(c.templates, t)
		c.byID[t.ID] = t
	}

	slog.Info("piece catalog loaded", "templates", len(c.templates))
	return c
}

// Len returns the number of cached templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// ByID returns the cached template with the given identifier, or nil.
func (c *Catalog) ByID(id string) *Template {
	return c.byID[id]
}

// Candidates returns the templates eligible at the given biome index and
// growth depth. Near the depth limit (depth >= maxDepth-1) cap templates
// are preferred so structures terminate cleanly; if the biome has no caps
// the unfiltered biome set is returned instead.
func (c *Catalog) Candidates(biome, depth, maxDepth int) []*Template {
	var eligible []*Template
	for _, t := range c.templates {
		if t.InBiome(biome) {
			eligible = append(eligible, t)
		}
	}

	if depth >= maxDepth-1 {
		var caps []*Template
		for _, t := range eligible {
			if t.Category == CategoryCap {
				caps = append(caps, t)
			}
		}
		if len(caps) > 0 {
			return caps
		}
	}

	return eligible
}

// FilterByRequiredSize narrows templates to those exposing at least one
// plug attachment matching sizes. Templates with no attachments at all
// pass through: they are placed free-standing, so size does not apply.
// An empty result means the candidate is rejected by the caller, not
// that the catalog is broken.
func FilterByRequiredSize(templates []*Template, sizes SizeFlags) []*Template {
	var out []*Template
	for _, t := range templates {
		if len(t.Attachments) == 0 || t.HasPlugOfSize(sizes) {
			out = append(out, t)
		}
	}
	return out
}

// Instantiate materializes a fresh instance of the template via the
// catalog's source.
func (c *Catalog) Instantiate(t *Template) (*Instance, error) {
	if c.source == nil {
		return nil, fmt.Errorf("catalog has no source")
	}
	return c.source.Instantiate(t.ID)
}
