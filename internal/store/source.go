package store

import (
	"fmt"

	"github.com/talgya/cityforge/internal/geom"
	"github.com/talgya/cityforge/internal/piece"
)

// SQLSource serves piece templates from the database tables, implementing
// piece.Source. Each Instantiate reads fresh rows, so a template deleted
// mid-session surfaces as an instantiation failure rather than stale data.
type SQLSource struct {
	db *DB
}

// TemplateSource returns a piece.Source over this database.
func (db *DB) TemplateSource() *SQLSource {
	return &SQLSource{db: db}
}

// List returns every stored template identifier.
func (s *SQLSource) List() ([]string, error) {
	var ids []string
	if err := s.db.conn.Select(&ids, "SELECT id FROM templates ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return ids, nil
}

type templateRow struct {
	ID        string  `db:"id"`
	Category  uint8   `db:"category"`
	Weight    float64 `db:"weight"`
	BiomeMin  int     `db:"biome_min"`
	BiomeMax  int     `db:"biome_max"`
	Occupants bool    `db:"occupants"`
}

type attachmentRow struct {
	TemplateID  string  `db:"template_id"`
	Ord         int     `db:"ord"`
	PX          float64 `db:"px"`
	PY          float64 `db:"py"`
	PZ          float64 `db:"pz"`
	DX          float64 `db:"dx"`
	DY          float64 `db:"dy"`
	DZ          float64 `db:"dz"`
	Types       uint8   `db:"types"`
	Sizes       uint8   `db:"sizes"`
	Plug        bool    `db:"plug"`
	Socket      bool    `db:"socket"`
	Rotation    uint8   `db:"rotation"`
	SkipOverlap bool    `db:"skip_overlap"`
}

type partRow struct {
	TemplateID string  `db:"template_id"`
	Ord        int     `db:"ord"`
	MinX       float64 `db:"min_x"`
	MinY       float64 `db:"min_y"`
	MinZ       float64 `db:"min_z"`
	MaxX       float64 `db:"max_x"`
	MaxY       float64 `db:"max_y"`
	MaxZ       float64 `db:"max_z"`
}

// Instantiate materializes one template from its rows.
func (s *SQLSource) Instantiate(id string) (*piece.Instance, error) {
	var tr templateRow
	if err := s.db.conn.Get(&tr, "SELECT * FROM templates WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("template %q: %w", id, err)
	}

	var ars []attachmentRow
	if err := s.db.conn.Select(&ars, "SELECT * FROM attachments WHERE template_id = ? ORDER BY ord", id); err != nil {
		return nil, fmt.Errorf("attachments for %q: %w", id, err)
	}

	var prs []partRow
	if err := s.db.conn.Select(&prs, "SELECT * FROM parts WHERE template_id = ? ORDER BY ord", id); err != nil {
		return nil, fmt.Errorf("parts for %q: %w", id, err)
	}

	inst := &piece.Instance{
		ID:        tr.ID,
		Category:  piece.Category(tr.Category),
		Weight:    tr.Weight,
		BiomeMin:  tr.BiomeMin,
		BiomeMax:  tr.BiomeMax,
		Occupants: tr.Occupants,
	}
	for _, a := range ars {
		inst.Attachments = append(inst.Attachments, piece.AttachmentPoint{
			Position:    geom.Vec3{X: a.PX, Y: a.PY, Z: a.PZ},
			Direction:   geom.Vec3{X: a.DX, Y: a.DY, Z: a.DZ},
			Types:       piece.TypeFlags(a.Types),
			Sizes:       piece.SizeFlags(a.Sizes),
			Plug:        a.Plug,
			Socket:      a.Socket,
			Rotation:    piece.RotationMode(a.Rotation),
			SkipOverlap: a.SkipOverlap,
		})
	}
	for _, p := range prs {
		inst.Parts = append(inst.Parts, geom.AABB{
			Min: geom.Vec3{X: p.MinX, Y: p.MinY, Z: p.MinZ},
			Max: geom.Vec3{X: p.MaxX, Y: p.MaxY, Z: p.MaxZ},
		})
	}
	return inst, nil
}

// SaveTemplates writes piece definitions into the template tables (full
// replace), typically to bootstrap a database from an in-memory set.
func (db *DB) SaveTemplates(defs []piece.Instance) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"templates", "attachments", "parts"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	for _, d := range defs {
		_, err := tx.Exec(`INSERT INTO templates
			(id, category, weight, biome_min, biome_max, occupants)
			VALUES (?, ?, ?, ?, ?, ?)`,
			d.ID, uint8(d.Category), d.Weight, d.BiomeMin, d.BiomeMax, d.Occupants,
		)
		if err != nil {
			return fmt.Errorf("insert template %q: %w", d.ID, err)
		}

		for i, a := range d.Attachments {
			_, err := tx.Exec(`INSERT INTO attachments
				(template_id, ord, px, py, pz, dx, dy, dz,
				 types, sizes, plug, socket, rotation, skip_overlap)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				d.ID, i,
				a.Position.X, a.Position.Y, a.Position.Z,
				a.Direction.X, a.Direction.Y, a.Direction.Z,
				uint8(a.Types), uint8(a.Sizes), a.Plug, a.Socket,
				uint8(a.Rotation), a.SkipOverlap,
			)
			if err != nil {
				return fmt.Errorf("insert attachment %d of %q: %w", i, d.ID, err)
			}
		}

		for i, p := range d.Parts {
			_, err := tx.Exec(`INSERT INTO parts
				(template_id, ord, min_x, min_y, min_z, max_x, max_y, max_z)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				d.ID, i,
				p.Min.X, p.Min.Y, p.Min.Z,
				p.Max.X, p.Max.Y, p.Max.Z,
			)
			if err != nil {
				return fmt.Errorf("insert part %d of %q: %w", i, d.ID, err)
			}
		}
	}

	return tx.Commit()
}
