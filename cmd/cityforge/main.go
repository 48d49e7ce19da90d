// Command cityforge grows a demo city: it lays out a connector-tower
// network, seeds a growth session from the tower faces, runs the session
// cooperatively, and persists the resulting placements.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"

	"github.com/talgya/cityforge/internal/growth"
	"github.com/talgya/cityforge/internal/layout"
	"github.com/talgya/cityforge/internal/piece"
	"github.com/talgya/cityforge/internal/store"
)

type fileConfig struct {
	DBPath string        `toml:"db_path"`
	Growth growth.Config `toml:"growth"`
	Layout layout.Config `toml:"layout"`
}

func loadConfig(path string) fileConfig {
	cfg := fileConfig{
		DBPath: "data/cityforge.db",
		Growth: growth.DefaultConfig(),
		Layout: layout.DefaultConfig(),
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Info("no config file, using defaults", "path", path)
		} else {
			slog.Warn("config file unreadable, using defaults", "path", path, "error", err)
		}
	}
	return cfg
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	configPath := flag.String("config", "cityforge.toml", "path to TOML configuration")
	seed := flag.Int64("seed", 42, "world seed")
	flag.Parse()

	cfg := loadConfig(*configPath)
	cfg.Layout.Seed = *seed

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll("data", 0755)
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// Bootstrap the template tables with the built-in set when empty.
	source := db.TemplateSource()
	if ids, err := source.List(); err == nil && len(ids) == 0 {
		if err := db.SaveTemplates(defaultTemplates()); err != nil {
			slog.Error("failed to seed template tables", "error", err)
			os.Exit(1)
		}
		slog.Info("template tables seeded", "templates", len(defaultTemplates()))
	}

	catalog := piece.LoadCatalog(source)

	// ── Layout ────────────────────────────────────────────────────────
	l := layout.Generate(cfg.Layout)
	slog.Info("connector network laid out",
		"towers", len(l.Towers),
		"seeds", len(l.Seeds),
		"biome_bands", l.BiomeCount(cfg.Layout),
	)

	// ── Growth ────────────────────────────────────────────────────────
	rng := rand.New(rand.NewSource(*seed))
	session := growth.NewSession(catalog, cfg.Growth, rng)
	session.SetHooks(&logHooks{})
	session.RegisterExternalAABBs(l.Obstacles)
	for _, s := range l.Seeds {
		session.QueueSeed(s.Position, s.Direction, s.Biome, s.Types, s.Sizes, s.Heading)
	}

	// Cooperative drive: a frame-style loop with a bounded work budget
	// per iteration, so a host update loop would never block on a whole
	// generation.
	start := time.Now()
	for session.Step(32) {
	}
	elapsed := time.Since(start)

	// ── Summary ───────────────────────────────────────────────────────
	stats := session.Statistics()
	occupiable := 0
	for _, p := range session.Placed() {
		if p.Template.Occupants {
			occupiable++
		}
	}

	fmt.Printf("\nGrew %s blocks from %s seeds in %s.\n",
		humanize.Comma(int64(stats.BlocksPlaced)),
		humanize.Comma(int64(stats.SeedsReceived)),
		elapsed.Round(time.Millisecond),
	)
	fmt.Printf("Seeds succeeded: %d, failed: %d, discarded: %d. Occupiable pieces: %d.\n",
		stats.SeedsSucceeded, stats.SeedsFailedTotal(), stats.SeedsDiscarded, occupiable)
	for depth := 0; depth <= cfg.Growth.MaxGrowthDepth; depth++ {
		if n, ok := stats.DepthCounts[depth]; ok {
			fmt.Printf("  depth %d: %s blocks\n", depth, humanize.Comma(int64(n)))
		}
	}
	for reason, n := range stats.Rejects {
		fmt.Printf("  rejects %s: %d\n", growth.RejectReasonName(reason), n)
	}

	// ── Persist ───────────────────────────────────────────────────────
	if err := db.SavePlacements(session.Placed()); err != nil {
		slog.Error("failed to save placements", "error", err)
		os.Exit(1)
	}
	if err := db.SaveStats(stats); err != nil {
		slog.Error("failed to save statistics", "error", err)
		os.Exit(1)
	}
	slog.Info("session persisted", "placements", stats.BlocksPlaced)
}

// logHooks drives the would-be loading screen: structured progress logs.
type logHooks struct {
	candidates int
}

func (h *logHooks) GenerationStarted(seedCount int) {
	slog.Info("generation started", "seed_candidates", seedCount)
}

func (h *logHooks) CandidateProcessed(index int, templateID string) {
	h.candidates++
	if h.candidates%250 == 0 {
		slog.Info("generation progress", "candidates", h.candidates, "last_template", templateID)
	}
}

func (h *logHooks) PiecePlaced(inst *growth.PlacedInstance) {
	// A render/LOD subsystem would ingest the instance here.
}

func (h *logHooks) GenerationComplete(stats growth.Stats) {
	slog.Info("generation complete",
		"blocks", stats.BlocksPlaced,
		"rotation_retries", stats.RotationRetries,
	)
}
