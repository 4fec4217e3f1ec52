package world

import (
	"testing"

	"github.com/pthm-cable/outpost/config"
)

func TestGenerateDimensions(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	g := Generate(cfg, 42)
	if g.Width() != cfg.World.Width || g.Height() != cfg.World.Height {
		t.Errorf("expected %dx%d grid, got %dx%d",
			cfg.World.Width, cfg.World.Height, g.Width(), g.Height())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	a := Generate(cfg, 7)
	b := Generate(cfg, 7)

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			p := Position{X: x, Y: y}
			if a.Tile(p) != b.Tile(p) {
				t.Fatalf("tile mismatch at %s: %s vs %s", p, a.Tile(p), b.Tile(p))
			}
			da, db := a.Deposit(p), b.Deposit(p)
			if (da == nil) != (db == nil) {
				t.Fatalf("deposit presence mismatch at %s", p)
			}
			if da != nil && da.Resource != db.Resource {
				t.Fatalf("deposit kind mismatch at %s", p)
			}
		}
	}
}

func TestGenerateDepositsOnBuildableGround(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	g := Generate(cfg, 99)
	found := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := Position{X: x, Y: y}
			d := g.Deposit(p)
			if d == nil {
				continue
			}
			found++
			if !g.Tile(p).Buildable() {
				t.Errorf("deposit at %s on unbuildable %s", p, g.Tile(p))
			}
		}
	}
	if found == 0 {
		t.Error("expected at least one deposit on the default map")
	}
}
