package world

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/outpost/components"
	"github.com/pthm-cable/outpost/config"
)

// Generate creates terrain and deposit markers for a new colony map. The
// engine never consults terrain again after placement; this is setup only.
func Generate(cfg *config.Config, seed int64) *Grid {
	width := cfg.World.Width
	height := cfg.World.Height

	elevNoise := opensimplex.NewNormalized(seed)

	tiles := make([][]Tile, height)
	for y := 0; y < height; y++ {
		row := make([]Tile, width)
		for x := 0; x < width; x++ {
			elev := octaveNoise(elevNoise, float64(x), float64(y), 4, 0.05, 0.5)
			row[x] = deriveTile(elev)
		}
		tiles[y] = row
	}

	g := NewGrid(width, height, tiles)
	generateDeposits(g, cfg, seed)
	return g
}

// deriveTile maps normalized elevation to terrain.
func deriveTile(elev float64) Tile {
	switch {
	case elev < 0.30:
		return TileWater
	case elev < 0.40:
		return TileSand
	case elev < 0.55:
		return TileGrass
	case elev < 0.80:
		return TileDirt
	default:
		return TileRock
	}
}

// generateDeposits scatters resource deposits using one noise layer per
// resource kind. Water deposits favor wet terrain; everything else lands on
// buildable ground. Earlier roster kinds win contested cells.
func generateDeposits(g *Grid, cfg *config.Config, seed int64) {
	dc := cfg.Deposits

	for i, resource := range components.AllResources() {
		noise := opensimplex.NewNormalized(seed + int64(i) + 1)

		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				p := Position{X: x, Y: y}
				if g.Deposit(p) != nil {
					continue
				}

				tile := g.Tile(p)
				if resource == components.Water {
					if tile != TileSand {
						continue
					}
				} else if !tile.Buildable() {
					continue
				}

				v := octaveNoise(noise, float64(x), float64(y), dc.Octaves, dc.Frequency, dc.Persistence)
				if v > dc.Threshold {
					g.SetDeposit(p, resource)
				}
			}
		}
	}
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
