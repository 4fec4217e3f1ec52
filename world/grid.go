// Package world provides the placement grid: terrain tiles, resource
// deposit markers and the coordinate-keyed structure registry the engine
// iterates over.
package world

import (
	"fmt"
	"sort"

	"github.com/pthm-cable/outpost/components"
	"github.com/pthm-cable/outpost/structures"
)

// Position is a grid coordinate.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Tile is the terrain kind of one grid cell.
type Tile uint8

const (
	TileWater Tile = iota
	TileSand
	TileDirt
	TileGrass
	TileRock
)

var tileNames = [...]string{
	TileWater: "Water",
	TileSand:  "Sand",
	TileDirt:  "Dirt",
	TileGrass: "Grass",
	TileRock:  "Rock",
}

func (t Tile) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return fmt.Sprintf("Tile(%d)", uint8(t))
}

// Buildable reports whether structures may be placed on this terrain.
func (t Tile) Buildable() bool {
	return t != TileWater && t != TileRock
}

// Deposit marks a raw resource occurrence at a coordinate. A deposit and a
// structure can share a cell; they are independently owned.
type Deposit struct {
	Resource components.Resource
}

// cell holds what occupies one coordinate.
type cell struct {
	structure structures.Structure
	deposit   *Deposit
}

// Placement is one placed structure and its coordinate.
type Placement struct {
	Pos       Position
	Structure structures.Structure
}

// Grid is the placement registry. A coordinate holds at most one structure
// and at most one deposit.
type Grid struct {
	width  int
	height int
	tiles  [][]Tile // [y][x]
	cells  map[Position]*cell
}

// NewGrid creates a grid over the given terrain. tiles must be row-major
// with height rows of width tiles.
func NewGrid(width, height int, tiles [][]Tile) *Grid {
	return &Grid{
		width:  width,
		height: height,
		tiles:  tiles,
		cells:  make(map[Position]*cell),
	}
}

// NewFlatGrid creates a grid of uniform terrain, used by tests and tools.
func NewFlatGrid(width, height int, t Tile) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		row := make([]Tile, width)
		for x := range row {
			row[x] = t
		}
		tiles[y] = row
	}
	return NewGrid(width, height, tiles)
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether a position lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Tile returns the terrain at a position.
func (g *Grid) Tile(p Position) Tile {
	return g.tiles[p.Y][p.X]
}

// Structure returns the structure at a position, or nil.
func (g *Grid) Structure(p Position) structures.Structure {
	if c, ok := g.cells[p]; ok {
		return c.structure
	}
	return nil
}

// Deposit returns the deposit at a position, or nil.
func (g *Grid) Deposit(p Position) *Deposit {
	if c, ok := g.cells[p]; ok {
		return c.deposit
	}
	return nil
}

// SetDeposit places a deposit marker, replacing any existing one.
func (g *Grid) SetDeposit(p Position, r components.Resource) {
	g.cellAt(p).deposit = &Deposit{Resource: r}
}

// Place puts a structure at a position. The cell must be in bounds and not
// already hold a structure; terrain rules are the caller's concern.
func (g *Grid) Place(p Position, s structures.Structure) error {
	if !g.InBounds(p) {
		return fmt.Errorf("position %s out of bounds", p)
	}
	c := g.cellAt(p)
	if c.structure != nil {
		return fmt.Errorf("position %s already occupied by %s", p, c.structure.Group())
	}
	c.structure = s
	return nil
}

// Remove deletes the structure at a position and returns it, or nil.
func (g *Grid) Remove(p Position) structures.Structure {
	c, ok := g.cells[p]
	if !ok || c.structure == nil {
		return nil
	}
	s := c.structure
	c.structure = nil
	if c.deposit == nil {
		delete(g.cells, p)
	}
	return s
}

// Placements returns every placed structure in row-major coordinate order
// (y, then x). The tick passes rely on this order being deterministic:
// whichever structure sorts first wins same-tick competition for stock.
func (g *Grid) Placements() []Placement {
	out := make([]Placement, 0, len(g.cells))
	for p, c := range g.cells {
		if c.structure != nil {
			out = append(out, Placement{Pos: p, Structure: c.structure})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pos.Y != out[j].Pos.Y {
			return out[i].Pos.Y < out[j].Pos.Y
		}
		return out[i].Pos.X < out[j].Pos.X
	})
	return out
}

// Count returns the number of placed structures.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c.structure != nil {
			n++
		}
	}
	return n
}

func (g *Grid) cellAt(p Position) *cell {
	c, ok := g.cells[p]
	if !ok {
		c = &cell{}
		g.cells[p] = c
	}
	return c
}
