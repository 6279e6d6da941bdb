package voronoi

import (
	"math"
	"sort"
)

// Cell collects the clipped edges bordering one site.
type Cell struct {
	Site  Vertex
	Edges []*Edge
	// углы направлений на соседние точки, в том же порядке, что и Edges
	angles []float64
}

func newCell(site Vertex) *Cell {
	return &Cell{Site: site}
}

func (c *Cell) add(edge *Edge, other Vertex) {
	c.Edges = append(c.Edges, edge)
	c.angles = append(c.angles, math.Atan2(other.Y-c.Site.Y, other.X-c.Site.X))
}

// Neighbors returns the sites across each edge, in edge order.
func (c *Cell) Neighbors() []Vertex {
	out := make([]Vertex, len(c.Edges))
	for i, e := range c.Edges {
		out[i] = e.Right
		if e.Right == c.Site {
			out[i] = e.Left
		}
	}
	return out
}

type cellEdges struct {
	edges  []*Edge
	angles []float64
}

func (s cellEdges) Len() int { return len(s.edges) }
func (s cellEdges) Swap(i, j int) {
	s.edges[i], s.edges[j] = s.edges[j], s.edges[i]
	s.angles[i], s.angles[j] = s.angles[j], s.angles[i]
}

type cellEdgesByAngle struct{ cellEdges }

func (s cellEdgesByAngle) Less(i, j int) bool { return s.angles[i] > s.angles[j] }

// prepare сортирует ребра по убыванию угла вокруг точки.
func (c *Cell) prepare() {
	sort.Stable(cellEdgesByAngle{cellEdges{c.Edges, c.angles}})
}

// gatherCells раскладывает ребра по ячейкам обеих точек.
func gatherCells(sites []Vertex, edges []*Edge) []*Cell {
	cellsMap := make(map[Vertex]*Cell, len(sites))
	cells := make([]*Cell, 0, len(sites))
	for _, site := range sites {
		c := newCell(site)
		cellsMap[site] = c
		cells = append(cells, c)
	}

	for _, e := range edges {
		if c := cellsMap[e.Left]; c != nil {
			c.add(e, e.Right)
		}
		if c := cellsMap[e.Right]; c != nil {
			c.add(e, e.Left)
		}
	}

	for _, c := range cells {
		c.prepare()
	}
	return cells
}
