package voronoi

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// Bounding Box
type BoundingBox struct {
	Xl, Xr, Yt, Yb float64
}

// Create new Bounding Box
func NewBoundingBox(xl, xr, yt, yb float64) BoundingBox {
	return BoundingBox{xl, xr, yt, yb}
}

// boundingBoxOf - минимальный прямоугольник вокруг точек.
func boundingBoxOf(points []Vertex) BoundingBox {
	bbox := BoundingBox{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	for _, p := range points {
		bbox.Xl = math.Min(bbox.Xl, p.X)
		bbox.Xr = math.Max(bbox.Xr, p.X)
		bbox.Yt = math.Min(bbox.Yt, p.Y)
		bbox.Yb = math.Max(bbox.Yb, p.Y)
	}
	return bbox
}

// expand расширяет рамку на 20% размера плюс единица с каждой стороны.
func (b BoundingBox) expand() BoundingBox {
	dx := (b.Xr-b.Xl)/5 + 1
	dy := (b.Yb-b.Yt)/5 + 1
	return BoundingBox{b.Xl - dx, b.Xr + dx, b.Yt - dy, b.Yb + dy}
}

func (b BoundingBox) union(o BoundingBox) BoundingBox {
	return BoundingBox{
		math.Min(b.Xl, o.Xl), math.Max(b.Xr, o.Xr),
		math.Min(b.Yt, o.Yt), math.Max(b.Yb, o.Yb),
	}
}

// Vertices returns the box corners counter-clockwise starting at (Xl, Yt).
func (b BoundingBox) Vertices() []Vertex {
	return []Vertex{{b.Xl, b.Yt}, {b.Xr, b.Yt}, {b.Xr, b.Yb}, {b.Xl, b.Yb}}
}

// Polygon is a simple, not necessarily convex, clipping polygon.
type Polygon struct {
	vertices []Vertex
	edges    []polygonEdge
	bbox     BoundingBox
	tol      float64
}

// NewPolygon validates the vertex ring and precomputes its edges.
func NewPolygon(vs []Vertex) (*Polygon, error) {
	if err := validatePolygon(vs); err != nil {
		return nil, err
	}
	return newPolygon(vs), nil
}

func newPolygon(vs []Vertex) *Polygon {
	p := &Polygon{
		vertices: append([]Vertex(nil), vs...),
		bbox:     boundingBoxOf(vs),
	}
	for i := range p.vertices {
		p.edges = append(p.edges, polygonEdge{p.vertices[i], p.vertices[(i+1)%len(p.vertices)]})
	}
	extent := math.Max(p.bbox.Xr-p.bbox.Xl, p.bbox.Yb-p.bbox.Yt)
	p.tol = epsilon * math.Max(1, extent)
	return p
}

func validatePolygon(vs []Vertex) error {
	if len(vs) < 3 {
		return fmt.Errorf("%w: %d vertices, need at least 3", ErrDegeneratePolygon, len(vs))
	}

	var err error
	for i, v := range vs {
		if !v.finite() {
			err = multierr.Append(err, fmt.Errorf("%w: vertex %d is %v", ErrDegeneratePolygon, i, v))
		}
	}
	if err != nil {
		return err
	}

	if math.Abs(signedArea(vs)) < epsilon {
		return fmt.Errorf("%w: zero area", ErrDegeneratePolygon)
	}
	return nil
}

// signedArea - формула площади Гаусса.
func signedArea(vs []Vertex) float64 {
	var area float64
	for i := range vs {
		a, b := vs[i], vs[(i+1)%len(vs)]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

func (p *Polygon) Vertices() []Vertex { return append([]Vertex(nil), p.vertices...) }

func (p *Polygon) Bounds() BoundingBox { return p.bbox }

// Contains reports whether v is inside the polygon or on its boundary.
func (p *Polygon) Contains(v Vertex) bool {
	return p.onBoundary(v) || pointInPolygon(v, p.edges)
}

func (p *Polygon) onBoundary(v Vertex) bool {
	for _, e := range p.edges {
		if distToSegment(v, e.a, e.b) <= p.tol {
			return true
		}
	}
	return false
}
