package voronoi

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func finishedEdge(a, b Vertex) *Edge {
	e := newEdge(a, Vertex{}, Vertex{})
	e.finish(b)
	return e
}

func TestClip(t *testing.T) {
	square := newPolygon([]Vertex{{0, 0}, {10, 0}, {10, 10}, {0, 10}})

	open := newEdge(Vertex{1, 1}, Vertex{}, Vertex{})
	edges := []*Edge{
		finishedEdge(Vertex{1, 1}, Vertex{2, 2}),
		finishedEdge(Vertex{20, 20}, Vertex{30, 30}),
		finishedEdge(Vertex{5, 5}, Vertex{15, 5}),
		finishedEdge(Vertex{15, 5}, Vertex{5, 5}),
		finishedEdge(Vertex{-5, 5}, Vertex{15, 5}),
		finishedEdge(Vertex{10, 3}, Vertex{10, 3}),
		open,
	}
	got := Clip(edges, square)

	var segs []Segment
	for _, e := range got {
		segs = append(segs, Segment{e.Start.X, e.Start.Y, e.End.X, e.End.Y})
	}
	diff(t, []Segment{
		{1, 1, 2, 2},
		{5, 5, 10, 5},
		{10, 5, 5, 5},
	}, segs, approx)

	// входные ребра не меняются
	diff(t, Vertex{15, 5}, edges[2].End)
}

func TestClipNonConvexNearestCrossing(t *testing.T) {
	u := newPolygon(uShape)

	// изнутри левого зубца наружу через вырез и правый зубец
	got := Clip([]*Edge{finishedEdge(Vertex{5, 20}, Vertex{50, 20})}, u)
	if len(got) != 1 {
		t.Fatalf("edges = %d, want 1", len(got))
	}
	diff(t, Vertex{10, 20}, got[0].End, approx)

	// обратное направление дает ту же точку
	got = Clip([]*Edge{finishedEdge(Vertex{50, 20}, Vertex{5, 20})}, u)
	diff(t, Vertex{10, 20}, got[0].Start, approx)
}

func TestClipIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	star := make([]Vertex, 10)
	for i := range star {
		r := 40.0
		if i%2 == 1 {
			r = 20
		}
		a := math.Pi/5*float64(i) - math.Pi/2
		star[i] = Vertex{50 + r*math.Cos(a), 50 + r*math.Sin(a)}
	}

	d, err := CreateDiagram(randomSites(rng, 80, 100), Config{Polygon: star})
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range d.Edges {
		if !d.Polygon.Contains(e.Start) || !d.Polygon.Contains(e.End) {
			t.Fatalf("edge %+v leaves the star", e)
		}
	}

	again := Clip(d.Edges, d.Polygon)
	diff(t, d.Edges, again, approx)
}

func TestNewPolygon(t *testing.T) {
	p, err := NewPolygon(uShape)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, BoundingBox{0, 30, 0, 30}, p.Bounds())
	diff(t, uShape, p.Vertices())
	if !p.Contains(Vertex{10, 20}) || !p.Contains(Vertex{0, 0}) {
		t.Error("boundary points must be contained")
	}
	if p.Contains(Vertex{15, 20}) {
		t.Error("notch must not be contained")
	}

	for _, bad := range [][]Vertex{
		nil,
		{{0, 0}, {1, 1}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 0}, {1, math.NaN()}, {2, 0}},
	} {
		if _, err := NewPolygon(bad); !errors.Is(err, ErrDegeneratePolygon) {
			t.Errorf("NewPolygon(%v) err = %v", bad, err)
		}
	}
}

func TestBoundingBoxVertices(t *testing.T) {
	b := NewBoundingBox(0, 4, 1, 3)
	diff(t, []Vertex{{0, 1}, {4, 1}, {4, 3}, {0, 3}}, b.Vertices())
	diff(t, BoundingBox{-1.8, 5.8, -0.4, 4.4}, b.expand(), approx)
}
