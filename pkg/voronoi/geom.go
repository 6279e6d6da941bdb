package voronoi

import (
	"math"
)

// допуск для сравнений с плавающей точкой
const epsilon = 1e-9

type Vertex struct {
	X float64
	Y float64
}

var NO_VERTEX = Vertex{math.Inf(1), math.Inf(1)}

func (v Vertex) sub(o Vertex) Vertex { return Vertex{v.X - o.X, v.Y - o.Y} }

func (v Vertex) dist(o Vertex) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

func (v Vertex) finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// порядок заметания: сначала X, затем Y
func sweepLess(a, b Vertex) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

type vertices []Vertex

func (s vertices) Len() int      { return len(s) }
func (s vertices) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

type verticesBySweep struct{ vertices }

func (s verticesBySweep) Less(i, j int) bool { return sweepLess(s.vertices[i], s.vertices[j]) }

// Edge is a Voronoi edge between the cells of Left and Right.
// Left is the site of the lower arc on the beachline when the edge was created.
type Edge struct {
	Left     Vertex
	Right    Vertex
	Start    Vertex
	End      Vertex
	Finished bool
}

func newEdge(start, left, right Vertex) *Edge {
	return &Edge{
		Left:  left,
		Right: right,
		Start: start,
		End:   NO_VERTEX,
	}
}

// finish закрывает ребро. Конец ставится ровно один раз.
func (e *Edge) finish(end Vertex) bool {
	if e.Finished {
		return false
	}
	e.End = end
	e.Finished = true
	return true
}

func (e *Edge) length() float64 {
	return e.Start.dist(e.End)
}

// parabolaX возвращает X точки параболы с фокусом focus и директрисой x = l на высоте y.
func parabolaX(focus Vertex, y, l float64) float64 {
	if focus.X == l {
		// вырожденная парабола - горизонтальный луч
		return math.Inf(-1)
	}
	dy := focus.Y - y
	return (focus.X*focus.X + dy*dy - l*l) / (2*focus.X - 2*l)
}

// breakpointY - Y точки пересечения парабол p0 (нижняя дуга) и p1 (верхняя дуга)
// при положении линии заметания l.
func breakpointY(p0, p1 Vertex, l float64) float64 {
	switch {
	case p0.X == p1.X:
		return (p0.Y + p1.Y) / 2
	case p1.X == l:
		return p1.Y
	case p0.X == l:
		return p0.Y
	}

	// расстояние до фокуса = расстояние до директрисы, приравниваем две параболы
	z0 := 2 * (p0.X - l)
	z1 := 2 * (p1.X - l)

	a := 1/z0 - 1/z1
	b := -2 * (p0.Y/z0 - p1.Y/z1)
	c := (p0.Y*p0.Y+p0.X*p0.X-l*l)/z0 - (p1.Y*p1.Y+p1.X*p1.X-l*l)/z1

	d := b*b - 4*a*c
	if d < 0 {
		d = 0
	}
	return (-b - math.Sqrt(d)) / (2 * a)
}

// breakpoint - точка пересечения двух парабол целиком.
func breakpoint(p0, p1 Vertex, l float64) Vertex {
	y := breakpointY(p0, p1, l)
	focus := p0
	if p0.X == l && p1.X != l {
		focus = p1
	}
	return Vertex{parabolaX(focus, y, l), y}
}

// circumcenter returns the center of the circle through a, b and c and the x of its
// rightmost point. ok is false for collinear points and for a left turn a→b→c, when
// the arc of b never shrinks to zero ahead of the sweep.
func circumcenter(a, b, c Vertex) (center Vertex, x float64, ok bool) {
	if (b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y) > 0 {
		return Vertex{}, 0, false
	}

	A := b.X - a.X
	B := b.Y - a.Y
	C := c.X - a.X
	D := c.Y - a.Y
	E := A*(a.X+b.X) + B*(a.Y+b.Y)
	F := C*(a.X+c.X) + D*(a.Y+c.Y)
	G := 2 * (A*(c.Y-b.Y) - B*(c.X-b.X))

	// точки на одной прямой
	if G == 0 {
		return Vertex{}, 0, false
	}

	center = Vertex{(D*E - B*F) / G, (A*F - C*E) / G}
	x = center.X + center.dist(a)
	return center, x, true
}

// segmentIntersect пересекает отрезки p1p2 и p3p4 параметрически.
func segmentIntersect(p1, p2, p3, p4 Vertex) (Vertex, bool) {
	d1 := p2.sub(p1)
	d2 := p4.sub(p3)

	den := d1.X*d2.Y - d1.Y*d2.X
	if den == 0 {
		return Vertex{}, false
	}

	w := p3.sub(p1)
	t := (w.X*d2.Y - w.Y*d2.X) / den
	u := (w.X*d1.Y - w.Y*d1.X) / den
	if t < -epsilon || t > 1+epsilon || u < -epsilon || u > 1+epsilon {
		return Vertex{}, false
	}

	return Vertex{p1.X + t*d1.X, p1.Y + t*d1.Y}, true
}

type polygonEdge struct {
	a, b Vertex
}

// pointInPolygon - луч из точки вправо за пределы многоугольника,
// нечетное число пересечений - точка внутри.
func pointInPolygon(p Vertex, edges []polygonEdge) bool {
	inside := false
	for _, e := range edges {
		if (e.a.Y > p.Y) == (e.b.Y > p.Y) {
			continue
		}
		crossX := e.a.X + (p.Y-e.a.Y)*(e.b.X-e.a.X)/(e.b.Y-e.a.Y)
		if p.X < crossX {
			inside = !inside
		}
	}
	return inside
}

// distToSegment - расстояние от точки до отрезка ab.
func distToSegment(p, a, b Vertex) float64 {
	d := b.sub(a)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return p.dist(a)
	}
	t := ((p.X-a.X)*d.X + (p.Y-a.Y)*d.Y) / l2
	t = math.Max(0, math.Min(1, t))
	return p.dist(Vertex{a.X + t*d.X, a.Y + t*d.Y})
}
