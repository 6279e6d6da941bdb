package voronoi

import (
	"math"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// Основная структура
type Voronoi struct {
	// точки в порядке заметания
	sites []Vertex
	// ребра диаграммы Вороного
	edges edgeList
	// очередь событий точек и кругов
	queue eventQueue
	// пляжная линия
	beachline *beachline
	// область, в которой лежат точки и многоугольник отсечения
	bounds BoundingBox
	// текущее положение линии заметания
	sweepX float64

	stats Stats

	Logger *logger.ZapLogger
}

// Stats counts the events processed by one sweep.
type Stats struct {
	SiteEvents   int
	CircleEvents int
	// события круга, отмененные до срабатывания
	StaleEvents int
}

// Структура диаграммы
type Diagram struct {
	Cells   []*Cell
	Edges   []*Edge
	Polygon *Polygon
	Stats   Stats
}

// Segment is a finished Voronoi edge in plain coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Segments returns the clipped edges as line segments.
func (d *Diagram) Segments() []Segment {
	out := make([]Segment, 0, len(d.Edges))
	for _, e := range d.Edges {
		out = append(out, Segment{e.Start.X, e.Start.Y, e.End.X, e.End.Y})
	}
	return out
}

func newVoronoi(sites []Vertex, bounds BoundingBox, log *logger.ZapLogger) *Voronoi {
	v := &Voronoi{
		sites:  sites,
		bounds: bounds,
		sweepX: math.Inf(-1),
		Logger: log,
	}
	v.beachline = newBeachline(&v.queue, &v.edges, log)
	return v
}

// run - основной цикл: достаем события по порядку, пока очередь не опустеет.
func (v *Voronoi) run() {
	for _, site := range v.sites {
		v.queue.push(newSiteEvent(site))
	}
	v.Logger.Info("[f] События точек добавлены", zap.Int("sites", v.queue.len()))

	for !v.queue.isEmpty() {
		e := v.queue.popMin()
		// линия заметания не двигается назад
		if e.valid {
			v.sweepX = math.Max(v.sweepX, e.x)
		}
		switch {
		case e.kind == siteEvent:
			v.stats.SiteEvents++
			v.Logger.Debug("[f-for-site] Событие точки", zap.Any("site", e.site))
			v.beachline.insertSite(e.site)
		case e.valid:
			v.stats.CircleEvents++
			v.Logger.Debug("[f-for-circle] Событие круга",
				zap.Float64("x", e.x), zap.Any("center", e.center))
			v.beachline.removeArc(e.arc, e.center, v.sweepX)
		default:
			v.stats.StaleEvents++
		}
	}

	v.finishEdges()
}

// farSweep - положение линии заметания, при котором точка излома любой пары
// соседних дуг лежит вне области: расстояние от нее до линии больше диагонали.
// Линия не может оказаться левее уже обработанных событий.
func (v *Voronoi) farSweep() float64 {
	b := v.bounds
	return math.Max(b.Xr+2*((b.Xr-b.Xl)+(b.Yb-b.Yt))+1, v.sweepX+1)
}

// finishEdges продлевает незавершенные ребра далеко за пределы области.
func (v *Voronoi) finishEdges() {
	l := v.farSweep()

	b := v.beachline
	v.Logger.Debug("[f] Итоговая пляжная линия", zap.Any("sites", b.sites()))
	var finished int
	for i := b.head; i != noArc && b.arcs[i].next != noArc; i = b.arcs[i].next {
		arc := b.arcs[i]
		if arc.s1 == noEdge {
			continue
		}
		if v.edges.get(arc.s1).finish(breakpoint(arc.site, b.arcs[arc.next].site, l)) {
			finished++
		}
	}
	v.Logger.Info("[f] Ребра продлены до границы", zap.Int("edges", finished), zap.Float64("sweep", l))
}
