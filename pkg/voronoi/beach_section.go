package voronoi

import (
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
)

type arcID int

const noArc arcID = -1

type edgeID int

const noEdge edgeID = -1

// BeachSection - дуга пляжной линии. Соседи и ребра хранятся индексами,
// все дуги принадлежат beachline.
type BeachSection struct {
	site       Vertex
	prev, next arcID
	// левое (нижнее) и правое (верхнее) ограничивающие ребра
	s0, s1      edgeID
	circleEvent *event
	removed     bool
}

// edgeList - все ребра диаграммы в порядке создания.
type edgeList struct {
	edges []*Edge
}

func (l *edgeList) create(start, left, right Vertex) edgeID {
	l.edges = append(l.edges, newEdge(start, left, right))
	return edgeID(len(l.edges) - 1)
}

func (l *edgeList) get(id edgeID) *Edge { return l.edges[id] }

// beachline - упорядоченная снизу вверх последовательность дуг.
// "Левая" дуга - нижняя, "правая" - верхняя.
type beachline struct {
	arcs   []BeachSection
	head   arcID
	queue  *eventQueue
	edges  *edgeList
	Logger *logger.ZapLogger
}

func newBeachline(queue *eventQueue, edges *edgeList, log *logger.ZapLogger) *beachline {
	return &beachline{head: noArc, queue: queue, edges: edges, Logger: log}
}

func (b *beachline) newArc(site Vertex, prev, next arcID) arcID {
	b.arcs = append(b.arcs, BeachSection{
		site: site,
		prev: prev,
		next: next,
		s0:   noEdge,
		s1:   noEdge,
	})
	return arcID(len(b.arcs) - 1)
}

// pierce проверяет, пересекает ли вертикаль новой точки дугу i.
// Возвращает точку на параболе дуги.
func (b *beachline) pierce(p Vertex, i arcID) (Vertex, bool) {
	arc := &b.arcs[i]
	if arc.site.X == p.X {
		return Vertex{}, false
	}
	if arc.prev != noArc && breakpointY(b.arcs[arc.prev].site, arc.site, p.X) > p.Y {
		return Vertex{}, false
	}
	if arc.next != noArc && p.Y > breakpointY(arc.site, b.arcs[arc.next].site, p.X) {
		return Vertex{}, false
	}
	return Vertex{parabolaX(arc.site, p.Y, p.X), p.Y}, true
}

// insertSite добавляет дугу новой точки.
func (b *beachline) insertSite(p Vertex) {
	if b.head == noArc {
		b.head = b.newArc(p, noArc, noArc)
		b.Logger.Debug("[f-site] Первая дуга", zap.Any("site", p))
		return
	}

	for i := b.head; i != noArc; i = b.arcs[i].next {
		z, ok := b.pierce(p, i)
		if !ok {
			continue
		}

		// делим дугу i на две копии, новая дуга между ними
		split := b.arcs[i].site
		next := b.arcs[i].next
		dup := b.newArc(split, noArc, next)
		if next != noArc {
			b.arcs[next].prev = dup
		}
		b.arcs[dup].s1 = b.arcs[i].s1

		n := b.newArc(p, i, dup)
		b.arcs[dup].prev = n
		b.arcs[i].next = n

		lower := b.edges.create(z, split, p)
		upper := b.edges.create(z, p, split)
		b.arcs[i].s1 = lower
		b.arcs[n].s0 = lower
		b.arcs[n].s1 = upper
		b.arcs[dup].s0 = upper

		b.Logger.Debug("[f-site] Дуга разделена",
			zap.Any("site", p), zap.Any("arc-site", split), zap.Any("point", z))

		b.checkCircleEvent(n, p.X)
		b.checkCircleEvent(i, p.X)
		b.checkCircleEvent(dup, p.X)
		return
	}

	// Ни одна дуга не пересечена: все дуги лежат на той же вертикали,
	// новая точка становится верхней дугой.
	last := b.head
	for b.arcs[last].next != noArc {
		last = b.arcs[last].next
	}
	n := b.newArc(p, last, noArc)
	b.arcs[last].next = n

	lastSite := b.arcs[last].site
	start := Vertex{p.X, (p.Y + lastSite.Y) / 2}
	e := b.edges.create(start, lastSite, p)
	b.arcs[last].s1 = e
	b.arcs[n].s0 = e

	b.Logger.Debug("[f-site] Дуга добавлена сверху", zap.Any("site", p), zap.Any("start", start))
}

// removeArc удаляет исчезающую дугу в вершине at и начинает новое ребро
// между ее соседями.
func (b *beachline) removeArc(i arcID, at Vertex, sweepX float64) {
	arc := b.arcs[i]
	prev, next := arc.prev, arc.next

	e := b.edges.create(at, b.arcs[prev].site, b.arcs[next].site)
	b.arcs[prev].next = next
	b.arcs[prev].s1 = e
	b.arcs[next].prev = prev
	b.arcs[next].s0 = e

	if arc.s0 != noEdge {
		b.edges.get(arc.s0).finish(at)
	}
	if arc.s1 != noEdge {
		b.edges.get(arc.s1).finish(at)
	}

	b.arcs[i] = BeachSection{site: arc.site, prev: noArc, next: noArc, s0: noEdge, s1: noEdge, removed: true}

	b.Logger.Debug("[f-circle] Дуга удалена", zap.Any("arc-site", arc.site), zap.Any("vertex", at))

	b.checkCircleEvent(prev, sweepX)
	b.checkCircleEvent(next, sweepX)
}

// checkCircleEvent пересчитывает событие круга для дуги i.
func (b *beachline) checkCircleEvent(i arcID, sweepX float64) {
	arc := &b.arcs[i]
	if arc.circleEvent != nil {
		arc.circleEvent.valid = false
		arc.circleEvent = nil
	}
	if arc.prev == noArc || arc.next == noArc {
		return
	}

	left := b.arcs[arc.prev].site
	right := b.arcs[arc.next].site
	if left == right {
		return
	}

	center, x, ok := circumcenter(left, arc.site, right)
	// событие уже позади линии заметания
	if !ok || x < sweepX-epsilon {
		return
	}

	e := newCircleEvent(x, center, i)
	arc.circleEvent = e
	b.queue.push(e)

	b.Logger.Debug("[f-circle] Новое событие круга",
		zap.Float64("x", x), zap.Any("center", center), zap.Any("arc-site", arc.site))
}

// sites возвращает точки дуг снизу вверх.
func (b *beachline) sites() []Vertex {
	var out []Vertex
	for i := b.head; i != noArc; i = b.arcs[i].next {
		out = append(out, b.arcs[i].site)
	}
	return out
}
