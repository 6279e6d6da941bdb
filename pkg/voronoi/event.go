package voronoi

import "fmt"

type eventKind int

const (
	// при равных координатах событие круга обрабатывается раньше события точки
	circleEvent eventKind = iota
	siteEvent
)

func (k eventKind) String() string {
	switch k {
	case circleEvent:
		return "circle"
	case siteEvent:
		return "site"
	}
	return fmt.Sprintf("eventKind(%d)", int(k))
}

type event struct {
	kind eventKind
	// координата линии заметания, при которой событие срабатывает
	x float64
	// вторичный ключ: Y точки или Y центра круга
	y   float64
	seq uint64

	site   Vertex
	center Vertex
	arc    arcID
	valid  bool

	node *rbtNode
}

func newSiteEvent(site Vertex) *event {
	return &event{kind: siteEvent, x: site.X, y: site.Y, site: site, arc: noArc, valid: true}
}

func newCircleEvent(x float64, center Vertex, arc arcID) *event {
	return &event{kind: circleEvent, x: x, y: center.Y, center: center, arc: arc, valid: true}
}

// less - порядок в очереди: x, y, тип события, порядок вставки.
func (e *event) less(o *event) bool {
	switch {
	case e.x != o.x:
		return e.x < o.x
	case e.y != o.y:
		return e.y < o.y
	case e.kind != o.kind:
		return e.kind < o.kind
	}
	return e.seq < o.seq
}

// eventQueue - очередь с приоритетом. Устаревшие события круга не удаляются,
// а помечаются valid=false и пропускаются при извлечении.
type eventQueue struct {
	tree rbt
	seq  uint64
}

func (q *eventQueue) push(e *event) {
	q.seq++
	e.seq = q.seq
	q.tree.insert(e)
}

// popMin panics on an empty queue; callers check isEmpty first.
func (q *eventQueue) popMin() *event {
	first := q.tree.first
	if first == nil {
		panic("voronoi: pop from empty event queue")
	}
	e := first.value
	q.tree.removeNode(first)
	return e
}

func (q *eventQueue) isEmpty() bool { return q.tree.first == nil }

func (q *eventQueue) len() int { return q.tree.size }
