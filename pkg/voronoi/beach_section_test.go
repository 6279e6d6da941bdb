package voronoi

import (
	"math"
	"testing"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
)

type beachFixture struct {
	queue eventQueue
	edges edgeList
	b     *beachline
}

func newBeachFixture() *beachFixture {
	f := &beachFixture{}
	f.b = newBeachline(&f.queue, &f.edges, logger.NewNop())
	return f
}

// checkLinks проверяет, что список вперед совпадает с обратным списком назад.
func checkLinks(t *testing.T, b *beachline) {
	t.Helper()
	var forward []arcID
	seen := map[arcID]bool{}
	for i := b.head; i != noArc; i = b.arcs[i].next {
		if seen[i] {
			t.Fatalf("arc %d appears twice", i)
		}
		seen[i] = true
		if b.arcs[i].removed {
			t.Fatalf("removed arc %d is still linked", i)
		}
		forward = append(forward, i)
	}
	if len(forward) == 0 {
		return
	}
	if b.arcs[b.head].prev != noArc {
		t.Fatal("head has a predecessor")
	}
	tail := forward[len(forward)-1]
	var backward []arcID
	for i := tail; i != noArc; i = b.arcs[i].prev {
		backward = append(backward, i)
	}
	if len(backward) != len(forward) {
		t.Fatalf("forward %v, backward %v", forward, backward)
	}
	for k := range forward {
		if forward[k] != backward[len(backward)-1-k] {
			t.Fatalf("forward %v, backward %v", forward, backward)
		}
	}
	// ребра соседних дуг общие
	for _, i := range forward[:len(forward)-1] {
		if n := b.arcs[i].next; b.arcs[i].s1 != b.arcs[n].s0 {
			t.Fatalf("arcs %d and %d do not share an edge", i, n)
		}
	}
}

// liveEvents - число действительных событий круга у дуг.
func liveEvents(b *beachline) int {
	var n int
	for i := b.head; i != noArc; i = b.arcs[i].next {
		if e := b.arcs[i].circleEvent; e != nil {
			if !e.valid || e.arc != i {
				return -1
			}
			n++
		}
	}
	return n
}

func TestInsertSiteSplitsArc(t *testing.T) {
	f := newBeachFixture()
	f.b.insertSite(Vertex{0, 0})
	f.b.insertSite(Vertex{10, 0})
	checkLinks(t, f.b)

	diff(t, []Vertex{{0, 0}, {10, 0}, {0, 0}}, f.b.sites())
	if len(f.edges.edges) != 2 {
		t.Fatalf("edges = %d, want 2", len(f.edges.edges))
	}
	for _, e := range f.edges.edges {
		diff(t, Vertex{5, 0}, e.Start, approx)
		if e.Finished {
			t.Error("split edges must stay open")
		}
	}

	f.b.insertSite(Vertex{20, 0})
	checkLinks(t, f.b)
	diff(t, []Vertex{{0, 0}, {10, 0}, {20, 0}, {10, 0}, {0, 0}}, f.b.sites())
	diff(t, Vertex{15, 0}, f.edges.edges[2].Start, approx)

	// точки на одной прямой - событий круга нет
	if !f.queue.isEmpty() {
		t.Errorf("collinear sites queued %d circle events", f.queue.len())
	}
}

func TestInsertSiteSameX(t *testing.T) {
	f := newBeachFixture()
	f.b.insertSite(Vertex{0, 0})
	f.b.insertSite(Vertex{0, 10})
	f.b.insertSite(Vertex{0, 20})
	checkLinks(t, f.b)

	diff(t, []Vertex{{0, 0}, {0, 10}, {0, 20}}, f.b.sites())
	diff(t, []Vertex{{0, 5}, {0, 15}}, []Vertex{f.edges.edges[0].Start, f.edges.edges[1].Start})
	diff(t, Vertex{0, 0}, f.edges.edges[0].Left)
	diff(t, Vertex{0, 10}, f.edges.edges[0].Right)
}

func TestInsertSiteAboveSameXColumn(t *testing.T) {
	f := newBeachFixture()
	f.b.insertSite(Vertex{0, 0})
	f.b.insertSite(Vertex{5, -3})
	// дуга (5,-3) вырождена в луч, точка выше попадает в верхнюю копию (0,0)
	f.b.insertSite(Vertex{5, 3})
	checkLinks(t, f.b)
	diff(t, []Vertex{{0, 0}, {5, -3}, {0, 0}, {5, 3}, {0, 0}}, f.b.sites())
}

func TestCircleEventLifecycle(t *testing.T) {
	f := newBeachFixture()
	b := f.b
	b.insertSite(Vertex{10, 10})
	b.insertSite(Vertex{10, 20})
	b.insertSite(Vertex{20, 10})
	checkLinks(t, b)
	diff(t, []Vertex{{10, 10}, {20, 10}, {10, 10}, {10, 20}}, b.sites())

	if f.queue.len() != 1 || liveEvents(b) != 1 {
		t.Fatalf("queue = %d, live = %d, want one circle event", f.queue.len(), liveEvents(b))
	}
	first := f.queue.tree.first.value
	diff(t, Vertex{15, 15}, first.center, approx)
	diff(t, 15+math.Sqrt(50), first.x, approx)

	b.insertSite(Vertex{20, 20})
	checkLinks(t, b)
	if liveEvents(b) != 2 {
		t.Fatalf("live events = %d, want 2", liveEvents(b))
	}

	e := f.queue.popMin()
	if e != first || !e.valid {
		t.Fatal("first circle event must fire first")
	}
	second := f.queue.tree.first.value
	b.removeArc(e.arc, e.center, e.x)
	checkLinks(t, b)

	// соседняя дуга получила новое событие в той же точке, старое отменено
	if second.valid {
		t.Error("neighbour's old circle event must be invalidated")
	}
	if liveEvents(b) != 1 {
		t.Fatalf("live events = %d, want 1", liveEvents(b))
	}
	if !b.arcs[e.arc].removed {
		t.Error("removed arc must be marked")
	}

	finished := 0
	for _, edge := range f.edges.edges {
		if edge.Finished {
			finished++
			diff(t, Vertex{15, 15}, edge.End, approx)
		}
	}
	if finished != 2 {
		t.Errorf("finished edges = %d, want 2", finished)
	}
}

func TestCheckCircleEventNeedsBothNeighbours(t *testing.T) {
	f := newBeachFixture()
	f.b.insertSite(Vertex{0, 0})
	f.b.checkCircleEvent(f.b.head, 0)
	if !f.queue.isEmpty() || f.b.arcs[f.b.head].circleEvent != nil {
		t.Error("single arc must not get a circle event")
	}
}
