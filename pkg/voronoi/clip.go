package voronoi

import (
	"math"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// Clip trims finished edges to poly. Edges with both endpoints outside are
// dropped, edges with both inside are kept as is, otherwise the outside endpoint
// moves to the boundary crossing nearest to the inside one. Zero-length results
// are dropped. The input edges are not modified.
func Clip(edges []*Edge, poly *Polygon) []*Edge {
	return clipEdges(edges, poly, logger.NewNop())
}

func clipEdges(edges []*Edge, poly *Polygon, log *logger.ZapLogger) []*Edge {
	out := make([]*Edge, 0, len(edges))
	var dropped int

	for _, edge := range edges {
		if !edge.Finished {
			dropped++
			continue
		}

		clipped, ok := clipEdge(*edge, poly)
		if !ok || clipped.length() < epsilon {
			dropped++
			continue
		}
		out = append(out, &clipped)
	}

	log.Info("[f-clip] Ребра отсечены", zap.Int("kept", len(out)), zap.Int("dropped", dropped))
	return out
}

func clipEdge(edge Edge, poly *Polygon) (Edge, bool) {
	startIn := poly.Contains(edge.Start)
	endIn := poly.Contains(edge.End)

	switch {
	case startIn && endIn:
		return edge, true
	case !startIn && !endIn:
		return edge, false
	case startIn:
		p, ok := nearestCrossing(edge.Start, edge.End, poly)
		if !ok {
			return edge, false
		}
		edge.End = p
	default:
		p, ok := nearestCrossing(edge.End, edge.Start, poly)
		if !ok {
			return edge, false
		}
		edge.Start = p
	}
	return edge, true
}

// nearestCrossing - пересечение отрезка in→out с границей, ближайшее к in.
// Для невыпуклого многоугольника пересечений может быть несколько;
// при равных расстояниях побеждает ребро с меньшим индексом.
func nearestCrossing(in, out Vertex, poly *Polygon) (Vertex, bool) {
	var (
		best  Vertex
		found bool
		dist  = math.Inf(1)
	)
	for _, e := range poly.edges {
		p, ok := segmentIntersect(in, out, e.a, e.b)
		if !ok {
			continue
		}
		if d := in.dist(p); d < dist {
			best, dist, found = p, d, true
		}
	}
	return best, found
}
