package voronoi

import (
	"fmt"
	"sort"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Config holds the optional parameters of a diagram.
type Config struct {
	// Polygon clips the diagram. Nil means the sites' bounding box expanded by 20%.
	Polygon []Vertex
	// Dedupe drops repeated sites instead of failing with ErrDuplicateSite.
	Dedupe bool
	// Logger receives the sweep log; nil disables logging.
	Logger *logger.ZapLogger
}

// Основная функция - база
// Строит диаграмму и отсекает ее многоугольником.
func CreateDiagram(sites []Vertex, cfg Config) (*Diagram, error) {
	v, poly, err := prepare(sites, cfg)
	if err != nil {
		return nil, err
	}

	v.run()
	edges := clipEdges(v.edges.edges, poly, v.Logger)
	cells := gatherCells(v.sites, edges)

	v.Logger.Info("[f] Диаграмма построена",
		zap.Int("edges", len(edges)),
		zap.Int("cells", len(cells)),
		zap.Int("site-events", v.stats.SiteEvents),
		zap.Int("circle-events", v.stats.CircleEvents),
		zap.Int("stale-events", v.stats.StaleEvents))

	return &Diagram{Cells: cells, Edges: edges, Polygon: poly, Stats: v.stats}, nil
}

// Sweep runs the sweep only and returns every edge, finished far outside the
// bounding region, without clipping.
func Sweep(sites []Vertex, cfg Config) ([]*Edge, Stats, error) {
	v, _, err := prepare(sites, cfg)
	if err != nil {
		return nil, Stats{}, err
	}
	v.run()
	return v.edges.edges, v.stats, nil
}

func prepare(sites []Vertex, cfg Config) (*Voronoi, *Polygon, error) {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}

	log.Info("[f] Алгоритм Форчуна запущен", zap.Int("sites", len(sites)))

	sorted, err := prepareSites(sites, cfg.Dedupe, log)

	var poly *Polygon
	if cfg.Polygon != nil {
		var perr error
		poly, perr = NewPolygon(cfg.Polygon)
		err = multierr.Append(err, perr)
	}
	if err != nil {
		log.Error("[f] Некорректные входные данные", zap.Error(err))
		return nil, nil, err
	}

	bounds := boundingBoxOf(sorted).expand()
	if poly == nil {
		poly = newPolygon(bounds.Vertices())
	} else {
		bounds = bounds.union(poly.Bounds())
	}

	return newVoronoi(sorted, bounds, log), poly, nil
}

// prepareSites проверяет точки и сортирует копию в порядке заметания.
func prepareSites(sites []Vertex, dedupe bool, log *logger.ZapLogger) ([]Vertex, error) {
	if len(sites) == 0 {
		return nil, ErrNoSites
	}

	var err error
	seen := make(map[Vertex]struct{}, len(sites))
	out := make([]Vertex, 0, len(sites))
	for i, site := range sites {
		if !site.finite() {
			err = multierr.Append(err, fmt.Errorf("%w: site %d is %v", ErrInvalidCoordinate, i, site))
			continue
		}
		if _, ok := seen[site]; ok {
			if dedupe {
				log.Warn("[f] Найден дубликат!", zap.Any("site", site))
				continue
			}
			err = multierr.Append(err, fmt.Errorf("%w: site %d is %v", ErrDuplicateSite, i, site))
			continue
		}
		seen[site] = struct{}{}
		out = append(out, site)
	}
	if err != nil {
		return nil, err
	}

	// сортируем по X, чтобы все точки с одинаковым X шли снизу вверх
	sort.Sort(verticesBySweep{out})
	log.Debug("[f] Сайты (точки) отсортированы", zap.Any("sites", out))
	return out, nil
}
