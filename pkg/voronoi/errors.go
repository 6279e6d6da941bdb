package voronoi

import "errors"

var (
	ErrNoSites           = errors.New("voronoi: no sites")
	ErrDuplicateSite     = errors.New("voronoi: duplicate site")
	ErrInvalidCoordinate = errors.New("voronoi: site coordinate is not finite")
	ErrDegeneratePolygon = errors.New("voronoi: degenerate bounding polygon")
)
