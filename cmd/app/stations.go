package main

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

type Station struct {
	X, Y float64
}

// Генерируем случайные точки для станций
func generateRandStations(rng *rand.Rand, n int, width, height int) []Station {
	stations := make([]Station, n)
	for i := 0; i < n; i++ {
		stations[i] = Station{
			X: rng.Float64() * float64(width),
			Y: rng.Float64() * float64(height),
		}
	}
	return stations
}

// Сетка с шагом 40 и случайным сдвигом до 20 в каждой клетке
func generateJitterStations(rng *rand.Rand, width, height int) []Station {
	var stations []Station
	for x := 10.0; x < float64(width); x += 40 {
		for y := 10.0; y < float64(height); y += 40 {
			stations = append(stations, Station{
				X: x + 20*rng.Float64(),
				Y: y + 20*rng.Float64(),
			})
		}
	}
	return stations
}

func generateFixStations(n int, width, height int) []Station {
	stations := make([]Station, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// строк и столбцов может быть больше, чем станций
			if len(stations) == n {
				break
			}
			stations = append(stations, Station{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}

	return stations
}

// polygonShape строит многоугольник отсечения внутри W x H.
func polygonShape(shape string, width, height int) []voronoi.Vertex {
	w, h := float64(width), float64(height)
	cx, cy := w/2, h/2

	switch shape {
	case "hexagon":
		r := math.Min(w, h) / 2
		vs := make([]voronoi.Vertex, 6)
		for i := range vs {
			a := math.Pi / 3 * float64(i)
			vs[i] = voronoi.Vertex{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
		}
		return vs
	case "star":
		outer := math.Min(w, h) / 2
		inner := outer / 2
		vs := make([]voronoi.Vertex, 10)
		for i := range vs {
			r := outer
			if i%2 == 1 {
				r = inner
			}
			a := math.Pi/5*float64(i) - math.Pi/2
			vs[i] = voronoi.Vertex{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
		}
		return vs
	default:
		return voronoi.NewBoundingBox(0, w, 0, h).Vertices()
	}
}
