package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	"github.com/0x0FACED/go-voronoi/static"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type params struct {
	width, height int
	stations      int
	// random | jitter | grid
	mode string
	seed int64
	// box | hexagon | star
	polygon string
}

func defaultParams() params {
	return params{
		width:    1000,
		height:   1000,
		stations: 12,
		mode:     "grid",
		seed:     time.Now().UnixNano(),
		polygon:  "box",
	}
}

// parseParams читает параметры формы, собирая все ошибки сразу.
func parseParams(r *http.Request) (params, error) {
	p := defaultParams()
	if r.Method != http.MethodPost {
		return p, nil
	}
	if err := r.ParseForm(); err != nil {
		return p, err
	}

	var err error
	atoi := func(name string, dst *int, lo, hi int) {
		v, perr := strconv.Atoi(r.FormValue(name))
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", name, perr))
			return
		}
		if v < lo || v > hi {
			err = multierr.Append(err, fmt.Errorf("%s: %d not in [%d, %d]", name, v, lo, hi))
			return
		}
		*dst = v
	}
	atoi("width", &p.width, 100, 5000)
	atoi("height", &p.height, 100, 5000)
	atoi("stations", &p.stations, 1, 200)

	if s := r.FormValue("seed"); s != "" {
		seed, perr := strconv.ParseInt(s, 10, 64)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("seed: %w", perr))
		} else {
			p.seed = seed
		}
	}

	switch mode := r.FormValue("mode"); mode {
	case "", "grid":
	case "random", "jitter":
		p.mode = mode
	default:
		err = multierr.Append(err, fmt.Errorf("mode: unknown %q", mode))
	}

	switch shape := r.FormValue("polygon"); shape {
	case "", "box":
	case "hexagon", "star":
		p.polygon = shape
	default:
		err = multierr.Append(err, fmt.Errorf("polygon: unknown %q", shape))
	}

	return p, err
}

func prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Диаграмма Вороного (Форчун)",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Ширина",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Высота",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

func newLine(name string, points []opts.LineData, style opts.LineStyle) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)
	line.AddSeries(name, points).SetSeriesOptions(
		charts.WithLineStyleOpts(style),
	)
	return line
}

// Преобразуем диаграмму в Echarts: станции, границы ячеек и многоугольник отсечения
func voronoiToEcharts(stations []Station, diagram *voronoi.Diagram) *charts.Scatter {
	scatter := charts.NewScatter()

	points := make([]opts.ScatterData, 0, len(stations))
	for _, station := range stations {
		points = append(points, opts.ScatterData{
			Value: []float64{station.X, station.Y},
		})
	}

	// Дизайним скаттер
	prepareScatter(scatter)

	scatter.AddSeries("Станции", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, seg := range diagram.Segments() {
		scatter.Overlap(newLine("Границы", []opts.LineData{
			{Value: []float64{seg.X0, seg.Y0}},
			{Value: []float64{seg.X1, seg.Y1}},
		}, opts.LineStyle{Width: 2}))
	}

	ring := diagram.Polygon.Vertices()
	outline := make([]opts.LineData, 0, len(ring)+1)
	for _, v := range append(ring, ring[0]) {
		outline = append(outline, opts.LineData{Value: []float64{v.X, v.Y}})
	}
	scatter.Overlap(newLine("Область", outline, opts.LineStyle{Color: "orange", Width: 1}))

	return scatter
}

func buildStations(p params) []Station {
	rng := rand.New(rand.NewSource(p.seed))
	switch p.mode {
	case "random":
		return generateRandStations(rng, p.stations, p.width, p.height)
	case "jitter":
		return generateJitterStations(rng, p.width, p.height)
	default:
		return generateFixStations(p.stations, p.width, p.height)
	}
}

// http обработчик страницы с диаграмой и формой для ввода данных
func diagramHandler(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stations := buildStations(p)

	points := make([]voronoi.Vertex, 0, len(stations))
	for _, station := range stations {
		points = append(points, voronoi.Vertex{X: station.X, Y: station.Y})
	}

	log := logger.New()
	defer log.ClearLogs()

	diagram, err := voronoi.CreateDiagram(points, voronoi.Config{
		Polygon: polygonShape(p.polygon, p.width, p.height),
		Dedupe:  true,
		Logger:  log,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	scatter := voronoiToEcharts(stations, diagram)

	fmt.Fprintln(w, static.Part1)

	if err := scatter.Render(w); err != nil {
		log.Error("Ошибка рендеринга диаграммы", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	fmt.Fprintln(w, log.HTML())

	fmt.Fprintln(w, static.Part3)
}

func main() {
	addr := flag.String("addr", ":8080", "адрес HTTP сервера")
	flag.Parse()

	zl, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer zl.Sync()
	log := logger.FromZap(zl)

	http.HandleFunc("/", diagramHandler)
	log.Info("Сервер запущен", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Error("Err ListenAndServe", zap.Error(err))
	}
}
