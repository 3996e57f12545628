package main

import (
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/roffe/graphview/pkg/chart"
	"github.com/roffe/graphview/pkg/datasource"
	"github.com/roffe/graphview/pkg/settings"
	"github.com/roffe/graphview/pkg/widgets/graphview"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	a := app.NewWithID("com.roffe.graphview")

	cfg, err := settings.Load(a.Preferences())
	if err != nil {
		log.Printf("invalid settings, using defaults: %v", err)
		cfg = chart.DefaultConfig()
	}

	points, err := loadPoints(cfg)
	if err != nil {
		log.Fatal(err)
	}

	gv, err := graphview.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	gv.SetData(points)

	w := a.NewWindow("Graph View")
	w.SetContent(gv)
	w.Resize(fyne.NewSize(1024, 768))
	w.ShowAndRun()
}

// loadPoints reads a CSV file given as the first argument, or generates random points.
func loadPoints(cfg chart.Config) ([]chart.DataPoint, error) {
	if len(os.Args) > 1 {
		return datasource.FromFile(os.Args[1])
	}
	src, err := datasource.NewRandom(cfg.AxisBoundX, max(cfg.AxisBoundY, 1), uint64(time.Now().UnixNano()))
	if err != nil {
		return nil, err
	}
	return src.Points()
}
