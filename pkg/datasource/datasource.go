// Package datasource supplies the ordered points a graph is drawn from.
package datasource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/roffe/graphview/pkg/chart"
)

type Provider interface {
	Points() ([]chart.DataPoint, error)
}

// Random yields one point per x in [0, XBound] with y drawn from [1, YBound].
type Random struct {
	XBound int
	YBound int
	rnd    *rand.Rand
}

func NewRandom(xBound, yBound int, seed uint64) (*Random, error) {
	if xBound < 0 {
		return nil, fmt.Errorf("x bound must not be negative, got %d", xBound)
	}
	if yBound < 1 {
		return nil, fmt.Errorf("y bound must be at least 1, got %d", yBound)
	}
	return &Random{
		XBound: xBound,
		YBound: yBound,
		rnd:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

func (r *Random) Points() ([]chart.DataPoint, error) {
	out := make([]chart.DataPoint, 0, r.XBound+1)
	for x := 0; x <= r.XBound; x++ {
		out = append(out, chart.DataPoint{X: x, Y: r.rnd.IntN(r.YBound) + 1})
	}
	return out, nil
}

// Static returns a fixed set of points.
type Static []chart.DataPoint

func (s Static) Points() ([]chart.DataPoint, error) {
	out := make([]chart.DataPoint, len(s))
	copy(out, s)
	return out, nil
}

// CSV reads "x,y" records. A non numeric first row is treated as a header.
type CSV struct {
	r io.Reader
}

func NewCSV(r io.Reader) *CSV {
	return &CSV{r: r}
}

func (c *CSV) Points() ([]chart.DataPoint, error) {
	cr := csv.NewReader(c.r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var out []chart.DataPoint
	for n := 1; ; n++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != 2 {
			return nil, fmt.Errorf("csv line %d: expected 2 fields, got %d", line, len(rec))
		}
		x, errX := strconv.Atoi(strings.TrimSpace(rec[0]))
		y, errY := strconv.Atoi(strings.TrimSpace(rec[1]))
		if errX != nil || errY != nil {
			if n == 1 {
				continue
			}
			return nil, fmt.Errorf("csv line %d: invalid point %q: %w", line, strings.Join(rec, ","), errors.Join(errX, errY))
		}
		out = append(out, chart.DataPoint{X: x, Y: y})
	}
}

// FromFile reads the points of a CSV file.
func FromFile(filename string) ([]chart.DataPoint, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewCSV(f).Points()
}
