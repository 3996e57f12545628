// Command graphrender renders a graph to PNG files without a display.
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/roffe/graphview/pkg/chart"
	"github.com/roffe/graphview/pkg/colors"
	"github.com/roffe/graphview/pkg/datasource"
	"github.com/roffe/graphview/pkg/raster"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	sizes        []string
	xBound       int
	yBound       int
	gridLines    int
	markerRadius float32
	seed         uint64
	input        string
	out          string
	background   string
	dump         bool
}

type viewport struct {
	width, height int
}

func (v viewport) String() string {
	return fmt.Sprintf("%dx%d", v.width, v.height)
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:           "graphrender [flags]",
		Short:         "Render a point graph to PNG",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), o)
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&o.sizes, "size", []string{"1080x1920"}, "viewport size as WxH, repeatable")
	f.IntVar(&o.xBound, "x-bound", chart.DefaultAxisBoundX, "x axis bound used for labels and random data")
	f.IntVar(&o.yBound, "y-bound", chart.DefaultAxisBoundY, "y axis bound used for labels and random data")
	f.IntVar(&o.gridLines, "grid-lines", chart.DefaultGridLines, "number of grid bands per axis")
	f.Float32Var(&o.markerRadius, "marker-radius", chart.DefaultMarkerRadius, "data point marker radius in pixels")
	f.Uint64Var(&o.seed, "seed", 0, "random data seed, 0 seeds from the clock")
	f.StringVarP(&o.input, "input", "i", "", "read x,y points from a CSV file instead of generating them")
	f.StringVarP(&o.out, "out", "o", "graph_%dx%d.png", "output file, %d verbs are replaced by width and height")
	f.StringVar(&o.background, "background", "white", "background color, name or hex")
	f.BoolVar(&o.dump, "dump", false, "print the draw calls instead of writing PNG files")
	return cmd
}

func run(ctx context.Context, stdout io.Writer, o options) error {
	sizes, err := parseSizes(o.sizes)
	if err != nil {
		return err
	}
	if !o.dump {
		if err := checkPattern(o.out, len(sizes)); err != nil {
			return err
		}
	}
	bg, err := colors.Parse(o.background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	cfg := chart.DefaultConfig()
	cfg.AxisBoundX = o.xBound
	cfg.AxisBoundY = o.yBound
	cfg.GridLines = o.gridLines
	cfg.MarkerRadius = o.markerRadius
	if err := cfg.Validate(); err != nil {
		return err
	}

	points, err := loadPoints(o)
	if err != nil {
		return err
	}

	dumps := make([]string, len(sizes))
	g, ctx := errgroup.WithContext(ctx)
	for i, vp := range sizes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// one renderer per goroutine, renderers are not shared
			r, err := chart.New(cfg)
			if err != nil {
				return err
			}
			r.SetData(points)
			if o.dump {
				rec := &chart.Recorder{}
				r.Render(rec, float32(vp.width), float32(vp.height))
				dumps[i] = rec.String()
				return nil
			}
			c := raster.New(image.NewRGBA(image.Rect(0, 0, vp.width, vp.height)))
			c.Clear(bg)
			r.Render(c, float32(vp.width), float32(vp.height))
			filename := outputName(o.out, vp)
			if err := writePNG(filename, c.Image()); err != nil {
				return fmt.Errorf("%s: %w", vp, err)
			}
			log.Printf("wrote %s (%s, %d points)", filename, vp, len(points))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if o.dump {
		for i, vp := range sizes {
			fmt.Fprintf(stdout, "# %s\n%s", vp, dumps[i])
		}
	}
	return nil
}

func loadPoints(o options) ([]chart.DataPoint, error) {
	if o.input != "" {
		return datasource.FromFile(o.input)
	}
	seed := o.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src, err := datasource.NewRandom(o.xBound, o.yBound, seed)
	if err != nil {
		return nil, err
	}
	return src.Points()
}

func parseSizes(raw []string) ([]viewport, error) {
	if len(raw) == 0 {
		return nil, errors.New("no --size given")
	}
	out := make([]viewport, 0, len(raw))
	for _, s := range raw {
		ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
		if !ok {
			return nil, fmt.Errorf("invalid size %q, expected WxH", s)
		}
		w, errW := strconv.Atoi(ws)
		h, errH := strconv.Atoi(hs)
		if errW != nil || errH != nil {
			return nil, fmt.Errorf("invalid size %q: %w", s, errors.Join(errW, errH))
		}
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("invalid size %q: width and height must be positive", s)
		}
		out = append(out, viewport{width: w, height: h})
	}
	return out, nil
}

// checkPattern accepts an output pattern with exactly two %d verbs, width
// then height, or with none when only one size is rendered. %% is a literal.
func checkPattern(pattern string, sizes int) error {
	n, err := countVerbs(pattern)
	if err != nil {
		return err
	}
	switch {
	case n == 2:
		return nil
	case n == 0 && sizes <= 1:
		return nil
	case n == 0:
		return errors.New("--out needs two %d verbs when rendering more than one size")
	}
	return fmt.Errorf("--out %q: want two %%d verbs for width and height, got %d", pattern, n)
}

func countVerbs(pattern string) (int, error) {
	n := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		if i+1 >= len(pattern) {
			return 0, fmt.Errorf("--out %q: trailing %%", pattern)
		}
		i++
		switch pattern[i] {
		case '%':
		case 'd':
			n++
		default:
			return 0, fmt.Errorf("--out %q: unsupported verb %%%c, only %%d is allowed", pattern, pattern[i])
		}
	}
	return n, nil
}

// outputName expands a pattern accepted by checkPattern.
func outputName(pattern string, vp viewport) string {
	if n, err := countVerbs(pattern); err != nil || n != 2 {
		return strings.ReplaceAll(pattern, "%%", "%")
	}
	return fmt.Sprintf(pattern, vp.width, vp.height)
}

func writePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := raster.EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
