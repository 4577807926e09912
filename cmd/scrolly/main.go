// Command scrolly replays scroll offsets through a collapsing header and
// prints the resulting layout after every step.
//
// Offsets are read from the command line or, if none are given, one per line
// from standard input. Lines starting with # are ignored. Negative offsets
// expand the header; on the command line they must follow --, as in
//
//	scrolly -s -- 300 -100
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pborman/getopt"
	"github.com/pkg/profile"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"honnef.co/go/track/header"
)

type Config struct {
	Header  header.Config
	Snap    bool
	Plot    string
	Verbose int
}

func PrintStderr(config Config, level int, format string, args ...interface{}) {
	if config.Verbose >= level {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

func parseOffsets(args []string) ([]float64, error) {
	offsets := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid offset %q: %w", arg, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid offset %q: not a finite number", arg)
		}
		offsets = append(offsets, v)
	}
	return offsets, nil
}

func readOffsets(r io.Reader) ([]float64, error) {
	var fields []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields = append(fields, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return parseOffsets(fields)
}

type step struct {
	Offset float64
	Layout header.Layout
}

func replay(config Config, offsets []float64) []step {
	h := header.New(config.Header)
	steps := []step{{Layout: h.Layout()}}
	for _, off := range offsets {
		l := h.Scroll(off)
		PrintStderr(config, 2, "scrolled by %g to height %g\n", off, l.Height)
		steps = append(steps, step{Offset: off, Layout: l})
	}
	if config.Snap {
		steps = append(steps, step{Layout: h.EndScroll()})
	}
	return steps
}

func writeTable(w io.Writer, steps []step) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%8s\t%8s\t%8s\t%8s\t%8s\t%8s\t%8s\t%8s\t%s\n",
		"step", "offset", "height", "image", "lead", "top", "menu", "greeting", "scrollable")
	for i, s := range steps {
		l := s.Layout
		fmt.Fprintf(bw, "%8d\t%8.2f\t%8.2f\t%8.2f\t%8.2f\t%8.2f\t%8.3f\t%8.3f\t%t\n",
			i, s.Offset, l.Height, l.ImageHeight, l.LabelLead, l.Label.Y, l.MenuAlpha, l.GreetingAlpha, l.Scrollable)
	}
	return bw.Flush()
}

func savePlot(config Config, steps []step) error {
	height := make(plotter.XYs, len(steps))
	image := make(plotter.XYs, len(steps))
	lead := make(plotter.XYs, len(steps))
	menu := make(plotter.XYs, len(steps))
	greeting := make(plotter.XYs, len(steps))
	// Alphas are scaled to the header's range so they share an axis.
	scale := config.Header.Collapsible.Max()
	for i, s := range steps {
		x := float64(i)
		height[i] = plotter.XY{X: x, Y: s.Layout.Height}
		image[i] = plotter.XY{X: x, Y: s.Layout.ImageHeight}
		lead[i] = plotter.XY{X: x, Y: s.Layout.LabelLead}
		menu[i] = plotter.XY{X: x, Y: s.Layout.MenuAlpha * scale}
		greeting[i] = plotter.XY{X: x, Y: s.Layout.GreetingAlpha * scale}
	}

	p := plot.New()
	p.Title.Text = "collapsing header"
	p.X.Label.Text = "step"
	p.Y.Label.Text = "points"
	if err := plotutil.AddLinePoints(p,
		"height", height,
		"image", image,
		"label lead", lead,
		"menu alpha", menu,
		"greeting alpha", greeting,
	); err != nil {
		return err
	}
	if err := p.Save(8*vg.Inch, 4*vg.Inch, config.Plot); err != nil {
		return err
	}
	PrintStderr(config, 1, "Wrote plot to `%s'\n", config.Plot)
	return nil
}

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	config := Config{}

	options := getopt.New()

	optConfig := options.StringLong("config", 'c', "", "HJSON file describing the header")
	optSnap := options.BoolLong("snap", 's', "snap to an edge after the last offset")
	optPlot := options.StringLong("plot", 'p', "", "save a plot of all steps to the given file (png, svg, pdf)")
	optProfile := options.BoolLong("profile", 0, "write a CPU profile to the current directory")
	optVerbose := options.CounterLong("verbose", 'v', "verbose level [-v or -vv]")
	optHelp := options.BoolLong("help", 'h', "print help")

	options.SetParameters("[--] [OFFSET...]")
	if err := options.Getopt(args, nil); err != nil {
		options.PrintUsage(os.Stderr)
		return err
	}

	if *optHelp {
		options.PrintUsage(stdout)
		return nil
	}
	config.Snap = *optSnap
	config.Plot = *optPlot
	config.Verbose = *optVerbose

	if *optProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	config.Header = header.DefaultConfig()
	if *optConfig != "" {
		PrintStderr(config, 1, "Reading config `%s'... ", *optConfig)
		conf, err := header.LoadConfig(*optConfig)
		if err != nil {
			PrintStderr(config, 1, "failed\n")
			return err
		}
		PrintStderr(config, 1, "done\n")
		config.Header = conf
	}

	var offsets []float64
	var err error
	if len(options.Args()) > 0 {
		offsets, err = parseOffsets(options.Args())
	} else {
		offsets, err = readOffsets(stdin)
	}
	if err != nil {
		return err
	}

	steps := replay(config, offsets)
	if err := writeTable(stdout, steps); err != nil {
		return err
	}
	if config.Plot != "" {
		return savePlot(config, steps)
	}
	return nil
}
