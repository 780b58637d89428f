// Command stridemap applies a built-in kernel to a vector through the
// strided map contract and prints the visited index pairs.
//
// Usage:
//
//	stridemap [flags] value ...
//
// Values are read as float64. The destination starts filled with -fill and
// has -ylen elements (default: number of values).
//
// Examples:
//
//	stridemap -- -1 -2 -3 -4 -5
//	stridemap -n 3 -stride-x 2 -- -1 -2 -3 -4 -5
//	stridemap -n 3 -stride-x -2 -offset-x 4 -stride-y -1 -offset-y 3 -- -1 -2 -3 -4 -5
//	stridemap -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-strided/strided"
)

// options holds the raw flag values. nSet and ylenSet record whether the
// flag was given, so an explicit -n -1 is kept as a no-op count.
type options struct {
	kernel  string
	n       int
	nSet    bool
	strideX int
	offsetX int
	strideY int
	offsetY int
	ylen    int
	ylenSet bool
	fill    float64
}

type config struct {
	n       int
	kernel  strided.Kernel
	strideX int
	offsetX int
	strideY int
	offsetY int
	ylen    int
	fill    float64
	values  []float64
}

func main() {
	fs := flag.NewFlagSet("stridemap", flag.ExitOnError)
	n := fs.Int("n", 0, "number of logical elements (default: number of values)")
	kernel := fs.String("kernel", "abs", "kernel to apply (see -list)")
	strideX := fs.Int("stride-x", 1, "source stride")
	offsetX := fs.Int("offset-x", 0, "source offset")
	strideY := fs.Int("stride-y", 1, "destination stride")
	offsetY := fs.Int("offset-y", 0, "destination offset")
	ylen := fs.Int("ylen", 0, "destination length (default: number of values)")
	fill := fs.Float64("fill", 0, "initial destination value")
	list := fs.Bool("list", false, "list available kernels")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stridemap [flags] value ...\n\n")
		fmt.Fprintf(os.Stderr, "Applies a kernel element-wise over strided buffers.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stridemap -- -1 -2 -3 -4 -5\n")
		fmt.Fprintf(os.Stderr, "  stridemap -n 3 -stride-x -2 -offset-x 4 -- -1 -2 -3 -4 -5\n")
		fmt.Fprintf(os.Stderr, "  stridemap -list\n")
	}
	_ = fs.Parse(os.Args[1:])

	if *list {
		printList(os.Stdout)
		return
	}

	opts := options{
		kernel:  *kernel,
		n:       *n,
		strideX: *strideX,
		offsetX: *offsetX,
		strideY: *strideY,
		offsetY: *offsetY,
		ylen:    *ylen,
		fill:    *fill,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			opts.nSet = true
		case "ylen":
			opts.ylenSet = true
		}
	})

	cfg, err := buildConfig(fs.Args(), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	y, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := printResult(os.Stdout, cfg, y); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func buildConfig(args []string, opts options) (config, error) {
	k, err := strided.ParseKernel(opts.kernel)
	if err != nil {
		return config{}, err
	}

	values, err := parseValues(args)
	if err != nil {
		return config{}, err
	}

	n := opts.n
	if !opts.nSet {
		n = len(values)
	}

	ylen := opts.ylen
	if !opts.ylenSet {
		ylen = len(values)
	} else if ylen < 0 {
		return config{}, fmt.Errorf("invalid -ylen %d: must not be negative", ylen)
	}

	return config{
		n:       n,
		kernel:  k,
		strideX: opts.strideX,
		offsetX: opts.offsetX,
		strideY: opts.strideY,
		offsetY: opts.offsetY,
		ylen:    ylen,
		fill:    opts.fill,
		values:  values,
	}, nil
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", a, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// run validates both layouts before mapping, so bad flags are reported
// instead of panicking.
func run(cfg config) ([]float64, error) {
	y := make([]float64, cfg.ylen)
	for i := range y {
		y[i] = cfg.fill
	}

	if err := strided.CheckBounds(cfg.n, len(cfg.values), cfg.strideX, cfg.offsetX); err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	if err := strided.CheckBounds(cfg.n, len(y), cfg.strideY, cfg.offsetY); err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	return strided.MapKernel(cfg.n, cfg.values, cfg.strideX, cfg.offsetX, y, cfg.strideY, cfg.offsetY, cfg.kernel), nil
}

func printList(w io.Writer) {
	for _, k := range strided.Kernels() {
		fmt.Fprintln(w, k)
	}
}

func printResult(w io.Writer, cfg config, y []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "i\tx index\tx\ty index\tf(x)\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-\t-------\t-\t-------\t----\n"); err != nil {
		return err
	}

	// The last column is the value written at step i, which a zero or
	// repeating destination stride may later overwrite in y.
	fn := cfg.kernel.Func()
	for i := 0; i < cfg.n; i++ {
		ix := cfg.offsetX + i*cfg.strideX
		iy := cfg.offsetY + i*cfg.strideY
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%g\t%d\t%g\n", i, ix, cfg.values[ix], iy, fn(cfg.values[ix])); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nkernel %s (%s), y = %v\n", cfg.kernel, strided.Implementation(), y)
	return err
}
