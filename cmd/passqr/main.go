package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DavidGamba/go-getoptions"
	"github.com/passqr/passqr"
)

var errUsage = errors.New("expected exactly one input file")

type config struct {
	input  string
	output string
	align  passqr.Align

	columns int
	rows    int
	debug   bool
	boxes   bool
	help    bool
}

func newGetOpt(c *config, align *string) *getoptions.GetOpt {
	defaults := passqr.DefaultOptions()

	opt := getoptions.New()
	opt.HelpSynopsisArg("<input_file.toml>", "key/value file to print")
	opt.BoolVar(&c.help, "help", false, opt.Alias("h", "?"))
	// the lonesome dash, in place of the input file, reads standard input
	opt.Bool("-", false, opt.Description("read the input from standard input"))
	opt.StringVar(&c.output, "output", "output.pdf", opt.Alias("o"),
		opt.ArgName("file"), opt.Description("PDF file to write"))
	opt.IntVar(&c.columns, "columns", defaults.Columns, opt.Description("QR codes per row"))
	opt.IntVar(&c.rows, "rows", defaults.Rows, opt.Description("rows of QR codes per page"))
	opt.StringVar(align, "align", "center", opt.ValidValues("left", "center", "right"),
		opt.Description("label alignment"))
	opt.BoolVar(&c.debug, "debug", false, opt.Alias("d"), opt.Description("log layout decisions"))
	opt.BoolVar(&c.boxes, "boxes", false, opt.Description("outline layout bands in the PDF"))
	return opt
}

// parseArgs reads the command line. The input is the single remaining
// argument, or standard input when "-" is given instead.
func parseArgs(args []string) (*config, *getoptions.GetOpt, error) {
	c := &config{}
	var align string
	opt := newGetOpt(c, &align)

	remaining, err := opt.Parse(args)
	if err != nil {
		return c, opt, err
	}
	if c.help {
		return c, opt, nil
	}

	switch {
	case opt.Called("-") && len(remaining) == 0:
		c.input = "-"
	case !opt.Called("-") && len(remaining) == 1:
		c.input = remaining[0]
	default:
		return c, opt, errUsage
	}

	c.align, err = passqr.ParseAlign(align)
	if err != nil {
		return c, opt, err
	}
	return c, opt, nil
}

func main() {
	c, opt, err := parseArgs(os.Args[1:])
	if c.help && err == nil {
		fmt.Fprint(os.Stderr, opt.Help())
		os.Exit(0)
	}
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		usage(opt)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if c.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	converter := passqr.New().
		SetLogger(logger).
		SetDebug(c.debug).
		SetDebugDrawBoxes(c.boxes).
		SetGrid(c.columns, c.rows).
		WithOption(passqr.WithLabelAlign(c.align))

	if err := converter.ConvertFile(c.input, c.output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, passqr.ErrEmptySecret) {
			fmt.Fprintln(os.Stderr, "Every entry needs a non-empty secret; fill in or remove the entry named above.")
		}
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", c.output)
}

func usage(opt *getoptions.GetOpt) {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <input_file.toml | ->\n\n", filepath.Base(os.Args[0]))
	fmt.Fprint(os.Stderr, opt.Help())
}
