// Command advent solves the registered puzzle days and prints their answers.
//
//	advent [-c advent.yaml] [-d 8,10] [-i input.txt] [-g] [-v level]
//
// Each day reads <input_dir>/<day>/<input_name> unless --input names a file,
// which is only allowed for a single day.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/pborman/getopt/v2"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/advent/config"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzles"
	_ "github.com/katalvlaran/advent/puzzles/all"
	"github.com/katalvlaran/advent/solution"
)

var errUsage = errors.New("advent: usage")

type flags struct {
	help    *bool
	config  *string
	days    *string
	input   *string
	group   *bool
	verbose *int
	set     *getopt.Set
}

func newFlags() *flags {
	s := getopt.New()
	f := &flags{set: s}
	f.help = s.BoolLong("help", 'h', "display help")
	f.config = s.StringLong("config", 'c', config.DefaultFile, "configuration file")
	f.days = s.StringLong("day", 'd', "", "comma separated days to solve (default: config, else all)")
	f.input = s.StringLong("input", 'i', "", "input file, overrides the configured path for a single day")
	f.group = s.BoolLong("group", 'g', "group digits in answers")
	f.verbose = s.IntLong("verbose", 'v', -1, "klog verbosity (default: config)")

	return f
}

func parseDays(s string) ([]int, error) {
	var out []int
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.Wrapf(errUsage, "bad day %q", tok)
		}
		out = append(out, n)
	}

	return out, nil
}

func initLogging(verbosity int) {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	_ = fs.Set("logtostderr", "true")
	_ = fs.Set("v", strconv.Itoa(verbosity))
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          false,
	})
}

func run(args []string, stdout, stderr io.Writer) error {
	f := newFlags()
	if err := f.set.Getopt(args, nil); err != nil {
		f.set.PrintUsage(stderr)
		return errors.Wrap(errUsage, err.Error())
	}
	if *f.help {
		f.set.PrintUsage(stdout)
		return nil
	}

	cfg, err := config.Load(*f.config)
	if err != nil {
		return err
	}
	if f.set.IsSet("day") {
		if cfg.Days, err = parseDays(*f.days); err != nil {
			return err
		}
	}
	if *f.group {
		cfg.Grouping = true
	}
	if *f.verbose >= 0 {
		cfg.Verbosity = *f.verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	initLogging(cfg.Verbosity)
	defer klog.Flush()
	klog.V(4).Infof("configuration: %s", pretty.Sprint(cfg))

	days := cfg.Days
	if len(days) == 0 {
		days = puzzles.Days()
	}
	if *f.input != "" && len(days) != 1 {
		return errors.Wrap(errUsage, "--input needs exactly one day")
	}

	var opts []solution.Option
	if cfg.Grouping {
		opts = append(opts, solution.WithGrouping())
	}
	if len(days) > 1 {
		opts = append(opts, solution.WithHeader())
	}
	printer := solution.NewPrinter(stdout, opts...)

	for _, day := range days {
		path := cfg.InputPath(day)
		if *f.input != "" {
			path = *f.input
		}
		content, err := input.Read(path)
		if err != nil {
			return err
		}
		res, err := puzzles.Solve(day, content)
		if err != nil {
			return err
		}
		klog.V(4).Infof("day %d result: %s", day, pretty.Sprint(res))
		if err := printer.Print(res); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		klog.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
