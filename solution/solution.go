// Package solution holds the answers a puzzle day produces and prints them.
//
// Solving and printing are separate: a day returns a Result and a Printer
// decides how it reaches the user.
package solution

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Answer is the value computed for one part of a day.
type Answer struct {
	Part  int
	Value int64
}

// Result collects the answers of one day in part order.
type Result struct {
	Day   int
	Parts []Answer
}

// Add appends the answer for the next part.
func (r *Result) Add(v int64) {
	r.Parts = append(r.Parts, Answer{Part: len(r.Parts) + 1, Value: v})
}

// Printer renders results.
type Printer interface {
	Print(r Result) error
}

// Option configures a Printer.
type Option func(*Options)

// Options control output formatting.
type Options struct {
	// Grouping inserts locale digit separators, e.g. 1,234,567.
	Grouping bool
	// Tag is the locale used when Grouping is set.
	Tag language.Tag
	// Header prints a "Day N" line before the answers.
	Header bool
}

// DefaultOptions prints plain digits without a header.
func DefaultOptions() Options {
	return Options{Tag: language.English}
}

// WithGrouping enables digit grouping for the given locale, English if none.
func WithGrouping(tags ...language.Tag) Option {
	return func(o *Options) {
		o.Grouping = true
		if len(tags) > 0 {
			o.Tag = tags[0]
		}
	}
}

// WithHeader prints a "Day N" line before each result.
func WithHeader() Option {
	return func(o *Options) { o.Header = true }
}

type printer struct {
	w    io.Writer
	opts Options
	p    *message.Printer
}

// NewPrinter returns a Printer writing one "Solution <part>: <value>" line
// per answer to w.
func NewPrinter(w io.Writer, opts ...Option) Printer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	pr := &printer{w: w, opts: o}
	if o.Grouping {
		pr.p = message.NewPrinter(o.Tag)
	}

	return pr
}

func (pr *printer) Print(r Result) error {
	if pr.opts.Header {
		if _, err := fmt.Fprintf(pr.w, "Day %d\n", r.Day); err != nil {
			return errors.Wrap(err, "solution: writing header")
		}
	}
	for _, a := range r.Parts {
		if _, err := fmt.Fprintf(pr.w, "Solution %d: %s\n", a.Part, pr.format(a.Value)); err != nil {
			return errors.Wrapf(err, "solution: writing day %d part %d", r.Day, a.Part)
		}
	}

	return nil
}

func (pr *printer) format(v int64) string {
	if pr.p == nil {
		return fmt.Sprint(v)
	}
	return pr.p.Sprintf("%d", v)
}
