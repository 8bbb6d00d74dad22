// Package airgead runs the Airgead deposit calculator and investment
// planner console sessions.
package airgead

import (
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/bjaus/minifmt"
	"github.com/bjaus/minifmt/internal/console"
	"github.com/bjaus/minifmt/internal/interest"
	"github.com/olekukonko/ll"
)

// Mode selects the deposit calculator or the investment planner.
type Mode int

const (
	// Deposit asks for plain amounts and runs once.
	Deposit Mode = iota
	// Planner accepts "$" and "%" decorated amounts and offers to run again.
	Planner
)

const title = "Airgead Investment Calculator"

// Table column widths: year, balance, interest.
var columnWidths = []int{10, 35, 35}

// Options configures a Session.
type Options struct {
	Mode     Mode
	Width    int
	MinYears int
	MaxYears int
	// TTY enables cursor escapes that tidy up the pause prompt.
	TTY bool
}

// Session is one interactive calculator run over a single input.
type Session struct {
	opts   Options
	in     *minifmt.Reader
	out    io.Writer
	label  *minifmt.LabelFormatter
	table  *minifmt.TableFormatter
	logger *ll.Logger
	plan   interest.Plan
}

// NewSession returns a Session reading from in. Prompts, guidance and
// tables go to in's writer.
func NewSession(in *minifmt.Reader, opts Options, logger *ll.Logger) (*Session, error) {
	label, err := minifmt.NewLabelFormatter(opts.Width)
	if err != nil {
		return nil, err
	}
	table, err := minifmt.NewTableFormatter(opts.Width)
	if err != nil {
		return nil, err
	}
	if err := table.SetColumnWidths(columnWidths...); err != nil {
		return nil, err
	}
	table.SetHeaders("Year", "End of the Year Balance", "End of the Year Earned Interest")
	return &Session{
		opts:   opts,
		in:     in,
		out:    in.Writer(),
		label:  label,
		table:  table,
		logger: logger,
	}, nil
}

// Plan returns the values collected by the last run.
func (s *Session) Plan() interest.Plan { return s.plan }

// Run shows the banner, collects a plan, and prints the balance tables. In
// planner mode it repeats until the user declines, then says goodbye.
func (s *Session) Run() error {
	for {
		if err := s.runOnce(); err != nil {
			return err
		}
		if s.opts.Mode != Planner {
			return nil
		}
		again, err := s.askAgain()
		if err != nil {
			return err
		}
		if !again {
			_, err := fmt.Fprintln(s.out, "Goodbye!")
			return err
		}
	}
}

func (s *Session) runOnce() error {
	if _, err := fmt.Fprintf(s.out, "%s\n\n", s.Banner()); err != nil {
		return err
	}
	if err := s.Collect(); err != nil {
		return err
	}
	s.logger.Debugf("plan: principal=%.2f deposit=%.2f rate=%.2f%% years=%d",
		s.plan.Principal, s.plan.MonthlyDeposit, s.plan.RatePercent, s.plan.Years)
	if err := console.Pause(s.in, s.opts.TTY); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.out, "%s\n%s\n", s.Report(false), s.Report(true))
	return err
}

// Banner returns the program title framed by dashed separators.
func (s *Session) Banner() string {
	sep := s.label.HorizontalSeparator('-')
	return sep + "\n" + s.label.FormatFullBorder(title, '-') + "\n" + sep
}

// Collect prompts for the principal, monthly deposit, rate and term.
func (s *Session) Collect() error {
	money := " (in $)"
	preprocess := minifmt.StripDecorations
	if s.opts.Mode != Planner {
		money = ""
		preprocess = minifmt.Trim
	}
	positive := minifmt.Validation[float64]{
		Parse:      minifmt.ParseFloat,
		Valid:      minifmt.IsPositiveReal,
		Criteria:   "positive real number",
		Preprocess: preprocess,
	}

	var err error
	if s.plan.Principal, err = minifmt.Prompt(s.in, "Initial Investment Amount"+money+": ", positive); err != nil {
		return err
	}
	if s.plan.MonthlyDeposit, err = minifmt.Prompt(s.in, "Monthly Deposit"+money+": ", positive); err != nil {
		return err
	}
	if s.plan.RatePercent, err = minifmt.Prompt(s.in, "Annual Interest Rate (in %): ", positive); err != nil {
		return err
	}
	s.plan.Years, err = minifmt.Prompt(s.in, "Investment Term (Years): ", minifmt.Validation[int]{
		Parse:    minifmt.ParseInt,
		Valid:    minifmt.InRange(s.opts.MinYears, s.opts.MaxYears),
		Criteria: "integer between " + strconv.Itoa(s.opts.MinYears) + " and " + strconv.Itoa(s.opts.MaxYears),
	})
	return err
}

// Report renders the year-end schedule of the collected plan under a
// centered caption, with or without the monthly deposits.
func (s *Session) Report(withDeposits bool) string {
	suffix := ""
	if !withDeposits {
		suffix = "out"
	}
	caption := "Balance and Interest With" + suffix + " Additional Monthly Deposits"

	for _, y := range interest.Schedule(s.plan, withDeposits) {
		s.table.AddRow(strconv.Itoa(y.Number), money(y.Balance), money(y.Interest))
	}
	defer s.table.ClearRows()

	return s.label.HorizontalSeparatorWithSides('-', '+') + "\n" +
		s.label.FormatCentered(caption, '|') + "\n" +
		s.table.Render()
}

func (s *Session) askAgain() (bool, error) {
	answer, err := minifmt.Prompt(s.in, "Do you want to calculate with new values? (Y/N): ", minifmt.Validation[rune]{
		Parse: minifmt.ParseChar,
		Valid: func(r rune) bool {
			r = unicode.ToUpper(r)
			return r == 'Y' || r == 'N'
		},
		Criteria: "Y or N character",
		Strict:   true,
	})
	if err != nil {
		return false, err
	}
	return unicode.ToUpper(answer) == 'Y', nil
}

func money(v float64) string {
	return "$" + minifmt.FormatDecimal(v, minifmt.DefaultPrecision)
}
