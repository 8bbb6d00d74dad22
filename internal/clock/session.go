package clock

import (
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/minifmt"
	"github.com/olekukonko/ll"
)

// Gap between the 12- and 24-hour clock faces.
const separator = "    "

var menu = []string{
	"1 - Add One Hour",
	"2 - Add One Minute",
	"3 - Add One Second",
	"4 - Exit Program",
}

// Session is an interactive clock over a single input.
type Session struct {
	clock  Clock
	in     *minifmt.Reader
	out    io.Writer
	label  *minifmt.LabelFormatter
	logger *ll.Logger
}

// NewSession returns a Session rendering each clock face width columns
// wide.
func NewSession(in *minifmt.Reader, width int, logger *ll.Logger) (*Session, error) {
	label, err := minifmt.NewLabelFormatter(width)
	if err != nil {
		return nil, err
	}
	return &Session{in: in, out: in.Writer(), label: label, logger: logger}, nil
}

// Clock returns the current time.
func (s *Session) Clock() Clock { return s.clock }

// Run asks for the starting time, then applies menu choices until the user
// exits.
func (s *Session) Run() error {
	if err := s.ReadTime(); err != nil {
		return err
	}
	for {
		if _, err := io.WriteString(s.out, s.Menu()); err != nil {
			return err
		}
		more, err := s.step()
		if err != nil || !more {
			return err
		}
	}
}

// ReadTime prompts for hours, minutes and seconds in 24-hour format.
func (s *Session) ReadTime() error {
	if _, err := fmt.Fprintln(s.out, "Please enter time in 24-hour format:"); err != nil {
		return err
	}
	h, err := minifmt.Prompt(s.in, "Hours: ", unit(23, "integer in range from 0 to 23"))
	if err != nil {
		return err
	}
	m, err := minifmt.Prompt(s.in, "Minutes: ", unit(59, "integer in range from 0 to 59"))
	if err != nil {
		return err
	}
	sec, err := minifmt.Prompt(s.in, "Seconds: ", unit(59, "integer in range from 0 to 59"))
	if err != nil {
		return err
	}
	s.clock, err = New(h, m, sec)
	return err
}

func unit(hi int, criteria string) minifmt.Validation[int] {
	return minifmt.Validation[int]{
		Parse:    minifmt.ParseInt,
		Valid:    minifmt.InRange(0, hi),
		Criteria: criteria,
	}
}

// Menu renders the list of choices.
func (s *Session) Menu() string {
	var sb strings.Builder
	sb.WriteString(s.border(false))
	for _, item := range menu {
		sb.WriteString(s.label.FormatSideBorder(item, '*'))
		sb.WriteString("\n")
	}
	sb.WriteString(s.border(false))
	return sb.String()
}

// Display renders both clock faces side by side.
func (s *Session) Display() string {
	var sb strings.Builder
	sb.WriteString(s.border(true))
	sb.WriteString(s.pair("12-Hour Clock", "24-Hour Clock"))
	sb.WriteString(s.pair(s.clock.Format12(), s.clock.Format24()))
	sb.WriteString(s.border(true))
	return sb.String()
}

func (s *Session) pair(left, right string) string {
	return s.label.FormatCentered(left, '*') + separator + s.label.FormatCentered(right, '*') + "\n"
}

func (s *Session) border(double bool) string {
	line := s.label.HorizontalSeparator('*')
	if double {
		line += separator + line
	}
	return line + "\n"
}

func (s *Session) step() (bool, error) {
	choice, err := minifmt.Prompt(s.in, "Enter your choice: ", minifmt.Validation[int]{
		Parse: minifmt.ParseInt,
		Valid: minifmt.InRange(1, len(menu)),
	})
	if err != nil {
		return false, err
	}
	switch choice {
	case 1:
		s.clock.AddHour()
	case 2:
		s.clock.AddMinute()
	case 3:
		s.clock.AddSecond()
	default:
		_, err := fmt.Fprintln(s.out, s.label.FormatSideBorder("Exiting program...", '*'))
		return false, err
	}
	s.logger.Debugf("choice %d: %s", choice, s.clock.Format24())
	_, err = io.WriteString(s.out, s.Display())
	return true, err
}
