package tracker

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/minifmt"
	"github.com/olekukonko/ll"
)

const (
	choiceFind = iota + 1
	choiceList
	choiceHistogram
	choiceExit
)

var menu = []string{
	"1. Find item frequency",
	"2. List items with frequencies",
	"3. List item histogram with frequencies",
	"4. Exit",
}

// Session is the interactive item tracker menu over a single input.
type Session struct {
	tracker *Tracker
	in      *minifmt.Reader
	out     io.Writer
	label   *minifmt.LabelFormatter
	logger  *ll.Logger
}

// NewSession returns a Session over t, rendering menus width columns wide.
func NewSession(t *Tracker, in *minifmt.Reader, width int, logger *ll.Logger) (*Session, error) {
	label, err := minifmt.NewLabelFormatter(width)
	if err != nil {
		return nil, err
	}
	return &Session{tracker: t, in: in, out: in.Writer(), label: label, logger: logger}, nil
}

// Run shows the menu and handles choices until the user exits.
func (s *Session) Run() error {
	for {
		if _, err := io.WriteString(s.out, s.Menu()); err != nil {
			return err
		}
		choice, err := minifmt.Prompt(s.in, "State your choice: ", minifmt.Validation[int]{
			Parse:    minifmt.ParseInt,
			Valid:    minifmt.InRange(choiceFind, choiceExit),
			Criteria: "integer 1 through 4",
		})
		if err != nil {
			return err
		}
		if err := s.handle(choice); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(s.out); err != nil {
			return err
		}
		if choice == choiceExit {
			return nil
		}
	}
}

// Menu renders the option list.
func (s *Session) Menu() string {
	var sb strings.Builder
	sb.WriteString(s.label.HorizontalSeparator('*') + "\n")
	sb.WriteString(s.label.FormatFullBorder("Item Tracker Menu", '*') + "\n")
	sb.WriteString(s.label.FormatSideBorder("Options:", '*') + "\n")
	for _, item := range menu {
		sb.WriteString(s.label.FormatSideBorder(item, '*') + "\n")
	}
	sb.WriteString(s.label.HorizontalSeparator('*') + "\n")
	return sb.String()
}

func (s *Session) handle(choice int) error {
	s.logger.Debugf("menu choice %d", choice)
	switch choice {
	case choiceFind:
		return s.find()
	case choiceList:
		return Write(s.out, Plain, s.tracker.Items(), s.label.Width())
	case choiceHistogram:
		return Write(s.out, Histogram, s.tracker.Items(), s.label.Width())
	default:
		_, err := fmt.Fprintln(s.out, "Goodbye!")
		return err
	}
}

func (s *Session) find() error {
	if _, err := io.WriteString(s.out, "Please, enter item to search for: "); err != nil {
		return err
	}
	var item string
	for item == "" {
		line, err := s.in.ReadLine()
		if errors.Is(err, minifmt.ErrLineTooLong) {
			if err := s.in.Reset(); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		item = line
	}

	n := s.tracker.Frequency(item)
	var err error
	switch n {
	case 0:
		_, err = fmt.Fprintf(s.out, "Item \"%s\" is not present in the list.\n", item)
	case 1:
		_, err = fmt.Fprintf(s.out, "Item \"%s\" encountered 1 time.\n", item)
	default:
		_, err = fmt.Fprintf(s.out, "Item \"%s\" encountered %d times.\n", item, n)
	}
	return err
}
