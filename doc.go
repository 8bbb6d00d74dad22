// Package minifmt renders fixed-width console text and reads validated
// values from line-oriented input.
//
// Every formatter is bound to a render width, the number of columns no
// rendered line may exceed. Text that does not fit is truncated with a
// trailing "..." rather than overflowing; see [Truncate].
//
// # Labels
//
// [LabelFormatter] renders one bordered line in one of three [Style]s:
//
//	f, _ := minifmt.NewLabelFormatter(21)
//	f.FormatCentered("TEXT", '*')   // "*       TEXT        *"
//	f.FormatFullBorder("TEXT", '*') // "******* TEXT ********"
//	f.FormatSideBorder("TEXT", '*') // "* TEXT              *"
//
// Use [FormatDecimal] for fixed-point numbers such as money amounts.
//
// # Tables
//
// [TableFormatter] renders a "+-+|" bordered grid. Column widths must fit
// the render width; [TableFormatter.SetColumnWidths] returns
// [ErrColumnWidths] when they do not:
//
//	t, _ := minifmt.NewTableFormatter(80)
//	if err := t.SetColumnWidths(10, 35, 35); err != nil {
//		return err
//	}
//	t.SetHeaders("Year", "Balance", "Interest")
//	t.AddRow("1", "$1050.00", "$50.00")
//	fmt.Print(t.Render())
//	t.ClearRows()
//
// # Input
//
// [Prompt] asks for a value until the user enters one that parses and
// satisfies a predicate, printing guidance after every rejected line:
//
//	r := minifmt.NewReader(os.Stdin, os.Stdout)
//	years, err := minifmt.Prompt(r, "Years: ", minifmt.Validation[int]{
//		Parse:    minifmt.ParseInt,
//		Valid:    minifmt.InRange(1, 50),
//		Criteria: "integer between 1 and 50",
//	})
//
// The only errors Prompt returns come from the input itself; the end of
// input is reported as [ErrInputClosed].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidWidth] — render width below [MinWidth]
//   - [ErrColumnWidths] — table columns do not fit the render width
//   - [ErrInputClosed] — input ended while a value was expected
//   - [ErrParse] — text does not start with a value of the expected type
//   - [ErrLineTooLong] — input line exceeds the reader's limit
package minifmt
