package main

import (
	"strings"

	"github.com/bjaus/minifmt/internal/tracker"
	"github.com/spf13/cobra"
)

func newTrackerCommand(o *options) *cobra.Command {
	var (
		input  string
		output string
		format string
	)

	names := make([]string, 0, len(tracker.Formats()))
	for _, f := range tracker.Formats() {
		names = append(names, f.String())
	}

	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Count item frequencies in a list and browse them from a menu",
		Long: "Count how often each line of the input file names an item, back the\n" +
			"counts up to the output file, then browse them from a menu.\n\n" +
			"With --format the listing is printed once and no menu is shown.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var listing tracker.Format
			if format != "" {
				f, err := tracker.ParseFormat(format)
				if err != nil {
					return err
				}
				listing = f
			}

			cfg, err := o.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("input") {
				cfg.Tracker.Input = input
			}
			if cmd.Flags().Changed("output") {
				cfg.Tracker.Output = output
			}
			logger := o.logger("tracker")

			var t tracker.Tracker
			if err := t.LoadFile(cfg.Tracker.Input); err != nil {
				return err
			}
			logger.Infof("loaded %d distinct items from %s", t.Len(), cfg.Tracker.Input)
			if t.Len() == 0 {
				logger.Warnf("%s lists no items", cfg.Tracker.Input)
			}
			if err := t.ExportFile(cfg.Tracker.Output); err != nil {
				return err
			}
			logger.Infof("wrote backup to %s", cfg.Tracker.Output)

			if listing != "" {
				return tracker.Write(o.stdout, listing, t.Items(), cfg.Width)
			}
			s, err := tracker.NewSession(&t, o.reader(), cfg.Width, logger)
			if err != nil {
				return err
			}
			return s.Run()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&input, "input", "i", "", "item list to read (overrides tracker.input)")
	flags.StringVarP(&output, "output", "o", "", "backup file to write (overrides tracker.output)")
	flags.StringVarP(&format, "format", "f", "", "print the listing as one of: "+strings.Join(names, ", "))
	return cmd
}
