package main

import (
	"github.com/bjaus/minifmt/internal/clock"
	"github.com/spf13/cobra"
)

func newClockCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "clock",
		Short: "Display a 12-hour and a 24-hour clock and advance them from a menu",
		Long: "Display a 12-hour and a 24-hour clock and advance them from a menu.\n\n" +
			"Each clock face is clock.width columns wide; --width overrides it.",
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}
			width := cfg.Clock.Width
			if o.width != 0 {
				width = o.width
			}
			logger := o.logger("clock")
			logger.Debugf("face width %d", width)

			s, err := clock.NewSession(o.reader(), width, logger)
			if err != nil {
				return err
			}
			return s.Run()
		},
	}
}
