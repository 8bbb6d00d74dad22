package main

import (
	"github.com/bjaus/minifmt/internal/airgead"
	"github.com/bjaus/minifmt/internal/console"
	"github.com/spf13/cobra"
)

func newDepositCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit",
		Short: "Show year-end balances with and without monthly deposits",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runAirgead(o, airgead.Deposit)
		},
	}
}

func newPlannerCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "planner",
		Short: "Plan investments repeatedly, accepting $ and % decorated amounts",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runAirgead(o, airgead.Planner)
		},
	}
}

func runAirgead(o *options, mode airgead.Mode) error {
	cfg, err := o.load()
	if err != nil {
		return err
	}
	term, name := cfg.Deposit, "deposit"
	if mode == airgead.Planner {
		term, name = cfg.Planner, "planner"
	}
	logger := o.logger(name)
	logger.Debugf("width %d, years %d..%d", cfg.Width, term.MinYears, term.MaxYears)

	s, err := airgead.NewSession(o.reader(), airgead.Options{
		Mode:     mode,
		Width:    cfg.Width,
		MinYears: term.MinYears,
		MaxYears: term.MaxYears,
		TTY:      console.IsTerminal(o.stdout),
	}, logger)
	if err != nil {
		return err
	}
	return s.Run()
}
