package main

import (
	"io"

	"github.com/bjaus/minifmt"
	"github.com/bjaus/minifmt/internal/config"
	"github.com/bjaus/minifmt/internal/console"
	"github.com/olekukonko/ll"
	"github.com/spf13/cobra"
)

// options carries the persistent flags and the process streams shared by
// every subcommand.
type options struct {
	configPath string
	verbose    bool
	width      int

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	o := &options{stdin: stdin, stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:           "minifmt",
		Short:         "Console programs rendered with fixed-width text formatting",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "path to a YAML settings file")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log debug messages to stderr")
	flags.IntVar(&o.width, "width", 0, "render width in columns (overrides the config file)")

	cmd.AddCommand(
		newDepositCommand(o),
		newPlannerCommand(o),
		newClockCommand(o),
		newTrackerCommand(o),
	)
	return cmd
}

// load reads the settings file, if any, and applies the --width override.
func (o *options) load() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.width != 0 {
		cfg.Width = o.width
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (o *options) reader() *minifmt.Reader {
	return minifmt.NewReader(o.stdin, o.stdout)
}

func (o *options) logger(name string) *ll.Logger {
	return console.NewLogger(name, o.stderr, o.verbose)
}
