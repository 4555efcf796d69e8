// Package cli wires the command line: the window by default, plus headless
// evaluation, button replay and the MCP server.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-calc/internal/calc"
	"github.com/iburimskiy/particle-calc/internal/config"
	"github.com/iburimskiy/particle-calc/internal/server"
)

// WindowRunner opens the calculator window and blocks until it closes.
type WindowRunner func(cfg config.Config, dark bool, log *slog.Logger) error

type options struct {
	configPath string
	theme      string
	scientific bool
	mute       bool
	particles  int
	logLevel   string
}

// NewRootCommand builds the calc command tree. runWindow is called when no
// subcommand is given.
func NewRootCommand(runWindow WindowRunner) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:          "calc",
		Short:        "Calculator with an animated particle background",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return runWindow(cfg, cfg.Dark(os.Getenv), log)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	f := root.Flags()
	f.StringVar(&opts.theme, "theme", "", "colour theme (auto, light, dark)")
	f.BoolVar(&opts.scientific, "scientific", false, "start in scientific mode")
	f.BoolVar(&opts.mute, "mute", false, "disable the click sound")
	f.IntVar(&opts.particles, "particles", 0, "number of background particles")

	root.AddCommand(newEvalCommand(&opts), newPressCommand(&opts), newMCPCommand(&opts))
	return root
}

// load reads the config file and applies the flags the user set.
func (o *options) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = config.Theme(o.theme)
	}
	if flags.Changed("scientific") {
		cfg.Scientific = o.scientific
	}
	if flags.Changed("mute") {
		cfg.Sound = !o.mute
	}
	if flags.Changed("particles") {
		cfg.Particles = o.particles
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func newEvalCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "eval EXPRESSION...",
		Short:   "Evaluate an expression as the = button would",
		Example: "  calc eval 2+2\n  calc eval \"5 × 3\"",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			expression := strings.Join(args, "")
			display, err := calc.Evaluate(calc.NewExpressionEvaluator(), expression)
			if err != nil {
				log.Debug("Evaluation failed", "expression", expression, "error", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), display)
			return err
		},
	}
}

func newPressCommand(opts *options) *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:     "press TOKEN...",
		Short:   "Press buttons on a fresh calculator and print the display",
		Example: "  calc press 1 2 + 3 =\n  calc press --trace 4 x!",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			c := calc.New(calc.WithLogger(log))
			out := cmd.OutOrStdout()
			for _, tok := range args {
				display := c.Press(tok)
				if trace {
					if _, err := fmt.Fprintf(out, "%s\t%s\n", tok, display); err != nil {
						return err
					}
				}
			}
			if trace {
				return nil
			}
			_, err = fmt.Fprintln(out, c.Display())
			return err
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print the display after every token")
	return cmd
}

func newMCPCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the calculator as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return server.New(log).ServeStdio()
		},
	}
}
