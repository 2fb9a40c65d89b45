package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmagro/clikit/internal/config"
	"github.com/dmagro/clikit/internal/env"
	"github.com/dmagro/clikit/internal/format"
	"github.com/dmagro/clikit/internal/logging"
	"github.com/dmagro/clikit/internal/output"
	"github.com/dmagro/clikit/internal/prompt"
)

// app is built once per invocation in PersistentPreRunE.
type app struct {
	s   streams
	cfg *config.Config
	env env.Environment
	r   *output.Renderer
}

// stderrRenderer writes everything to stderr, for commands whose stdout is
// captured by the calling script. stdout is a pipe in that case, so the
// same-line decision ignores the interactive check.
func (a *app) stderrRenderer(component string) *output.Renderer {
	palette := a.r.Palette()
	return output.New(output.Options{
		Out:      a.s.err,
		Err:      a.s.err,
		Palette:  &palette,
		SameLine: !a.env.Windows,
		Bar:      output.BarStyle{Open: a.cfg.Bar.Open, Close: a.cfg.Bar.Close, Fill: a.cfg.Bar.Fill},
		Sleep:    a.s.sleep,
		Exit:     a.s.exit,
		Logger:   logging.New(component),
	})
}

func (a *app) prompter() *prompt.Prompter {
	return prompt.New(a.stderrRenderer("prompt"), a.s.in, a.cfg.Confirm.Accept)
}

func newRootCmd(s streams) *cobra.Command {
	a := &app{s: s}

	var (
		cfgPath   string
		envFile   string
		colorFlag string
		noColor   bool
		verbose   bool
		quiet     bool
	)

	root := &cobra.Command{
		Use:   "clikit",
		Short: "Terminal output helpers for shell scripts",
		Long: `clikit prints colored messages, same-line progress bars and countdowns,
asks questions, and validates a script's positional arguments.

Same-line output (spin, progress, countdown) rewrites the current row. Finish
such a sequence with "clikit newline" or "clikit progress-complete" so later
output starts on a fresh line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("verbose") && os.Getenv("CLIKIT_VERBOSE") != "" {
				verbose = true
			}
			logging.Setup(verbose, quiet)

			if envFile == "" {
				envFile = os.Getenv("CLIKIT_ENV_FILE")
			}
			if envFile != "" {
				n, err := env.LoadFile(envFile)
				if err != nil {
					return err
				}
				logging.New("clikit").Debug("loaded env file", "path", envFile, "vars", n)
			}

			path, optional := cfgPath, false
			if path == "" {
				path = os.Getenv("CLIKIT_CONFIG")
			}
			if path == "" {
				path, optional = config.DefaultPath, true
			}
			cfg, err := config.Load(path, optional)
			if err != nil {
				return err
			}

			mode := cfg.ColorMode()
			if cmd.Flags().Changed("color") {
				if mode, err = env.ParseColorMode(colorFlag); err != nil {
					return err
				}
			}
			if noColor {
				mode = env.ColorNever
			}

			a.cfg = cfg
			a.env = s.detect()
			enabled := a.env.Color(mode)
			color.NoColor = !enabled

			palette, err := format.NewPalette(cfg.Palette, enabled)
			if err != nil {
				return err
			}

			a.r = output.New(output.Options{
				Out:      s.out,
				Err:      s.err,
				Palette:  &palette,
				SameLine: a.env.SameLine(),
				Bar:      output.BarStyle{Open: cfg.Bar.Open, Close: cfg.Bar.Close, Fill: cfg.Bar.Fill},
				Sleep:    s.sleep,
				Exit:     s.exit,
				Logger:   logging.New("output"),
			})

			logging.New("clikit").Debug("environment",
				"interactive", a.env.Interactive,
				"windows", a.env.Windows,
				"color", enabled,
				"same_line", a.env.SameLine())
			return nil
		},
	}

	root.SetIn(s.in)
	root.SetOut(s.out)
	root.SetErr(s.err)

	root.PersistentFlags().StringVar(&cfgPath, "config", "", fmt.Sprintf("Config file path (env: CLIKIT_CONFIG, default %s if present)", config.DefaultPath))
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "Load KEY=VALUE pairs before reading the config (env: CLIKIT_ENV_FILE)")
	root.PersistentFlags().StringVar(&colorFlag, "color", "auto", "Color output: auto|always|never")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output (same as --color never)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug diagnostics on stderr (env: CLIKIT_VERBOSE)")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only report errors on stderr")

	root.AddCommand(
		writeCmd(a),
		spinCmd(a),
		newlineCmd(a),
		infoCmd(a),
		warnCmd(a),
		errorCmd(a),
		fatalCmd(a),
		beepCmd(a),
		colorCmd(a),
		colorsCmd(a),
		progressCmd(a),
		progressCompleteCmd(a),
		countdownCmd(a),
		blockCmd(a),
		lengthCmd(a),
		inputCmd(a),
		confirmCmd(a),
		captureCmd(a),
	)

	return root
}
