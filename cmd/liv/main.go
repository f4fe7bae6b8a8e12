package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/liv/internal/appstate"
	"github.com/example/liv/internal/config"
	"github.com/example/liv/internal/notify"
	"github.com/example/liv/internal/render"
	"github.com/example/liv/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs       *flag.FlagSet
	program  string
	stdout   io.Writer
	config   *config.Config
	notifier *notify.Notifier

	themeName      string
	backend        string
	filter         string
	zoomMultiplier float64
	debug          bool
	copyAlerts     bool
	fromClipboard  bool

	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot(cfg *config.Config) *root {
	r := &root{
		fs:       flag.NewFlagSet("liv", flag.ExitOnError),
		program:  "liv",
		stdout:   os.Stdout,
		config:   cfg,
		notifier: notify.New(notify.LoadPreferences()),
	}
	backend := cfg.Backend
	if backend == "" {
		backend = appstate.BackendGL
	}
	r.fs.StringVar(&r.backend, "backend", backend, "rendering backend (gl, shiny)")
	r.fs.StringVar(&r.filter, "filter", cfg.Filter, "texture magnification filter (linear, nearest)")
	r.fs.Float64Var(&r.zoomMultiplier, "zoom-multiplier", cfg.ZoomMultiplier, "percent zoom change per scroll step")
	r.fs.BoolVar(&r.debug, "debug", cfg.PrintDebugInfo, "log renderer diagnostics")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.fromClipboard, "from-clipboard", false, "view the image currently on the clipboard")

	// Precedence: CLI > Env > Config > Default
	// The flag default stays empty so Run can fall back to LIV_THEME and the config.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (dark, light or a theme file)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) subcommand(name string) *root {
	sub := *r
	sub.program = strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &sub
}

// applyFlags copies the parsed flags over the loaded configuration.
func (r *root) applyFlags() error {
	if _, err := render.ParseFilter(r.filter); err != nil {
		return err
	}
	if r.zoomMultiplier <= 0 {
		return fmt.Errorf("-zoom-multiplier must be positive, got %v", r.zoomMultiplier)
	}
	switch r.backend {
	case appstate.BackendGL, appstate.BackendShiny:
	default:
		return fmt.Errorf("unknown backend %q", r.backend)
	}
	r.config.Backend = r.backend
	r.config.Filter = r.filter
	r.config.ZoomMultiplier = r.zoomMultiplier
	r.config.PrintDebugInfo = r.debug
	r.config.Notify.Copy = r.copyAlerts
	r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	return nil
}

func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("LIV_THEME")
	}
	if name == "" {
		name = r.config.Theme
	}
	loader := theme.NewLoader()
	loader.Extra = r.config.Themes
	t, err := loader.Load(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		return theme.Default()
	}
	return t
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 && !r.fromClipboard {
		return &UsageError{of: r}
	}
	if err := r.applyFlags(); err != nil {
		return err
	}
	r.activeTheme = r.resolveTheme()

	var (
		cmd runnable
		err error
	)
	cmdName := r.fs.Arg(0)
	subArgs := []string{}
	if r.fs.NArg() > 0 {
		subArgs = r.fs.Args()[1:]
	}
	switch cmdName {
	case "info":
		cmd, err = parseInfoCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		cmd, err = newViewCmd(r.fs.Args(), r)
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	loader := config.NewLoader(version, configPathOverride)
	if p := os.Getenv("LIV_CONFIG"); p != "" {
		loader.OverridePath = p
	}
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := newRoot(cfg)
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
