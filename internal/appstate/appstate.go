// Package appstate runs a viewing session: it opens a window on the chosen
// backend, feeds window events through the view-state reducer and renders a
// frame whenever the state asks for one.
package appstate

import (
	"fmt"
	"log"
	"sync"

	"github.com/example/liv/internal/asset"
	"github.com/example/liv/internal/clipboard"
	"github.com/example/liv/internal/config"
	"github.com/example/liv/internal/notify"
	"github.com/example/liv/internal/render"
	"github.com/example/liv/internal/theme"
	"github.com/example/liv/internal/viewstate"
)

// Backend names accepted by WithBackend.
const (
	BackendGL    = "gl"
	BackendShiny = "shiny"
)

// AppState holds the session configuration.
type AppState struct {
	Image   *asset.Image
	Config  *config.Config
	Theme   *theme.Theme
	Backend string

	notifier *notify.Notifier

	onClose   func()
	closeOnce sync.Once

	// copyImage and copyPath are swapped out in tests.
	copyImage func(*asset.Image) error
	copyPath  func(string) error
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithImage sets the image displayed by the session.
func WithImage(img *asset.Image) Option { return func(a *AppState) { a.Image = img } }

// WithConfig sets the configuration used for panels, keys and rendering.
func WithConfig(cfg *config.Config) Option { return func(a *AppState) { a.Config = cfg } }

// WithTheme sets the colours of the background and overlay panels.
func WithTheme(th *theme.Theme) Option { return func(a *AppState) { a.Theme = th } }

// WithBackend selects BackendGL or BackendShiny.
func WithBackend(name string) Option { return func(a *AppState) { a.Backend = name } }

// WithNotifier sets the notifier used after clipboard actions.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		copyImage: func(img *asset.Image) error { return clipboard.WriteImage(img.Pixels) },
		copyPath:  clipboard.WritePath,
	}
	for _, o := range opts {
		o(a)
	}
	if a.Config == nil {
		a.Config = config.New()
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	if a.Backend == "" {
		a.Backend = a.Config.Backend
	}
	if a.Backend == "" {
		a.Backend = BackendGL
	}
	if a.notifier == nil {
		a.notifier = notify.New(notify.LoadPreferences())
		a.notifier.Enable(notify.EventCopy, a.Config.Notify.Copy)
	}
	return a
}

// Title is the window title for the session.
func (a *AppState) Title() string {
	if a.Image == nil {
		return a.Config.Title
	}
	return fmt.Sprintf("%s - %s", a.Config.Title, a.Image.Name())
}

// Run opens the window and blocks until it is closed. Errors from the
// graphics device end the session and are returned.
func (a *AppState) Run() error {
	if a.Image == nil {
		return fmt.Errorf("no image to display")
	}
	defer a.notifyClose()
	switch a.Backend {
	case BackendGL:
		return a.runGL()
	case BackendShiny:
		return a.runShiny()
	default:
		return fmt.Errorf("unknown backend %q", a.Backend)
	}
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

func (a *AppState) reducer() (viewstate.Reducer, error) {
	keys, err := a.Config.Bindings()
	if err != nil {
		return viewstate.Reducer{}, err
	}
	return viewstate.Reducer{Keys: keys, ZoomMultiplier: float32(a.Config.ZoomMultiplier)}, nil
}

func (a *AppState) filter() render.Filter {
	f, err := render.ParseFilter(a.Config.Filter)
	if err != nil {
		log.Printf("filter: %v, using %s", err, render.Linear)
		return render.Linear
	}
	return f
}

// perform runs a side effect requested by the reducer. Failures are logged
// and do not end the session.
func (a *AppState) perform(act viewstate.Action) {
	switch act {
	case viewstate.ActionCopyImage:
		if err := a.copyImage(a.Image); err != nil {
			log.Printf("copy image: %v", err)
			return
		}
		a.notifier.Copy(a.Image.Name(), a.Image.Pixels)
	case viewstate.ActionCopyPath:
		if a.Image.Path == "" {
			log.Printf("copy path: image was not loaded from a file")
			return
		}
		if err := a.copyPath(a.Image.Path); err != nil {
			log.Printf("copy path: %v", err)
			return
		}
		a.notifier.Copy(a.Image.Path, nil)
	}
}
