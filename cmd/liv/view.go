package main

import (
	"fmt"

	"github.com/example/liv/internal/appstate"
	"github.com/example/liv/internal/asset"
	"github.com/example/liv/internal/clipboard"
)

// readClipboardFn is replaced in tests.
var readClipboardFn = clipboard.ReadImage

type viewCmd struct {
	*root
	path string
}

// newViewCmd takes the last positional argument as the image path.
func newViewCmd(args []string, r *root) (*viewCmd, error) {
	v := &viewCmd{root: r}
	switch {
	case r.fromClipboard && len(args) > 0:
		return nil, fmt.Errorf("-from-clipboard cannot be combined with an image path")
	case r.fromClipboard:
	case len(args) == 0:
		return nil, &UsageError{of: r}
	default:
		v.path = args[len(args)-1]
	}
	return v, nil
}

func (v *viewCmd) load() (*asset.Image, error) {
	if !v.fromClipboard {
		return asset.Load(v.path)
	}
	img, err := readClipboardFn()
	if err != nil {
		return nil, fmt.Errorf("failed to read clipboard: %w", err)
	}
	return asset.FromImage(img, "")
}

func (v *viewCmd) Run() error {
	img, err := v.load()
	if err != nil {
		return err
	}
	st := appstate.New(
		appstate.WithImage(img),
		appstate.WithConfig(v.config),
		appstate.WithTheme(v.activeTheme),
		appstate.WithBackend(v.config.Backend),
		appstate.WithNotifier(v.notifier),
	)
	return st.Run()
}
