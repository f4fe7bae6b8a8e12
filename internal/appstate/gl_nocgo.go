//go:build !cgo

package appstate

import "errors"

func (a *AppState) runGL() error {
	return errors.New("the gl backend needs a cgo build, use -backend shiny")
}
