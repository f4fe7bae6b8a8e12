package appstate

import (
	"golang.org/x/mobile/event/paint"

	"github.com/example/liv/internal/viewstate"
)

// loop pumps events from win until the reducer asks to quit or rendering
// fails. At most one paint.Event is queued at a time.
func (a *AppState) loop(win eventWindow, r *frameRenderer) error {
	red, err := a.reducer()
	if err != nil {
		return err
	}
	st := viewstate.New(a.Config.InitialPanels())

	pending := false
	schedule := func() {
		if !pending {
			pending = true
			win.Send(paint.Event{})
		}
	}

	apply := func(ev interface{}) bool {
		res := red.Reduce(st, ev)
		st = res.State
		if res.Quit {
			return false
		}
		if res.Action != viewstate.ActionNone {
			a.perform(res.Action)
		}
		if res.Redraw {
			schedule()
		}
		return true
	}

	for {
		ev := win.NextEvent()
		if e, ok := ev.(paint.Event); ok {
			if !e.External {
				pending = false
			}
			emitted, err := r.render(st)
			if err != nil {
				return err
			}
			for _, ev := range emitted {
				if !apply(ev) {
					return nil
				}
			}
			continue
		}
		if !apply(ev) {
			return nil
		}
	}
}
