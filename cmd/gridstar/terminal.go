package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/randalmurphal/gridstar/pkg/gridstar"
	"github.com/randalmurphal/gridstar/pkg/gridstar/render"
)

// newScreen is swapped out in tests.
var newScreen = tcell.NewScreen

// terminal animates a search on a tcell screen. Esc, Ctrl-C or q cancel
// the search.
type terminal struct {
	screen tcell.Screen
	keys   chan struct{}
	once   sync.Once
}

func openTerminal(cancel context.CancelFunc) (*terminal, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.Clear()

	t := &terminal{screen: screen, keys: make(chan struct{}, 1)}
	go t.poll(cancel)
	return t, nil
}

func (t *terminal) poll(cancel context.CancelFunc) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				cancel()
			}
			select {
			case t.keys <- struct{}{}:
			default:
			}
		}
	}
}

// frame returns a step hook that redraws the grid and waits delay.
func (t *terminal) frame(delay time.Duration) gridstar.StepHook {
	return func(v gridstar.View, info gridstar.StepInfo) {
		status := fmt.Sprintf("step %d, expanding cell %d", info.Step, info.Current)
		if info.Done {
			status = render.Outcome(v)
		}
		render.Draw(t.screen, v, !info.Done, status)
		t.screen.Show()
		if !info.Done {
			time.Sleep(delay)
		}
	}
}

// finish draws the final map and waits for a key press.
func (t *terminal) finish(ctx context.Context, v gridstar.View) {
	select {
	case <-t.keys:
	default:
	}
	render.Draw(t.screen, v, false, render.Outcome(v)+" Press any key.")
	t.screen.Show()
	select {
	case <-t.keys:
	case <-ctx.Done():
	}
}

func (t *terminal) close() {
	t.once.Do(t.screen.Fini)
}
