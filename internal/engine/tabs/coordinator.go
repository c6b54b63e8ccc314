package tabs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
)

// User-visible statuses set by the coordinator.
const (
	StatusEmpty      = "Nothing found for this category yet."
	StatusLoadFailed = "Could not load. Check API key restrictions + YouTube Data API enabled."
	StatusUnknownTab = "Unknown tab."
)

// ErrUnknownTab is reported for a selection with no resolver.
var ErrUnknownTab = errors.New("unknown tab")

// LoadState describes where a load ended up.
type LoadState string

const (
	StateIdle      LoadState = "idle"
	StateLoading   LoadState = "loading"
	StateRendered  LoadState = "rendered"
	StateFailed    LoadState = "failed"
	StateDiscarded LoadState = "discarded" // superseded before it settled; never shown
)

// Display is the rendering collaborator. Calls are made with the
// coordinator lock held and only on behalf of the current load.
type Display interface {
	Clear(tab engine.Tab)
	Render(tab engine.Tab, items []engine.Item)
	SetStatus(status string)
}

// Outcome is what a single Select call resolved to.
type Outcome struct {
	Token uint64
	Tab   engine.Tab
	State LoadState
	Err   error
}

// Coordinator serializes tab loads against one display. Every selection gets
// a new token; only the load holding the latest token may touch the display.
// Superseded loads run to completion and their results are dropped.
type Coordinator struct {
	mu        sync.Mutex
	latest    uint64
	tab       engine.Tab
	state     LoadState
	display   Display
	resolvers map[engine.Tab]Resolver
}

func NewCoordinator(display Display, resolvers map[engine.Tab]Resolver) *Coordinator {
	return &Coordinator{
		state:     StateIdle,
		display:   display,
		resolvers: resolvers,
	}
}

// BeginLoad claims a new token for tab and clears the display.
func (c *Coordinator) BeginLoad(tab engine.Tab) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest++
	c.tab = tab
	c.state = StateLoading
	c.display.Clear(tab)
	engine.IncrLoadsStarted()
	return c.latest
}

// IsCurrent reports whether token belongs to the most recent selection.
func (c *Coordinator) IsCurrent(token uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return token == c.latest
}

// State reports the latest selection and how far it has got.
func (c *Coordinator) State() (engine.Tab, uint64, LoadState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tab, c.latest, c.state
}

// Select loads tab and commits the result if no newer selection started
// in the meantime. It blocks until the resolver returns.
func (c *Coordinator) Select(ctx context.Context, tab engine.Tab) Outcome {
	token := c.BeginLoad(tab)
	out := Outcome{Token: token, Tab: tab}

	resolver, ok := c.resolvers[tab]
	if !ok {
		out.Err = fmt.Errorf("%w: %q", ErrUnknownTab, tab)
		c.commit(token, &out, func() LoadState {
			c.display.SetStatus(StatusUnknownTab)
			return StateFailed
		})
		return out
	}

	progress := func(status string) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if token == c.latest {
			c.display.SetStatus(status)
		}
	}

	var res Result
	err := engine.TrackOperation(ctx, "load:"+string(tab), func(ctx context.Context) error {
		var rerr error
		res, rerr = resolver.Resolve(ctx, progress)
		return rerr
	})

	c.commit(token, &out, func() LoadState {
		switch {
		case err != nil:
			slog.Error("tab load failed",
				slog.String("tab", string(tab)),
				slog.Uint64("token", token),
				slog.Any("error", err))
			out.Err = err
			c.display.SetStatus(StatusLoadFailed)
			return StateFailed
		case res.NotConfigured:
			c.display.SetStatus(res.Status)
			return StateRendered
		default:
			c.display.Render(tab, res.Items)
			if len(res.Items) == 0 {
				c.display.SetStatus(StatusEmpty)
			} else {
				c.display.SetStatus("")
			}
			return StateRendered
		}
	})
	if out.State == StateDiscarded && err != nil {
		slog.Debug("superseded tab load failed",
			slog.String("tab", string(tab)), slog.Any("error", err))
		out.Err = err
	}
	return out
}

// commit runs apply under the lock when token is still current. A stale
// load never reaches the display.
func (c *Coordinator) commit(token uint64, out *Outcome, apply func() LoadState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.latest {
		out.State = StateDiscarded
		engine.IncrLoadsDiscarded()
		return
	}
	out.State = apply()
	c.state = out.State
	if out.State == StateFailed {
		engine.IncrLoadsFailed()
	} else {
		engine.IncrLoadsRendered()
	}
}
