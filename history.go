package rnav

import (
	"sync"

	"github.com/rohanthewiz/logger"
)

// HistoryOptions configures a History.
type HistoryOptions struct {
	// Base is the path prefix the application is mounted under, e.g. "/app".
	// Paths outside it resolve to NotFound. Empty means "/".
	Base string
	// Verbose logs every navigation.
	Verbose bool
}

// Location is one entry of the navigation history.
type Location struct {
	Raw      string // target as given to Push or Replace
	Path     string // normalized path relative to the base
	Query    string
	Fragment string
	Result   Result
}

// Listener is notified after each navigation with the new and previous locations.
type Listener func(to Location, from Location)

type listener struct {
	id int
	fn Listener
}

// History is a history-stack navigation source in the manner of the browser
// history API. Each navigation normalizes the target, strips the base and
// resolves it against whatever table the Resolver holds at that moment.
//
// History is safe for concurrent use. Listeners run outside the lock, in
// registration order.
type History struct {
	resolver *Resolver
	opts     HistoryOptions

	mu        sync.Mutex
	entries   []Location
	pos       int // index of the current entry, -1 before the first navigation
	listeners []listener
	nextID    int
}

// NewHistory returns an empty history resolving through resolver.
func NewHistory(resolver *Resolver, opts HistoryOptions) *History {
	if opts.Base == "" {
		opts.Base = "/"
	}
	opts.Base = Normalize(opts.Base)

	return &History{resolver: resolver, opts: opts, pos: -1}
}

// Base returns the normalized base path.
func (h *History) Base() string {
	return h.opts.Base
}

// Push navigates to raw, discarding any forward entries.
func (h *History) Push(raw string) Location {
	loc := h.locate(raw)

	h.mu.Lock()
	from := h.current()
	h.entries = append(h.entries[:h.pos+1], loc)
	h.pos = len(h.entries) - 1
	listeners := h.snapshot()
	h.mu.Unlock()

	h.notify(listeners, loc, from)
	return loc
}

// Replace navigates to raw in place of the current entry.
// On an empty history it behaves like Push.
func (h *History) Replace(raw string) Location {
	loc := h.locate(raw)

	h.mu.Lock()
	from := h.current()
	if h.pos < 0 {
		h.entries = append(h.entries, loc)
		h.pos = 0
	} else {
		h.entries[h.pos] = loc
	}
	listeners := h.snapshot()
	h.mu.Unlock()

	h.notify(listeners, loc, from)
	return loc
}

// Back moves one entry back. ok is false if there is nothing to go back to.
func (h *History) Back() (Location, bool) {
	return h.Go(-1)
}

// Forward moves one entry forward. ok is false if there is nothing ahead.
func (h *History) Forward() (Location, bool) {
	return h.Go(1)
}

// Go moves delta entries through the history. Moves of zero or past either
// end change nothing and return the current location with ok false.
// The entry is resolved again, so a rebuilt table applies to old entries too.
func (h *History) Go(delta int) (Location, bool) {
	h.mu.Lock()
	target := h.pos + delta
	if delta == 0 || target < 0 || target >= len(h.entries) {
		loc := h.current()
		h.mu.Unlock()
		return loc, false
	}

	from := h.current()
	loc := h.relocate(h.entries[target])
	h.entries[target] = loc
	h.pos = target
	listeners := h.snapshot()
	h.mu.Unlock()

	h.notify(listeners, loc, from)
	return loc, true
}

// Current returns the current location; ok is false before the first navigation.
func (h *History) Current() (Location, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.current(), h.pos >= 0
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.entries)
}

// Listen registers fn for navigation events and returns a function removing it.
func (h *History) Listen(fn Listener) (unlisten func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners = append(h.listeners, listener{id: id, fn: fn})
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		for i, l := range h.listeners {
			if l.id == id {
				h.listeners = append(h.listeners[:i:i], h.listeners[i+1:]...)
				return
			}
		}
	}
}

// locate turns a raw target into a resolved location.
func (h *History) locate(raw string) Location {
	_, query, fragment := SplitURL(raw)
	return h.relocate(Location{Raw: raw, Query: query, Fragment: fragment})
}

// relocate resolves loc.Raw again against the current table.
func (h *History) relocate(loc Location) Location {
	path, _, _ := SplitURL(loc.Raw)
	normalized := Normalize(path)

	stripped, ok := StripBase(h.opts.Base, normalized)
	if !ok {
		loc.Path = normalized
		loc.Result = NotFound(normalized)
		return loc
	}

	loc.Path = stripped
	loc.Result = h.resolver.Resolve(stripped)
	return loc
}

// current must be called with mu held.
func (h *History) current() Location {
	if h.pos < 0 {
		return Location{}
	}
	return h.entries[h.pos]
}

// snapshot must be called with mu held.
func (h *History) snapshot() []listener {
	if len(h.listeners) == 0 {
		return nil
	}
	return append([]listener(nil), h.listeners...)
}

func (h *History) notify(listeners []listener, to Location, from Location) {
	if h.opts.Verbose {
		logger.Info("navigate", "from", from.Path, "to", to.Path, "result", to.Result.String())
	}

	for _, l := range listeners {
		l.fn(to, from)
	}
}
