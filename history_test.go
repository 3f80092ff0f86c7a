package rnav_test

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rnav"
)

func newBookHistory(base string) *rnav.History {
	return rnav.NewHistory(rnav.NewResolver(rnav.MustTable(bookDefs()...)), rnav.HistoryOptions{Base: base})
}

func TestHistoryPush(t *testing.T) {
	h := newBookHistory("")

	_, ok := h.Current()
	assert.False(t, ok)
	assert.Equal(t, h.Base(), "/")

	loc := h.Push("/books/42?tab=words#top")
	assert.Equal(t, loc.Path, "/books/42")
	assert.Equal(t, loc.Query, "tab=words")
	assert.Equal(t, loc.Fragment, "top")
	assert.Equal(t, loc.Result.Name, "book-detail")
	assert.Equal(t, loc.Result.Param("id"), "42")

	cur, ok := h.Current()
	assert.True(t, ok)
	assert.Equal(t, cur.Raw, "/books/42?tab=words#top")
	assert.Equal(t, h.Len(), 1)
}

func TestHistoryBackForward(t *testing.T) {
	h := newBookHistory("/")
	h.Push("/")
	h.Push("/books")
	h.Push("/books/7")

	loc, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, loc.Result.Name, "books")

	loc, ok = h.Back()
	assert.True(t, ok)
	assert.Equal(t, loc.Result.Name, "home")

	loc, ok = h.Back()
	assert.False(t, ok)
	assert.Equal(t, loc.Result.Name, "home")

	loc, ok = h.Go(2)
	assert.True(t, ok)
	assert.Equal(t, loc.Result.Param("id"), "7")

	_, ok = h.Forward()
	assert.False(t, ok)

	_, ok = h.Go(0)
	assert.False(t, ok)
}

func TestHistoryPushTruncatesForward(t *testing.T) {
	h := newBookHistory("/")
	h.Push("/")
	h.Push("/books")
	h.Push("/books/7")
	h.Back()
	h.Back()

	h.Push("/search")
	assert.Equal(t, h.Len(), 2)

	_, ok := h.Forward()
	assert.False(t, ok)

	loc, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, loc.Result.Name, "home")
}

func TestHistoryReplace(t *testing.T) {
	h := newBookHistory("/")

	loc := h.Replace("/search")
	assert.Equal(t, loc.Result.Name, "search")
	assert.Equal(t, h.Len(), 1)

	h.Push("/books")
	h.Replace("/books/9")
	assert.Equal(t, h.Len(), 2)

	cur, _ := h.Current()
	assert.Equal(t, cur.Result.Param("id"), "9")

	loc, _ = h.Back()
	assert.Equal(t, loc.Result.Name, "search")
}

func TestHistoryBase(t *testing.T) {
	h := newBookHistory("/app/")

	loc := h.Push("/app")
	assert.Equal(t, loc.Path, "/")
	assert.Equal(t, loc.Result.Name, "home")

	loc = h.Push("/app/books/3/")
	assert.Equal(t, loc.Path, "/books/3")
	assert.Equal(t, loc.Result.Param("id"), "3")

	loc = h.Push("/books/3")
	assert.False(t, loc.Result.Matched)
	assert.Equal(t, loc.Path, "/books/3")
}

func TestHistoryNotFoundIsNotAnError(t *testing.T) {
	h := newBookHistory("/")

	loc := h.Push("/nowhere")
	assert.False(t, loc.Result.Matched)

	cur, ok := h.Current()
	assert.True(t, ok)
	assert.Equal(t, cur.Path, "/nowhere")
}

func TestHistoryListeners(t *testing.T) {
	h := newBookHistory("/")

	var calls []string
	unlistenA := h.Listen(func(to rnav.Location, from rnav.Location) {
		calls = append(calls, "a:"+from.Path+">"+to.Path)
	})
	h.Listen(func(to rnav.Location, from rnav.Location) {
		calls = append(calls, "b:"+to.Result.Name)
	})

	h.Push("/books")
	h.Push("/books/1")
	unlistenA()
	h.Back()

	assert.Equal(t, len(calls), 5)
	assert.Equal(t, calls[0], "a:>/books")
	assert.Equal(t, calls[1], "b:books")
	assert.Equal(t, calls[2], "a:/books>/books/1")
	assert.Equal(t, calls[3], "b:book-detail")
	assert.Equal(t, calls[4], "b:books")

	// A refused move notifies nobody
	h.Go(-5)
	assert.Equal(t, len(calls), 5)
}

func TestHistoryResolvesAgainstRebuiltTable(t *testing.T) {
	resolver := rnav.NewResolver(rnav.MustTable(bookDefs()...))
	h := rnav.NewHistory(resolver, rnav.HistoryOptions{})

	h.Push("/authors")
	h.Push("/")

	err := resolver.Rebuild(append(bookDefs(), rnav.RouteDef{Pattern: "/authors", Name: "authors", View: "AuthorsView"})...)
	assert.Nil(t, err)

	loc, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, loc.Result.Name, "authors")
}

// TestHistoryConcurrent drives one history from many goroutines; run with -race.
// The listener reads the history back, which would deadlock if listeners ran under the lock.
func TestHistoryConcurrent(t *testing.T) {
	resolver := rnav.NewResolver(rnav.MustTable(bookDefs()...))
	h := rnav.NewHistory(resolver, rnav.HistoryOptions{Base: "/library"})

	var notified, navigations atomic.Int64
	h.Listen(func(to rnav.Location, from rnav.Location) {
		notified.Add(1)
		h.Current()
		h.Len()
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				id := strconv.Itoa(worker*1000 + j)

				loc := h.Push("/library/books/" + id)
				navigations.Add(1)
				if loc.Result.Param("id") != id {
					t.Errorf("push resolved %s for id %s", loc.Result, id)
					return
				}

				if _, ok := h.Back(); ok {
					navigations.Add(1)
				}
				if _, ok := h.Forward(); ok {
					navigations.Add(1)
				}
				if j%10 == 0 {
					h.Replace("/library/search")
					navigations.Add(1)
				}
				h.Current()
			}
		}(i)
	}

	// Listeners come and go while navigation is under way
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			unlisten := h.Listen(func(rnav.Location, rnav.Location) {})
			unlisten()
		}
	}()

	wg.Wait()

	assert.Equal(t, notified.Load(), navigations.Load())
	assert.True(t, h.Len() > 0)

	cur, ok := h.Current()
	assert.True(t, ok)
	assert.True(t, cur.Result.Matched)
}
