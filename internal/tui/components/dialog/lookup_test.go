package dialog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/billie-coop/showcase/internal/dialog"
	"github.com/billie-coop/showcase/internal/search"
	"github.com/billie-coop/showcase/internal/tui/components/core"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func lookupDirectory(t *testing.T) *search.Directory {
	t.Helper()
	dir, err := search.LoadDirectory()
	require.NoError(t, err)
	return dir
}

// feed runs cmd and hands fetch results and timer fires back to body until
// nothing is left.
func feed(body dialog.Body, cmds ...tea.Cmd) {
	for _, cmd := range cmds {
		for _, msg := range collect(cmd, 200*time.Millisecond) {
			switch msg.(type) {
			case lookupPageMsg, core.TimerFiredMsg:
				_, next := body.Update(msg)
				feed(body, next)
			}
		}
	}
}

func newLookup(t *testing.T, s search.Searcher) (*LookupBody, *[]any) {
	t.Helper()
	body, results := newBody(NewLookup(LookupProps{
		Title:    "Find a user",
		Searcher: s,
		PageSize: 5,
		Debounce: 10 * time.Millisecond,
		Rows:     3,
	}))
	feed(body, body.Init())
	return body.(*LookupBody), results
}

func TestLookupBody(t *testing.T) {
	t.Run("loads the first page", func(t *testing.T) {
		body, _ := newLookup(t, lookupDirectory(t))
		require.False(t, body.Loading())
		require.Len(t, body.Items(), 5)

		item, ok := body.Highlighted()
		require.True(t, ok)
		require.Equal(t, search.Item{Label: "Karina Oliveira", Value: "1"}, item)

		view := ansi.Strip(body.View())
		require.Contains(t, view, "Find a user")
		require.Contains(t, view, "Karina Oliveira")
		require.Contains(t, view, "1 of 120")
	})

	t.Run("scrolling near the end loads more", func(t *testing.T) {
		body, _ := newLookup(t, lookupDirectory(t))

		_, cmd := body.Update(keyPress("down"))
		require.Nil(t, cmd)
		_, cmd = body.Update(keyPress("down"))
		require.NotNil(t, cmd)
		require.True(t, body.Loading())

		// a second request while loading is not issued
		_, again := body.Update(keyPress("down"))
		require.Nil(t, again)

		feed(body, cmd)
		require.Len(t, body.Items(), 10)
		require.Contains(t, ansi.Strip(body.View()), "4 of 120")
	})

	t.Run("typing searches after a pause", func(t *testing.T) {
		body, results := newLookup(t, lookupDirectory(t))

		var cmds []tea.Cmd
		for _, k := range []string{"s", "i", "l", "v", "a"} {
			_, cmd := body.Update(keyPress(k))
			cmds = append(cmds, cmd)
		}
		feed(body, cmds...)

		require.Equal(t, []search.Item{
			{Label: "Úrsula Silva", Value: "2"},
			{Label: "Mariana Silva", Value: "12"},
		}, body.Items()[:2])
		require.Len(t, body.Items(), 5)

		body.Update(keyPress("down"))
		body.Update(keyPress("enter"))
		require.Len(t, *results, 1)
		require.Equal(t, body.Items()[1], (*results)[0])
	})

	t.Run("stale pages are ignored", func(t *testing.T) {
		body, _ := newLookup(t, lookupDirectory(t))
		before := body.Items()

		body.Update(lookupPageMsg{seq: 0, err: errors.New("late")})
		require.NoError(t, body.Err())
		require.Equal(t, before, body.Items())
	})

	t.Run("no results", func(t *testing.T) {
		body, results := newLookup(t, lookupDirectory(t))
		var cmds []tea.Cmd
		for _, k := range []string{"z", "z", "z"} {
			_, cmd := body.Update(keyPress(k))
			cmds = append(cmds, cmd)
		}
		feed(body, cmds...)

		require.Empty(t, body.Items())
		require.Contains(t, ansi.Strip(body.View()), "No results")

		body.Update(keyPress("enter"))
		require.Empty(t, *results)

		body.Update(keyPress("ctrl+x"))
		require.Equal(t, []any{nil}, *results)
	})

	t.Run("search failure is shown", func(t *testing.T) {
		body, _ := newLookup(t, failingSearcher{err: errors.New("connection refused")})
		require.Error(t, body.Err())
		require.Empty(t, body.Items())
		require.Contains(t, ansi.Strip(body.View()), "Search failed: connection refused")
	})

	t.Run("close cancels in flight searches", func(t *testing.T) {
		body, _ := newLookup(t, lookupDirectory(t))
		body.Update(keyPress("down"))
		_, cmd := body.Update(keyPress("down"))
		require.NotNil(t, cmd)

		body.Close()
		msg := cmd().(lookupPageMsg)
		require.ErrorIs(t, msg.err, context.Canceled)
	})
}

func TestLookupScenario(t *testing.T) {
	h := newHarness(t)
	p := Lookup(h.svc, "Find a user", lookupDirectory(t), 5)

	// run the first fetch the way the program loop would
	for _, cmd := range h.deliver() {
		for _, msg := range collect(cmd, 200*time.Millisecond) {
			if routed, ok := msg.(routedMsg); ok {
				if _, ok := routed.Msg.(lookupPageMsg); ok {
					h.host.Update(routed)
				}
			}
		}
	}
	require.Equal(t, 1, h.host.Len())

	h.press("down", "enter")
	item, ok := settled(t, p)
	require.True(t, ok)
	require.Equal(t, "Úrsula Silva", item.Label)
	require.Equal(t, 0, h.host.Len())
}

type failingSearcher struct {
	err error
}

func (f failingSearcher) Search(context.Context, string, int, int) (search.Page, error) {
	return search.Page{Data: []search.Item{}}, f.err
}

func (f failingSearcher) GetByID(context.Context, string) (*search.User, error) {
	return nil, f.err
}
