package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func loadDirectory(t *testing.T) *Directory {
	t.Helper()
	dir, err := LoadDirectory()
	require.NoError(t, err)
	return dir
}

func TestLoadDirectory(t *testing.T) {
	dir := loadDirectory(t)
	require.Equal(t, 120, dir.Len())

	u := dir.Get("1")
	require.NotNil(t, u)
	require.Equal(t, "Karina Oliveira", u.Name)
	require.Equal(t, "Renault Kwid", u.VehicleModel)
	require.Equal(t, Item{Label: "Karina Oliveira", Value: "1"}, u.Item())

	require.Nil(t, dir.Get("9999"))
}

func TestDirectory_Count(t *testing.T) {
	dir := loadDirectory(t)
	tests := []struct {
		term string
		want int
	}{
		{"", 120},
		{"silva", 8},
		{"SILVA", 8},
		{"oliveira", 10},
		{"ÚRSULA", 6},
		{"zzz", 0},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			require.Equal(t, tt.want, dir.Count(tt.term))
		})
	}
}

func TestDirectory_Search(t *testing.T) {
	dir := loadDirectory(t)
	ctx := context.Background()

	t.Run("first page", func(t *testing.T) {
		page, err := dir.Search(ctx, "", 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Data, 10)
		require.True(t, page.HasMore)
		require.Equal(t, 120, page.Total)
		require.Equal(t, "1", page.Data[0].Value)
	})

	t.Run("filtered pages", func(t *testing.T) {
		page, err := dir.Search(ctx, "oliveira", 1, 4)
		require.NoError(t, err)
		require.Equal(t, []string{"1", "25", "51", "53"}, values(page.Data))
		require.True(t, page.HasMore)

		page, err = dir.Search(ctx, "oliveira", 3, 4)
		require.NoError(t, err)
		require.Equal(t, []string{"91", "116"}, values(page.Data))
		require.False(t, page.HasMore)
		require.Equal(t, 10, page.Total)
	})

	t.Run("exact boundary has no more", func(t *testing.T) {
		page, err := dir.Search(ctx, "silva", 2, 4)
		require.NoError(t, err)
		require.Len(t, page.Data, 4)
		require.False(t, page.HasMore)
	})

	t.Run("past the end", func(t *testing.T) {
		page, err := dir.Search(ctx, "silva", 5, 4)
		require.NoError(t, err)
		require.NotNil(t, page.Data)
		require.Empty(t, page.Data)
		require.False(t, page.HasMore)
	})

	t.Run("default page size", func(t *testing.T) {
		page, err := dir.Search(ctx, "", 1, 0)
		require.NoError(t, err)
		require.Len(t, page.Data, DefaultPageSize)
	})

	t.Run("invalid page", func(t *testing.T) {
		page, err := dir.Search(ctx, "", 0, 10)
		require.ErrorIs(t, err, ErrInvalidPage)
		require.Empty(t, page.Data)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := dir.Search(cctx, "", 1, 10)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDirectory_Slice(t *testing.T) {
	dir := NewDirectory([]User{
		{ID: "a", Name: "Ana"},
		{ID: "b", Name: "Bia"},
		{ID: "c", Name: "Caio"},
	})

	require.Equal(t, []string{"b", "c"}, values(dir.Slice("", 1, 10)))
	require.Equal(t, []string{"a"}, values(dir.Slice("", -3, 1)))
	require.Empty(t, dir.Slice("", 3, 10))
	require.Empty(t, dir.Slice("", 0, 0))
	require.Equal(t, []string{"a", "b", "c"}, values(dir.Slice("a", 0, 10)))
	require.Equal(t, []string{"c"}, values(dir.Slice("AI", 0, 10)))
}

// fakeSearcher serves pages from a directory and can fail on demand.
type fakeSearcher struct {
	dir   *Directory
	fail  error
	calls int
}

func (f *fakeSearcher) Search(ctx context.Context, term string, page, pageSize int) (Page, error) {
	f.calls++
	if f.fail != nil {
		return Page{Data: []Item{}}, f.fail
	}
	return f.dir.Search(ctx, term, page, pageSize)
}

func (f *fakeSearcher) GetByID(ctx context.Context, id string) (*User, error) {
	return f.dir.GetByID(ctx, id)
}

func TestCursor(t *testing.T) {
	ctx := context.Background()

	t.Run("walks every page", func(t *testing.T) {
		fs := &fakeSearcher{dir: loadDirectory(t)}
		c := NewCursor(fs, "oliveira", 4)
		require.True(t, c.HasMore())

		for _, want := range []int{4, 4, 2} {
			n, err := c.Next(ctx)
			require.NoError(t, err)
			require.Equal(t, want, n)
		}
		require.False(t, c.HasMore())
		require.Len(t, c.Items(), 10)
		require.Equal(t, 10, c.Total())

		n, err := c.Next(ctx)
		require.NoError(t, err)
		require.Zero(t, n)
		require.Equal(t, 3, fs.calls)
	})

	t.Run("stops on empty result", func(t *testing.T) {
		fs := &fakeSearcher{dir: loadDirectory(t)}
		c := NewCursor(fs, "zzz", 4)
		n, err := c.Next(ctx)
		require.NoError(t, err)
		require.Zero(t, n)
		require.False(t, c.HasMore())
	})

	t.Run("errors keep position", func(t *testing.T) {
		boom := errors.New("boom")
		fs := &fakeSearcher{dir: loadDirectory(t), fail: boom}
		c := NewCursor(fs, "", 5)

		_, err := c.Next(ctx)
		require.ErrorIs(t, err, boom)
		require.True(t, c.HasMore())
		require.Empty(t, c.Items())

		fs.fail = nil
		n, err := c.Next(ctx)
		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.Equal(t, "1", c.Items()[0].Value)
	})
}

func values(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Value)
	}
	return out
}
