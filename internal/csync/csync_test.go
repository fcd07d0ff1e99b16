package csync

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap_TakeIsExclusive(t *testing.T) {
	m := NewMap[string, int]()
	m.Set("a", 1)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := m.Take("a"); ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), wins.Load())
	_, ok := m.Get("a")
	require.False(t, ok)
	require.Equal(t, 0, m.Len())
}

func TestMap_Basics(t *testing.T) {
	m := NewMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)

	v, ok := m.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.ElementsMatch(t, []string{"a", "b"}, m.Keys())

	m.Delete("a")
	_, ok = m.Get("a")
	require.False(t, ok)
}

func TestSlice_RemoveFirstKeepsOrder(t *testing.T) {
	s := NewSlice[string]()
	s.Append("a", "b", "c", "b")

	removed, ok := s.RemoveFirst(func(v string) bool { return v == "b" })
	require.True(t, ok)
	require.Equal(t, "b", removed)
	require.Equal(t, []string{"a", "c", "b"}, s.ToSlice())

	_, ok = s.RemoveFirst(func(v string) bool { return v == "z" })
	require.False(t, ok)

	last, ok := s.Last()
	require.True(t, ok)
	require.Equal(t, "b", last)
}

func TestSlice_ToSliceIsACopy(t *testing.T) {
	s := NewSlice[int]()
	s.Append(1, 2, 3)

	snapshot := s.ToSlice()
	snapshot[0] = 99
	for _, v := range snapshot {
		s.Append(v * 10)
	}
	require.Equal(t, []int{1, 2, 3, 990, 20, 30}, s.ToSlice())
	require.Equal(t, 6, s.Len())

	cleared := s.Clear()
	require.Len(t, cleared, 6)
	require.Equal(t, 0, s.Len())
	_, ok := s.Last()
	require.False(t, ok)
}
