package multimap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvcollect/multimap"
)

type SetSuite struct {
	suite.Suite
	m *multimap.Map[string, int]
}

func (s *SetSuite) SetupTest() {
	s.m = multimap.New[string, int]()
}

func (s *SetSuite) TestAddKeepsOldValues() {
	require := require.New(s.T())
	require.True(s.m.Add("a", 1))
	require.True(s.m.Add("a", 2), "a new value is added next to the old one")
	require.False(s.m.Add("a", 1), "set semantics: couple already present")

	require.Equal([]int{1, 2}, s.m.Get("a"))
	require.True(s.m.ContainsCouple("a", 2))
	require.False(s.m.ContainsCouple("a", 3))
	require.False(s.m.ContainsCouple("b", 1))
	require.Equal(1, s.m.Len())
	require.Equal(2, s.m.Size())
}

func (s *SetSuite) TestAddAll() {
	require := require.New(s.T())
	require.True(s.m.AddAll("a", 1, 2, 2, 3))
	require.False(s.m.AddAll("a", 1, 3), "nothing new")
	require.Equal([]int{1, 2, 3}, s.m.Get("a"))

	require.False(s.m.AddAll("empty"))
	require.True(s.m.ContainsKey("empty"), "AddAll creates the key")
	require.Equal([]int{}, s.m.Get("empty"))
}

func (s *SetSuite) TestRemove() {
	require := require.New(s.T())
	s.m.AddAll("a", 1, 2, 3)

	require.True(s.m.Remove("a", 2))
	require.False(s.m.Remove("a", 2), "already removed")
	require.False(s.m.Remove("zz", 1), "unknown key")
	require.False(s.m.ContainsKey("zz"), "Remove must not create keys")

	require.True(s.m.RemoveAll("a", 1, 3, 9))
	require.Empty(s.m.Get("a"))
	require.True(s.m.ContainsKey("a"), "key survives an empty collection")
}

func (s *SetSuite) TestReplaceAndDelete() {
	require := require.New(s.T())
	s.m.AddAll("a", 1, 2)

	prev := s.m.Replace("a", 5, 5, 6)
	require.Equal([]int{1, 2}, prev)
	require.Equal([]int{5, 6}, s.m.Get("a"), "replacement is de-duplicated")
	require.Nil(s.m.Replace("b", 7))

	require.Equal([]int{5, 6}, s.m.Delete("a"))
	require.Nil(s.m.Delete("a"))
	require.Equal([]string{"b"}, s.m.Keys())
}

func (s *SetSuite) TestAllInInsertionOrder() {
	s.m.Add("b", 1)
	s.m.Add("a", 2)
	s.m.Add("b", 3)

	type couple struct {
		k string
		v int
	}
	var got []couple
	for k, v := range s.m.All() {
		got = append(got, couple{k, v})
	}
	s.Equal([]couple{{"b", 1}, {"b", 3}, {"a", 2}}, got)

	got = got[:0]
	for k, v := range s.m.All() {
		got = append(got, couple{k, v})
		break
	}
	s.Len(got, 1, "iteration must stop when the consumer stops")
}

func (s *SetSuite) TestCollectionsAndCloneAreIndependent() {
	require := require.New(s.T())
	s.m.AddAll("a", 1, 2)

	snap := s.m.Collections()
	snap["a"][0] = 99
	clone := s.m.Clone()
	clone.Add("a", 3)

	require.Equal([]int{1, 2}, s.m.Get("a"))
	require.Equal([]int{1, 2, 3}, clone.Get("a"))
	require.True(clone.Unique())
}

func (s *SetSuite) TestClear() {
	s.m.AddAll("a", 1)
	s.m.Clear()
	s.Equal(0, s.m.Len())
	s.Equal(0, s.m.Size())
	s.Empty(s.m.Keys())
}

func TestSetSuite(t *testing.T) {
	suite.Run(t, new(SetSuite))
}

// TestList_KeepsDuplicates checks list semantics.
func TestList_KeepsDuplicates(t *testing.T) {
	m := multimap.NewList[string, int]()
	require.False(t, m.Unique())
	require.True(t, m.Add("a", 1))
	require.True(t, m.Add("a", 1), "list semantics accept duplicates")
	require.Equal(t, []int{1, 1}, m.Get("a"))

	require.True(t, m.Remove("a", 1))
	require.Equal(t, []int{1}, m.Get("a"), "one removal per addition")
	require.True(t, m.ContainsCouple("a", 1))

	m.AddAll("a", 1, 2, 1)
	require.True(t, m.RemoveAll("a", 1))
	require.Equal(t, []int{2}, m.Get("a"), "RemoveAll drops every occurrence")
	require.Equal(t, []int{2}, m.Replace("a", 2, 2, 3), "previous values returned")
	require.Equal(t, []int{2, 2, 3}, m.Get("a"), "list replacement keeps duplicates")
}
