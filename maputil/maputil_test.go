package maputil_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcollect/maputil"
)

func chains() map[string]string {
	return map[string]string{
		"a":   "aa",
		"aa":  "aaa",
		"aaa": "aaaa",
		"A":   "aa",
		"b":   "bb",
		"bb":  "bbb",
		"B":   "bbb",
	}
}

func TestReduceToDirectLinks(t *testing.T) {
	got, err := maputil.ReduceToDirectLinks(chains(), false)
	require.NoError(t, err)
	want := map[string]string{"a": "aaaa", "A": "aaaa", "b": "bbb", "B": "bbb"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reduced links mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceToDirectLinks_KeepIntermediaries(t *testing.T) {
	got, err := maputil.ReduceToDirectLinks(chains(), true)
	require.NoError(t, err)
	want := map[string]string{
		"a": "aaaa", "aa": "aaaa", "aaa": "aaaa", "A": "aaaa",
		"b": "bbb", "bb": "bbb", "B": "bbb",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reduced links mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceToDirectLinks_Loop(t *testing.T) {
	links := chains()
	links["aaaa"] = "aa"

	_, err := maputil.ReduceToDirectLinks(links, false)
	require.ErrorIs(t, err, maputil.ErrLoop)
	assert.Contains(t, err.Error(), "[aa aaa aaaa]")
}

func TestReduceToDirectLinks_Empty(t *testing.T) {
	got, err := maputil.ReduceToDirectLinks(map[int]int{}, true)
	require.NoError(t, err)
	assert.Empty(t, got)

	// A cycle with no entering chain has no source to start from.
	got, err = maputil.ReduceToDirectLinks(map[int]int{1: 2, 2: 1}, false)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTranslate(t *testing.T) {
	m := map[int]string{1: "a", 2: "b", 3: "c", 4: "d", 5: "e"}

	got, err := maputil.Translate([]int{1, 3, 5}, m, false)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"a", "c", "e"}, got); diff != "" {
		t.Errorf("Translate mismatch (-want +got):\n%s", diff)
	}

	got, err = maputil.Translate([]int{1, 6}, m, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", ""}, got)

	_, err = maputil.Translate([]int{1, 6}, m, false)
	assert.ErrorIs(t, err, maputil.ErrMissingKey)
}
