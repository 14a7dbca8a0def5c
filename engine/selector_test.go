package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_Coordinate2P(t *testing.T) {
	cfg := DefaultConfig()
	tbl := buildTable(t, cfg, [][]string{{"a", "b", "c"}, {"d", "e", "f"}})
	sel := NewSelector()

	t.Run("S1: [1,1] selects the single top-left cell", func(t *testing.T) {
		require.NoError(t, sel.Apply("1,1", tbl, nil))
		assert.Equal(t, Region{0, 0, 0, 0}, sel.Current)
	})

	t.Run("B4: R = num_rows addresses the last row", func(t *testing.T) {
		require.NoError(t, sel.Apply("2,1", tbl, nil))
		assert.Equal(t, Region{1, 0, 1, 0}, sel.Current)
	})

	t.Run("B4: R = num_rows+1 is rejected", func(t *testing.T) {
		err := sel.Apply("3,1", tbl, nil)
		require.Error(t, err)
		var ee Error
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, ErrSelector, ee.Kind)
	})

	t.Run("whole-row form [R,_]", func(t *testing.T) {
		require.NoError(t, sel.Apply("1,_", tbl, nil))
		assert.Equal(t, Region{0, 0, 0, 2}, sel.Current)
	})

	t.Run("whole-column form [_,C]", func(t *testing.T) {
		require.NoError(t, sel.Apply("_,2", tbl, nil))
		assert.Equal(t, Region{0, 1, 1, 1}, sel.Current)
	})

	t.Run("last-row form [-,C]", func(t *testing.T) {
		require.NoError(t, sel.Apply("-,2", tbl, nil))
		assert.Equal(t, Region{1, 1, 1, 1}, sel.Current)
	})

	t.Run("last-column form [R,-]", func(t *testing.T) {
		require.NoError(t, sel.Apply("1,-", tbl, nil))
		assert.Equal(t, Region{0, 2, 0, 2}, sel.Current)
	})
}

func TestSelector_WholeTableSentinels(t *testing.T) {
	cfg := DefaultConfig()
	tbl := buildTable(t, cfg, [][]string{{"a", "b"}, {"c", "d"}})
	sel := NewSelector()

	t.Run("[_,_] selects the whole table", func(t *testing.T) {
		require.NoError(t, sel.Apply("_,_", tbl, nil))
		assert.Equal(t, Region{0, 0, 1, 1}, sel.Current)
	})

	t.Run("[-,-] selects the bottom-right cell", func(t *testing.T) {
		require.NoError(t, sel.Apply("-,-", tbl, nil))
		assert.Equal(t, Region{1, 1, 1, 1}, sel.Current)
	})
}

func TestSelector_4Part(t *testing.T) {
	cfg := DefaultConfig()
	tbl := buildTable(t, cfg, [][]string{{"1", "2", "3"}, {"4", "5", "6"}})
	sel := NewSelector()

	t.Run("all-int 4-part area", func(t *testing.T) {
		require.NoError(t, sel.Apply("1,1,2,3", tbl, nil))
		assert.Equal(t, Region{0, 0, 1, 2}, sel.Current)
	})

	t.Run("'-' mirrored across both pairs is accepted", func(t *testing.T) {
		require.NoError(t, sel.Apply("-,-,-,-", tbl, nil))
		assert.Equal(t, Region{1, 2, 1, 2}, sel.Current)
	})

	t.Run("'_' is rejected in the 4-part form", func(t *testing.T) {
		err := sel.Apply("_,1,2,2", tbl, nil)
		require.Error(t, err)
	})

	t.Run("mismatched '-' positions are rejected", func(t *testing.T) {
		err := sel.Apply("-,1,2,2", tbl, nil)
		require.Error(t, err)
	})

	t.Run("R1 > R2 is rejected", func(t *testing.T) {
		err := sel.Apply("2,1,1,1", tbl, nil)
		require.Error(t, err)
	})
}

func TestSelector_SetAndRestore(t *testing.T) {
	cfg := DefaultConfig()
	tbl := buildTable(t, cfg, [][]string{{"a", "b"}, {"c", "d"}})
	sel := NewSelector()

	require.NoError(t, sel.Apply("1,1", tbl, nil))
	require.NoError(t, sel.Apply("set", tbl, nil))
	require.NoError(t, sel.Apply("2,2", tbl, nil))
	assert.Equal(t, Region{1, 1, 1, 1}, sel.Current)

	require.NoError(t, sel.Apply("_", tbl, nil))
	assert.Equal(t, Region{0, 0, 0, 0}, sel.Current)
}

func TestSelector_Find(t *testing.T) {
	cfg := DefaultConfig()
	tbl := buildTable(t, cfg, [][]string{{"apple", "banana"}, {"cherry", "date"}})
	sel := NewSelector()

	require.NoError(t, sel.Apply("_,_", tbl, nil))
	require.NoError(t, sel.Apply("find ch", tbl, nil))
	assert.Equal(t, Region{1, 0, 1, 0}, sel.Current)
}

func TestSelector_MaxMin(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("S4: max skips non-numeric cells", func(t *testing.T) {
		tbl := buildTable(t, cfg, [][]string{{"1"}, {"2"}, {"hello"}})
		sel := NewSelector()
		require.NoError(t, sel.Apply("_,_", tbl, nil))
		require.NoError(t, sel.Apply("max", tbl, nil))
		assert.Equal(t, Region{1, 0, 1, 0}, sel.Current)
	})

	t.Run("min/max with no numeric cell warns and leaves the region unchanged", func(t *testing.T) {
		tbl := buildTable(t, cfg, [][]string{{"x"}, {"y"}})
		sel := NewSelector()
		require.NoError(t, sel.Apply("_,_", tbl, nil))
		before := sel.Current
		var warned string
		require.NoError(t, sel.Apply("max", tbl, func(msg string) { warned = msg }))
		assert.Equal(t, before, sel.Current)
		assert.NotEmpty(t, warned)
	})
}
