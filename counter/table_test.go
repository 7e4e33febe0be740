package counter_test

import (
	"testing"

	"github.com/asrivast28/ramble-go/counter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_NormalizesArity(t *testing.T) {
	raw := [][]int{
		{5, 6, 5, 7}, // min 5, max 7 -> arity 3, normalized {0,1,0,2}
		{0, 1, 0, 1}, // arity 2
	}
	tbl, err := counter.NewTable(raw)
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.N())
	assert.Equal(t, 4, tbl.M())

	a0, err := tbl.Arity(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), a0)

	col0, err := tbl.Column(0)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 1, 0, 2}, col0)
}

func TestNewTable_DefaultAndCustomNames(t *testing.T) {
	raw := [][]int{{0, 1}, {0, 1}, {0, 1}}
	tbl, err := counter.NewTable(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, tbl.Names())

	tbl2, err := counter.NewTable(raw, counter.WithNames([]string{"x", "y", "z"}))
	require.NoError(t, err)
	idx, ok := tbl2.IndexOf("y")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestNewTable_Errors(t *testing.T) {
	_, err := counter.NewTable(nil)
	assert.ErrorIs(t, err, counter.ErrNoVariables)

	_, err = counter.NewTable([][]int{{0, 1}, {0, 1, 2}})
	assert.ErrorIs(t, err, counter.ErrColumnLength)

	_, err = counter.NewTable([][]int{{0, 1}}, counter.WithNames([]string{"a", "b"}))
	assert.ErrorIs(t, err, counter.ErrColumnLength)
}

func TestTable_OutOfRangeAccessors(t *testing.T) {
	tbl, err := counter.NewTable([][]int{{0, 1}})
	require.NoError(t, err)

	_, err = tbl.Arity(5)
	assert.ErrorIs(t, err, counter.ErrVariableRange)

	_, err = tbl.Column(-1)
	assert.ErrorIs(t, err, counter.ErrVariableRange)
}
