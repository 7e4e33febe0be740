package bnset_test

import (
	"testing"

	"github.com/asrivast28/ramble-go/bnset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_InsertEraseContains(t *testing.T) {
	s := bnset.New(10)
	require.NoError(t, s.Insert(3))
	require.NoError(t, s.Insert(7))
	assert.True(t, s.Contains(3))
	assert.True(t, s.Contains(7))
	assert.False(t, s.Contains(4))
	assert.Equal(t, 2, s.Size())

	require.NoError(t, s.Erase(3))
	assert.False(t, s.Contains(3))
	assert.Equal(t, 1, s.Size())

	assert.ErrorIs(t, s.Insert(10), bnset.ErrCapacity)
	assert.ErrorIs(t, s.Insert(-1), bnset.ErrCapacity)
}

func TestSet_Elements(t *testing.T) {
	s, err := bnset.FromSlice(70, []int{65, 2, 40, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 40, 65}, s.Elements())
}

func TestSet_SetOps(t *testing.T) {
	a, _ := bnset.FromSlice(8, []int{0, 1, 2})
	b, _ := bnset.FromSlice(8, []int{1, 2, 3})

	u, err := a.Union(b)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, u.Elements())

	i, err := a.Intersection(b)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, i.Elements())

	d, err := a.Difference(b)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, d.Elements())

	sub, err := i.IsSubsetOf(a)
	require.NoError(t, err)
	assert.True(t, sub)

	sub, err = a.IsSubsetOf(i)
	require.NoError(t, err)
	assert.False(t, sub)

	mismatched := bnset.New(9)
	_, err = a.Union(mismatched)
	assert.ErrorIs(t, err, bnset.ErrCapacityMismatch)
}

func TestSet_CloneIndependence(t *testing.T) {
	a, _ := bnset.FromSlice(8, []int{1})
	b := a.Clone()
	require.NoError(t, b.Insert(5))
	assert.False(t, a.Contains(5))
	assert.True(t, b.Contains(5))
}

func TestSet_Empty(t *testing.T) {
	s := bnset.New(5)
	assert.True(t, s.Empty())
	require.NoError(t, s.Insert(2))
	assert.False(t, s.Empty())
}

func TestSubsetIterator_CardinalityOrder(t *testing.T) {
	base, _ := bnset.FromSlice(8, []int{1, 3, 5})
	it := bnset.NewSubsetIterator(base, 2)

	var got [][]int
	for it.Next() {
		got = append(got, it.Elements())
	}

	want := [][]int{
		{},
		{1}, {3}, {5},
		{1, 3}, {1, 5}, {3, 5},
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i])
	}
}

func TestSubsetIterator_MaxSizeClamped(t *testing.T) {
	base, _ := bnset.FromSlice(4, []int{0, 1})
	it := bnset.NewSubsetIterator(base, 99)
	count := 0
	for it.Next() {
		count++
	}
	assert.Equal(t, 4, count) // {}, {0}, {1}, {0,1}
}

func TestSubsetIterator_Reset(t *testing.T) {
	base, _ := bnset.FromSlice(4, []int{0, 1})
	it := bnset.NewSubsetIterator(base, 1)
	it.Next()
	it.Next()
	it.Reset()
	require.True(t, it.Next())
	assert.Equal(t, []int{}, it.Elements())
}
